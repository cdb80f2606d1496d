package reply

import "gliitz-backend/internal/intent"

// Template is a pre-authored response skeleton. Placeholders are whole
// clauses so a missing value drops cleanly instead of leaving a hole:
//
//	{party_clause}  "pour 4 personnes", or nothing
//	{time_clause}   "demain soir", or nothing
//	{venue_clause}  a full recommendation sentence, or nothing
type Template struct {
	ID     string
	Intent string
	Text   string
}

// Intent keys beyond the service categories.
const (
	IntentMulti    = "multi"
	IntentGreeting = "greeting"
	IntentFallback = "fallback"
)

// Catalog maps an intent key to its candidate templates. Read-only after
// initialization; safe to share across goroutines.
type Catalog map[string][]Template

// DefaultCatalog is the curated concierge voice. Mood-refined variants live
// under "<category>/<mood>" and take precedence when the mood is active.
func DefaultCatalog() Catalog {
	templates := []Template{
		{ID: "restaurant-1", Intent: intent.CategoryRestaurant,
			Text: "Avec plaisir ! Je vous réserve une table {party_clause} {time_clause}. {venue_clause}"},
		{ID: "restaurant-2", Intent: intent.CategoryRestaurant,
			Text: "Très bon choix. Je m'occupe de votre réservation {party_clause} {time_clause}. Une préférence de cuisine ou d'ambiance ?"},
		{ID: "restaurant-3", Intent: intent.CategoryRestaurant,
			Text: "C'est noté pour le restaurant {party_clause} {time_clause}. {venue_clause} Je confirme la table dès votre feu vert."},

		{ID: "restaurant-romantic-1", Intent: intent.CategoryRestaurant + "/" + intent.MoodRomantic,
			Text: "Pour un dîner en amoureux {time_clause}, je connais l'adresse parfaite. {venue_clause} Je vous réserve la meilleure table {party_clause} ?"},
		{ID: "restaurant-romantic-2", Intent: intent.CategoryRestaurant + "/" + intent.MoodRomantic,
			Text: "Rien de plus simple : un dîner intime {party_clause} {time_clause}, bougies et vue sur la mer. {venue_clause}"},

		{ID: "yacht-1", Intent: intent.CategoryYacht,
			Text: "Cap sur la Méditerranée ! Je vous organise une sortie en yacht {party_clause} {time_clause}. {venue_clause}"},
		{ID: "yacht-2", Intent: intent.CategoryYacht,
			Text: "Excellente idée. Je contacte nos skippers partenaires pour un yacht {party_clause} {time_clause}. Champagne à bord ?"},
		{ID: "yacht-3", Intent: intent.CategoryYacht,
			Text: "Je m'occupe de votre yacht {party_clause} {time_clause}. {venue_clause} Dites-moi si vous souhaitez un chef ou un DJ à bord."},

		{ID: "yacht-festive-1", Intent: intent.CategoryYacht + "/" + intent.MoodFestive,
			Text: "Ambiance garantie ! Yacht, DJ et champagne {party_clause} {time_clause}. {venue_clause} Je lance les préparatifs ?"},

		{ID: "villa-1", Intent: intent.CategoryVilla,
			Text: "Je vous trouve une villa à la hauteur {party_clause} {time_clause}. Piscine, vue mer, personnel de maison : dites-moi vos priorités."},
		{ID: "villa-2", Intent: intent.CategoryVilla,
			Text: "C'est noté pour la villa {time_clause}. {venue_clause} Je vous envoie une sélection dans la journée."},

		{ID: "event-1", Intent: intent.CategoryEvent,
			Text: "Un événement à organiser {time_clause} ? J'adore. Dites-m'en plus sur l'occasion et je monte le dossier {party_clause}."},
		{ID: "event-2", Intent: intent.CategoryEvent,
			Text: "Je prends en main votre événement {party_clause} {time_clause}. Lieu, traiteur, musique : tout est possible à Marbella."},

		{ID: "spa-1", Intent: intent.CategorySpa,
			Text: "Moment détente en vue. Je vous réserve un soin {party_clause} {time_clause}. {venue_clause}"},
		{ID: "spa-2", Intent: intent.CategorySpa,
			Text: "Très bonne idée. Massage, hammam ou rituel complet {time_clause} ? {venue_clause}"},

		{ID: "chauffeur-1", Intent: intent.CategoryChauffeur,
			Text: "Votre chauffeur sera là {time_clause}. Berline ou van {party_clause} ? Je confirme l'horaire exact dès que vous me le donnez."},
		{ID: "chauffeur-2", Intent: intent.CategoryChauffeur,
			Text: "Je vous arrange un chauffeur privé {party_clause} {time_clause}. Indiquez-moi simplement les adresses de départ et d'arrivée."},

		{ID: "club-1", Intent: intent.CategoryClub,
			Text: "Soirée à Marbella ! Je vous place en table VIP {party_clause} {time_clause}. {venue_clause}"},
		{ID: "club-2", Intent: intent.CategoryClub,
			Text: "Je m'occupe de votre entrée et de votre table {party_clause} {time_clause}. Plutôt beach club au coucher du soleil ou club en ville ?"},

		{ID: "multi-1", Intent: IntentMulti,
			Text: "Très beau programme ! Je coordonne tout cela {party_clause} {time_clause} et je reviens vers vous avec une proposition complète."},
		{ID: "multi-2", Intent: IntentMulti,
			Text: "Parfait, je prends l'ensemble en charge {party_clause} {time_clause}. Je vous confirme chaque étape une par une."},

		{ID: "greeting-1", Intent: IntentGreeting,
			Text: "Bonjour ! Je suis votre concierge Gliitz à Marbella. Restaurant, yacht, villa, soirée : que puis-je organiser pour vous ?"},
		{ID: "greeting-2", Intent: IntentGreeting,
			Text: "Bonsoir et bienvenue chez Gliitz. Dites-moi ce qui vous ferait plaisir et je m'occupe de tout."},

		{ID: "fallback-1", Intent: IntentFallback,
			Text: "Je veux être sûr de bien vous servir : cherchez-vous plutôt un restaurant, un yacht, une villa ou une soirée ?"},
		{ID: "fallback-2", Intent: IntentFallback,
			Text: "Je n'ai pas tout saisi, pardonnez-moi. Donnez-moi un peu plus de détails et je m'en occupe immédiatement."},
		{ID: "fallback-3", Intent: IntentFallback,
			Text: "Dites-m'en un peu plus (le type de sortie, la date, le nombre de personnes) et je vous prépare cela."},
	}

	catalog := make(Catalog)
	for _, t := range templates {
		catalog[t.Intent] = append(catalog[t.Intent], t)
	}
	return catalog
}
