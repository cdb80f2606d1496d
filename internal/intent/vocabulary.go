package intent

// Canonical service categories. Keys are stable identifiers used across the
// reply catalog, the venue directory and booking requests.
const (
	CategoryRestaurant = "restaurant"
	CategoryYacht      = "yacht"
	CategoryVilla      = "villa"
	CategoryEvent      = "event"
	CategorySpa        = "spa"
	CategoryChauffeur  = "chauffeur"
	CategoryClub       = "club"
)

// Mood tags refining an intent.
const (
	MoodRomantic = "romantic"
	MoodFestive  = "festive"
	MoodElegant  = "elegant"
	MoodChill    = "chill"
)

// categorySynonyms maps each category to the normalized surface forms that
// mention it. French first, English second; all entries must already be in
// normalized form (lowercase, no accents).
var categorySynonyms = map[string][]string{
	CategoryRestaurant: {
		"restaurant", "resto", "diner", "dejeuner", "brunch", "manger",
		"une table", "table pour", "gastronomique", "dinner", "lunch", "eat out",
	},
	CategoryYacht: {
		"yacht", "bateau", "catamaran", "voilier", "croisiere", "sortie en mer",
		"boat", "cruise",
	},
	CategoryVilla: {
		"villa", "maison de vacances", "penthouse", "location de luxe",
		"house rental",
	},
	CategoryEvent: {
		"evenement", "soiree privee", "anniversaire", "fete privee", "reception",
		"event", "private party", "birthday",
	},
	CategorySpa: {
		"spa", "massage", "bien etre", "soin", "hammam", "wellness",
	},
	CategoryChauffeur: {
		"chauffeur", "voiture avec chauffeur", "transfert", "vtc", "limousine",
		"driver", "transfer",
	},
	CategoryClub: {
		"club", "boite de nuit", "discotheque", "beach club", "nightclub",
	},
}

// mealAboardMarkers neutralize a meal word when it describes eating aboard
// another service ("diner sur un yacht" is a yacht request, not a restaurant
// one). Checked in the text window right after the meal match.
var mealAboardMarkers = []string{"sur un", "sur le", "a bord", "on a", "aboard"}

var mealWords = map[string]bool{
	"diner": true, "dejeuner": true, "manger": true, "brunch": true,
	"dinner": true, "lunch": true,
}

// moodSynonyms: ambiance adjectives and the short phrases that imply them.
var moodSynonyms = map[string][]string{
	MoodRomantic: {
		"romantique", "en amoureux", "intime", "avec ma femme", "avec mon mari",
		"avec ma copine", "avec mon copain", "saint valentin", "romantic",
	},
	MoodFestive: {
		"festif", "festive", "faire la fete", "ambiance", "dj", "musique",
		"champagne", "party",
	},
	MoodElegant: {
		"elegant", "chic", "raffine", "luxueux", "haut de gamme", "prestige",
		"elegant", "upscale",
	},
	MoodChill: {
		"tranquille", "calme", "detente", "relax", "cosy", "decontracte",
		"chill", "laid back",
	},
}

// negationMarkers cancel a category when they appear just before its mention.
var negationMarkers = []string{
	"sans", "pas de", "pas le", "pas la", "plus de", "annule", "annuler",
	"oublie", "enleve", "retire", "sauf", "without", "no", "not the", "cancel",
	"skip the", "forget the",
}

// exclusivityMarkers turn a positive mention into "only X": every previously
// active category not re-mentioned gets dropped.
var exclusivityMarkers = []string{
	"juste", "seulement", "uniquement", "rien que", "que le", "que la",
	"only", "just the", "just a",
}

// correctionPrefixes mark a corrective turn ("non je veux...") which behaves
// like an exclusivity marker over the previous context. Checked against the
// normalized text, which is punctuation-free and single-spaced.
var correctionPrefixes = []string{
	"non ", "plutot ", "en fait ", "no ", "actually ",
}

// numberWords: spelled-out small party sizes.
var numberWords = map[string]int{
	"un": 1, "une": 1, "deux": 2, "trois": 3, "quatre": 4, "cinq": 5,
	"six": 6, "sept": 7, "huit": 8, "neuf": 9, "dix": 10, "onze": 11,
	"douze": 12, "quinze": 15, "vingt": 20,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "twelve": 12,
}

// partyWords follow a number when it is a headcount.
var partyWords = []string{
	"personnes", "personne", "pers", "invites", "convives", "couverts",
	"people", "guests", "pax", "adultes",
}

// timeExpressions, longest phrases first so "demain soir" beats "demain".
var timeExpressions = []string{
	"demain soir", "demain midi", "apres demain", "ce soir", "ce midi",
	"cette nuit", "ce week end", "ce weekend", "le week end prochain",
	"la semaine prochaine", "aujourd hui", "demain", "maintenant",
	"tout de suite", "tomorrow night", "tomorrow", "tonight", "today",
	"this weekend", "next week", "right now",
	"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// synonymSubstitutions rewrites common abbreviations and spelling variants
// before dictionary matching. Applied on whole words of the normalized text.
var synonymSubstitutions = map[string]string{
	"resa":  "reservation",
	"rdv":   "rendez vous",
	"stp":   "s il te plait",
	"svp":   "s il vous plait",
	"tmrw":  "tomorrow",
	"resto": "restaurant",
	"apero": "aperitif",
	"wk":    "week end",
}

// greetingWords get a greeting-flavoured fallback instead of a bare
// clarification prompt. Matched on whole words.
var greetingWords = []string{
	"bonjour", "bonsoir", "salut", "coucou", "hello", "hi", "hey",
}
