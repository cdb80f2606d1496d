package intent

import (
	"strconv"
	"strings"
)

// Entities is the flat result of scanning a single message. Absence of a
// field means the message did not mention it; Extract never fails.
type Entities struct {
	Services  []string // categories mentioned positively, in category order
	Negated   []string // categories explicitly excluded by this message
	Exclusive bool     // "juste le X" / corrective "non, ..." phrasing
	Greeting  bool     // message opens with or contains a greeting word
	PartySize int      // 0 when unknown
	Timeframe string   // normalized surface form ("demain", "ce soir", ...)
	Moods     []string
}

// Empty reports whether extraction recognized nothing actionable.
func (e Entities) Empty() bool {
	return len(e.Services) == 0 && len(e.Negated) == 0 &&
		e.PartySize == 0 && e.Timeframe == "" && len(e.Moods) == 0
}

var categoryOrder = []string{
	CategoryRestaurant, CategoryYacht, CategoryVilla, CategoryEvent,
	CategorySpa, CategoryChauffeur, CategoryClub,
}

var moodOrder = []string{MoodRomantic, MoodFestive, MoodElegant, MoodChill}

const (
	negationWindow  = 20 // bytes of preceding text scanned for a negation marker
	exclusiveWindow = 26
	aboardWindow    = 14
)

// Extract scans a raw user message for service categories, party size, time
// expressions, moods and negation/exclusivity markers. Pure and
// deterministic; unrecognized text yields a zero Entities.
func Extract(message string) Entities {
	var e Entities

	text := Normalize(message)
	if text == "" {
		return e
	}

	// A corrective opener ("non je veux...", "no i want...") speaks about the
	// previous turn, not about what follows it. Stripped before scanning so
	// the per-category negation window never mistakes it for a negation.
	for _, prefix := range correctionPrefixes {
		if strings.HasPrefix(text, prefix) {
			e.Exclusive = true
			text = strings.TrimSpace(text[len(prefix):])
			break
		}
	}
	if text == "" {
		e.Exclusive = false
		return e
	}
	padded := " " + text + " "

	for _, cat := range categoryOrder {
		positive, negated := scanCategory(padded, cat)
		if positive {
			e.Services = append(e.Services, cat)
			if exclusiveMention(padded, cat) {
				e.Exclusive = true
			}
		}
		if negated {
			e.Negated = append(e.Negated, cat)
		}
	}

	// A corrective prefix with nothing positive behind it is not exclusivity,
	// just a plain "no".
	if e.Exclusive && len(e.Services) == 0 {
		e.Exclusive = false
	}

	for _, g := range greetingWords {
		if containsWord(text, g) {
			e.Greeting = true
			break
		}
	}

	e.PartySize = extractPartySize(text)

	for _, expr := range timeExpressions {
		if containsWord(text, expr) {
			e.Timeframe = expr
			break
		}
	}

	for _, mood := range moodOrder {
		for _, syn := range moodSynonyms[mood] {
			if containsWord(text, syn) {
				e.Moods = append(e.Moods, mood)
				break
			}
		}
	}

	return e
}

// scanCategory walks every synonym of cat through the padded text, sorting
// each mention into positive or negated depending on the preceding marker
// window. Meal words followed by an "aboard" marker are ignored entirely:
// "diner sur un yacht" requests the yacht, not a restaurant.
func scanCategory(padded, cat string) (positive, negated bool) {
	for _, syn := range categorySynonyms[cat] {
		offset := 0
		for {
			idx := strings.Index(padded[offset:], " "+syn+" ")
			if idx < 0 {
				break
			}
			idx += offset
			end := idx + 1 + len(syn)

			if mealWords[syn] && followedByAboard(padded, end) {
				offset = end
				continue
			}

			if precededByMarker(padded, idx, negationMarkers, negationWindow) {
				negated = true
			} else {
				positive = true
			}
			offset = end
		}
	}
	return positive, negated
}

func followedByAboard(padded string, end int) bool {
	stop := end + aboardWindow
	if stop > len(padded) {
		stop = len(padded)
	}
	following := padded[end:stop]
	for _, marker := range mealAboardMarkers {
		if strings.HasPrefix(following, " "+marker) {
			return true
		}
	}
	return false
}

// exclusiveMention reports whether any positive mention of cat sits right
// after an exclusivity marker ("juste le yacht").
func exclusiveMention(padded, cat string) bool {
	for _, syn := range categorySynonyms[cat] {
		idx := indexWordPadded(padded, syn)
		if idx < 0 {
			continue
		}
		if precededByMarker(padded, idx, exclusivityMarkers, exclusiveWindow) {
			return true
		}
	}
	return false
}

func indexWordPadded(padded, phrase string) int {
	return strings.Index(padded, " "+phrase+" ")
}

func precededByMarker(padded string, idx int, markers []string, window int) bool {
	from := idx - window
	if from < 0 {
		from = 0
	}
	preceding := padded[from : idx+1]
	for _, marker := range markers {
		if strings.Contains(preceding, " "+marker+" ") {
			return true
		}
	}
	return false
}

// extractPartySize finds a headcount: a number followed by a person word, a
// number after "pour", or a bare numeric message. The last match wins.
func extractPartySize(text string) int {
	words := strings.Fields(text)
	size := 0
	for i, w := range words {
		n, ok := parseCount(w)
		if !ok {
			continue
		}
		_, spelled := numberWords[w]
		switch {
		case i+1 < len(words) && isPartyWord(words[i+1]):
			size = n
		// "pour un diner" means "for a dinner", so articles ("un", "une")
		// never count after "pour"; digits always do.
		case i > 0 && (words[i-1] == "pour" || words[i-1] == "for") && !spelled:
			size = n
		case len(words) == 1 && (!spelled || n >= 2):
			size = n
		}
	}
	return size
}

func parseCount(w string) (int, bool) {
	if n, err := strconv.Atoi(w); err == nil && n >= 1 && n <= 200 {
		return n, true
	}
	if n, ok := numberWords[w]; ok {
		return n, true
	}
	return 0, false
}

func isPartyWord(w string) bool {
	for _, p := range partyWords {
		if w == p {
			return true
		}
	}
	return false
}
