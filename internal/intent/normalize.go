package intent

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentFolder decomposes to NFD, drops combining marks, recomposes. "dîner"
// becomes "diner", "réservation" becomes "reservation".
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares raw message text for dictionary matching: lowercase,
// accents folded, punctuation flattened to spaces, whitespace collapsed, and
// known abbreviations expanded. Never fails; unfoldable runes pass through.
func Normalize(text string) string {
	lower := strings.ToLower(text)

	folded, _, err := transform.String(accentFolder, lower)
	if err != nil {
		folded = lower
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		if repl, ok := synonymSubstitutions[w]; ok {
			words[i] = repl
		}
	}
	return strings.Join(words, " ")
}

// containsWord reports whether the normalized text contains phrase on word
// boundaries. Both arguments must already be normalized.
func containsWord(text, phrase string) bool {
	return indexWord(text, phrase) >= 0
}

// indexWord returns the offset of the first word-bounded occurrence of phrase
// in text, or -1. Offsets are relative to the padded text and only meaningful
// for ordering comparisons.
func indexWord(text, phrase string) int {
	padded := " " + text + " "
	return strings.Index(padded, " "+phrase+" ")
}
