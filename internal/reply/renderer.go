package reply

import (
	"fmt"
	"regexp"
	"strings"

	"gliitz-backend/internal/intent"
	"gliitz-backend/internal/models"
)

var (
	leftoverPlaceholder = regexp.MustCompile(`\{[a-z_]+\}`)
	multiSpace          = regexp.MustCompile(`\s{2,}`)
	spaceBeforePunct    = regexp.MustCompile(`\s+([.,!?:;])`)
)

// Render fills tpl with values from the merged context and the venue
// directory slice (already filtered and rank-ordered by the caller). Missing
// values drop their whole clause; the result is never empty and never
// contains a literal placeholder token.
func Render(tpl Template, ctx intent.Context, venues []models.Venue) string {
	replacer := strings.NewReplacer(
		"{party_clause}", partyClause(ctx),
		"{time_clause}", ctx.Timeframe,
		"{venue_clause}", venueClause(venues),
	)

	out := replacer.Replace(tpl.Text)
	out = leftoverPlaceholder.ReplaceAllString(out, "")
	out = multiSpace.ReplaceAllString(out, " ")
	out = spaceBeforePunct.ReplaceAllString(out, "$1")
	out = strings.TrimSpace(out)

	if out == "" {
		return "Dites-m'en un peu plus et je m'en occupe tout de suite."
	}
	return out
}

func partyClause(ctx intent.Context) string {
	if ctx.PartySize <= 0 {
		return ""
	}
	if ctx.PartySize == 1 {
		return "pour 1 personne"
	}
	return fmt.Sprintf("pour %d personnes", ctx.PartySize)
}

// venueClause recommends the first venue of the slice, with its contact when
// known. Deterministic: callers order venues by display rank.
func venueClause(venues []models.Venue) string {
	if len(venues) == 0 {
		return ""
	}
	v := venues[0]

	var b strings.Builder
	b.WriteString("Je vous recommande ")
	b.WriteString(v.Name)
	if v.Area != "" {
		b.WriteString(" (")
		b.WriteString(v.Area)
		b.WriteString(")")
	}
	switch {
	case v.WhatsApp != nil && *v.WhatsApp != "":
		b.WriteString(", joignable sur WhatsApp au ")
		b.WriteString(*v.WhatsApp)
	case v.Phone != nil && *v.Phone != "":
		b.WriteString(", joignable au ")
		b.WriteString(*v.Phone)
	}
	b.WriteString(".")
	return b.String()
}
