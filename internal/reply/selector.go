package reply

import (
	"strings"

	"gliitz-backend/internal/intent"
	"gliitz-backend/internal/models"
)

// recentWindow bounds how far back the selector looks when counting
// assistant turns and checking for repetition.
const recentWindow = 10

// Selector picks templates from a fixed catalog. The tie-break is a
// round-robin index seeded by the number of recent assistant turns, so
// selection is deterministic for a given history.
type Selector struct {
	catalog Catalog
}

func NewSelector(catalog Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Select resolves the primary intent and returns a candidate template,
// avoiding the template used by the immediately preceding assistant message
// when the intent's catalog has alternatives. Never fails: an unknown or
// empty intent falls back to the clarification catalog.
func (s *Selector) Select(ctx intent.Context, cur intent.Entities, history []models.Message) Template {
	key := resolveIntent(ctx, cur)

	candidates := s.candidatesFor(key, ctx)
	if len(candidates) == 0 {
		candidates = s.catalog[IntentFallback]
	}
	if len(candidates) == 0 {
		// Catalog misconfiguration; still never return nothing.
		return Template{ID: "fallback-builtin", Intent: IntentFallback,
			Text: "Dites-m'en un peu plus et je m'en occupe tout de suite."}
	}

	seed := assistantTurns(history)
	last := lastAssistantText(history)

	for i := 0; i < len(candidates); i++ {
		cand := candidates[(seed+i)%len(candidates)]
		if last == "" || !matchesReply(cand, last) {
			return cand
		}
	}

	// Every candidate was just used; repetition is allowed at this point.
	return candidates[seed%len(candidates)]
}

// resolveIntent: one active service wins outright, several resolve to the
// combined intent, none to greeting or clarification.
func resolveIntent(ctx intent.Context, cur intent.Entities) string {
	switch len(ctx.RequestedServices) {
	case 0:
		if cur.Greeting {
			return IntentGreeting
		}
		return IntentFallback
	case 1:
		return ctx.RequestedServices[0]
	default:
		return IntentMulti
	}
}

// candidatesFor prefers a mood-refined variant of a category when one
// exists, in mood order of the merged context.
func (s *Selector) candidatesFor(key string, ctx intent.Context) []Template {
	for _, mood := range ctx.Moods {
		if refined, ok := s.catalog[key+"/"+mood]; ok && len(refined) > 0 {
			return refined
		}
	}
	return s.catalog[key]
}

func assistantTurns(history []models.Message) int {
	start := len(history) - recentWindow
	if start < 0 {
		start = 0
	}
	count := 0
	for _, msg := range history[start:] {
		if msg.Sender == models.SenderAssistant {
			count++
		}
	}
	return count
}

func lastAssistantText(history []models.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Sender == models.SenderAssistant {
			return history[i].Text
		}
	}
	return ""
}

// matchesReply detects whether reply was rendered from tpl by comparing the
// template's leading literal (everything before the first placeholder).
// Rendered output differs from the template wherever placeholders were
// filled, so the static prefix is the stable fingerprint.
func matchesReply(tpl Template, reply string) bool {
	text := tpl.Text
	if cut := strings.IndexByte(text, '{'); cut >= 0 {
		text = text[:cut]
	}
	sig := strings.TrimSpace(text)
	if sig == "" {
		return strings.TrimSpace(reply) == strings.TrimSpace(tpl.Text)
	}
	return strings.HasPrefix(reply, sig)
}
