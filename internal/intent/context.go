package intent

import (
	"gliitz-backend/internal/models"
)

// contextWindow bounds how many history turns are re-scanned per request.
const contextWindow = 10

// Context is the merged conversation state for the current turn. It is
// re-derived from scratch on every call; nothing here outlives the request.
type Context struct {
	RequestedServices []string // still-active categories, oldest first
	PartySize         int
	Timeframe         string
	Moods             []string
	Negations         []string // categories dropped by the latest turn
}

func (c Context) HasService(cat string) bool {
	for _, s := range c.RequestedServices {
		if s == cat {
			return true
		}
	}
	return false
}

func (c Context) HasMood(mood string) bool {
	for _, m := range c.Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// MergeContext replays the recent history tail in chronological order and
// folds in the current turn's entities. The invariant per turn: active
// services = (previous ∪ added) − negated, with "only X" phrasing negating
// every previously active category not re-mentioned. Bare updates (a lone
// party size, a new timeframe) touch only their own field. History is not
// mutated; malformed entries are skipped.
func MergeContext(history []models.Message, current Entities) Context {
	var ctx Context

	start := len(history) - contextWindow
	if start < 0 {
		start = 0
	}
	for _, msg := range history[start:] {
		// Assistant turns carry no user intent; entries with no text or an
		// unknown sender are corrupt upstream data and are ignored.
		if msg.Sender != models.SenderUser || msg.Text == "" {
			continue
		}
		applyTurn(&ctx, Extract(msg.Text), nil)
	}

	var dropped []string
	applyTurn(&ctx, current, &dropped)
	ctx.Negations = dropped

	return ctx
}

// applyTurn folds one turn's entities into ctx. Additions first, then
// exclusivity, then explicit negations, so a negation in the same message
// wins over a positive mention of the same category.
func applyTurn(ctx *Context, e Entities, dropped *[]string) {
	for _, cat := range e.Services {
		if !ctx.HasService(cat) {
			ctx.RequestedServices = append(ctx.RequestedServices, cat)
		}
	}

	if e.Exclusive && len(e.Services) > 0 {
		kept := ctx.RequestedServices[:0:0]
		for _, cat := range ctx.RequestedServices {
			if mentions(e.Services, cat) {
				kept = append(kept, cat)
			} else {
				if dropped != nil {
					*dropped = append(*dropped, cat)
				}
			}
		}
		ctx.RequestedServices = kept
	}

	for _, cat := range e.Negated {
		ctx.RequestedServices = remove(ctx.RequestedServices, cat)
		if dropped != nil && !mentions(*dropped, cat) {
			*dropped = append(*dropped, cat)
		}
	}

	if e.PartySize > 0 {
		ctx.PartySize = e.PartySize
	}
	if e.Timeframe != "" {
		ctx.Timeframe = e.Timeframe
	}
	for _, mood := range e.Moods {
		if !ctx.HasMood(mood) {
			ctx.Moods = append(ctx.Moods, mood)
		}
	}
}

func mentions(set []string, cat string) bool {
	for _, s := range set {
		if s == cat {
			return true
		}
	}
	return false
}

func remove(set []string, cat string) []string {
	out := set[:0:0]
	for _, s := range set {
		if s != cat {
			out = append(out, s)
		}
	}
	return out
}
