package reply

import (
	"strings"
	"testing"

	"gliitz-backend/internal/intent"
	"gliitz-backend/internal/models"
)

func strptr(s string) *string { return &s }

func TestRender_FillsClauses(t *testing.T) {
	tpl := Template{ID: "t", Intent: intent.CategoryYacht,
		Text: "Je m'occupe de votre yacht {party_clause} {time_clause}. {venue_clause}"}
	ctx := intent.Context{PartySize: 4, Timeframe: "demain"}
	venues := []models.Venue{{
		Name:     "Puerto Banús Charters",
		Area:     "Puerto Banús",
		WhatsApp: strptr("+34 600 000 001"),
	}}

	out := Render(tpl, ctx, venues)

	for _, want := range []string{"pour 4 personnes", "demain", "Puerto Banús Charters", "+34 600 000 001"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestRender_OmitsMissingClauses(t *testing.T) {
	tpl := Template{ID: "t", Intent: intent.CategoryYacht,
		Text: "Je m'occupe de votre yacht {party_clause} {time_clause}. {venue_clause}"}

	out := Render(tpl, intent.Context{}, nil)

	if out != "Je m'occupe de votre yacht." {
		t.Errorf("output = %q, want clean sentence without clauses", out)
	}
}

func TestRender_NeverLeaksPlaceholders(t *testing.T) {
	for intentKey, templates := range DefaultCatalog() {
		for _, tpl := range templates {
			out := Render(tpl, intent.Context{}, nil)
			if strings.ContainsAny(out, "{}") {
				t.Errorf("template %s (%s) leaked a placeholder: %q", tpl.ID, intentKey, out)
			}
			if strings.TrimSpace(out) == "" {
				t.Errorf("template %s (%s) rendered empty", tpl.ID, intentKey)
			}
		}
	}
}

func TestRender_SingularPartySize(t *testing.T) {
	tpl := Template{ID: "t", Intent: intent.CategorySpa, Text: "Un soin {party_clause}."}

	out := Render(tpl, intent.Context{PartySize: 1}, nil)

	if out != "Un soin pour 1 personne." {
		t.Errorf("output = %q", out)
	}
}

func TestRender_PhoneWhenNoWhatsApp(t *testing.T) {
	tpl := Template{ID: "t", Intent: intent.CategoryRestaurant, Text: "{venue_clause}"}
	venues := []models.Venue{{Name: "Casa Marbella", Phone: strptr("+34 952 000 000")}}

	out := Render(tpl, intent.Context{}, venues)

	if !strings.Contains(out, "+34 952 000 000") {
		t.Errorf("output %q missing phone contact", out)
	}
}

// Any message, however unintelligible, must produce a non-empty reply through
// the full extract → merge → select → render pipeline.
func TestPipeline_FallbackNeverEmpty(t *testing.T) {
	s := NewSelector(DefaultCatalog())

	inputs := []string{"", "???", "bonjour", "qwerty azerty", "!!!", "日本語のテキスト"}
	for _, input := range inputs {
		t.Run("input_"+input, func(t *testing.T) {
			cur := intent.Extract(input)
			ctx := intent.MergeContext(nil, cur)
			tpl := s.Select(ctx, cur, nil)
			out := Render(tpl, ctx, nil)

			if strings.TrimSpace(out) == "" {
				t.Errorf("empty reply for input %q", input)
			}
		})
	}
}

func TestPipeline_GreetingGetsGreetingTemplate(t *testing.T) {
	s := NewSelector(DefaultCatalog())

	cur := intent.Extract("bonjour")
	ctx := intent.MergeContext(nil, cur)
	tpl := s.Select(ctx, cur, nil)

	if tpl.Intent != IntentGreeting {
		t.Errorf("intent = %q, want greeting", tpl.Intent)
	}
	if len(ctx.RequestedServices) != 0 {
		t.Errorf("services = %v, want none", ctx.RequestedServices)
	}
}
