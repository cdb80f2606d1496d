package reply

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"gliitz-backend/internal/intent"
	"gliitz-backend/internal/models"
)

func userMsg(text string) models.Message {
	return models.Message{ID: uuid.New(), Sender: models.SenderUser, Text: text, CreatedAt: time.Now()}
}

func assistantMsg(text string) models.Message {
	m := userMsg(text)
	m.Sender = models.SenderAssistant
	return m
}

func TestSelect_SingleServiceIntent(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	ctx := intent.Context{RequestedServices: []string{intent.CategoryYacht}}

	tpl := s.Select(ctx, intent.Entities{}, nil)

	if tpl.Intent != intent.CategoryYacht {
		t.Errorf("intent = %q, want %q", tpl.Intent, intent.CategoryYacht)
	}
}

func TestSelect_MultiServiceIntent(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	ctx := intent.Context{RequestedServices: []string{intent.CategoryRestaurant, intent.CategoryYacht}}

	tpl := s.Select(ctx, intent.Entities{}, nil)

	if tpl.Intent != IntentMulti {
		t.Errorf("intent = %q, want %q", tpl.Intent, IntentMulti)
	}
}

func TestSelect_GreetingVsFallback(t *testing.T) {
	s := NewSelector(DefaultCatalog())

	greeting := s.Select(intent.Context{}, intent.Entities{Greeting: true}, nil)
	if greeting.Intent != IntentGreeting {
		t.Errorf("greeting intent = %q, want %q", greeting.Intent, IntentGreeting)
	}

	fallback := s.Select(intent.Context{}, intent.Entities{}, nil)
	if fallback.Intent != IntentFallback {
		t.Errorf("fallback intent = %q, want %q", fallback.Intent, IntentFallback)
	}
}

func TestSelect_MoodRefinement(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	ctx := intent.Context{
		RequestedServices: []string{intent.CategoryRestaurant},
		Moods:             []string{intent.MoodRomantic},
	}

	tpl := s.Select(ctx, intent.Entities{}, nil)

	want := intent.CategoryRestaurant + "/" + intent.MoodRomantic
	if tpl.Intent != want {
		t.Errorf("intent = %q, want %q", tpl.Intent, want)
	}
}

func TestSelect_NoImmediateRepetition(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	ctx := intent.Context{RequestedServices: []string{intent.CategoryYacht}, PartySize: 4}

	var history []models.Message
	first := s.Select(ctx, intent.Entities{}, history)
	history = append(history, userMsg("un yacht"), assistantMsg(Render(first, ctx, nil)))

	second := s.Select(ctx, intent.Entities{}, history)

	if second.ID == first.ID {
		t.Errorf("selector repeated template %q on consecutive turns", first.ID)
	}
}

func TestSelect_SingleCandidateMayRepeat(t *testing.T) {
	catalog := Catalog{
		intent.CategorySpa: {{ID: "spa-only", Intent: intent.CategorySpa, Text: "Je m'occupe de votre spa."}},
	}
	s := NewSelector(catalog)
	ctx := intent.Context{RequestedServices: []string{intent.CategorySpa}}

	history := []models.Message{
		userMsg("un spa"),
		assistantMsg("Je m'occupe de votre spa."),
	}

	tpl := s.Select(ctx, intent.Entities{}, history)
	if tpl.ID != "spa-only" {
		t.Errorf("expected repetition of the only candidate, got %q", tpl.ID)
	}
}

func TestSelect_UnknownIntentFallsBack(t *testing.T) {
	catalog := Catalog{
		IntentFallback: DefaultCatalog()[IntentFallback],
	}
	s := NewSelector(catalog)
	ctx := intent.Context{RequestedServices: []string{intent.CategoryVilla}}

	tpl := s.Select(ctx, intent.Entities{}, nil)

	if tpl.Intent != IntentFallback {
		t.Errorf("intent = %q, want fallback for empty category catalog", tpl.Intent)
	}
}

func TestSelect_Deterministic(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	ctx := intent.Context{RequestedServices: []string{intent.CategoryClub}}
	history := []models.Message{
		userMsg("un club ce soir"),
		assistantMsg("Soirée à Marbella !"),
	}

	first := s.Select(ctx, intent.Entities{}, history)
	second := s.Select(ctx, intent.Entities{}, history)

	if first.ID != second.ID {
		t.Errorf("selection not deterministic: %q vs %q", first.ID, second.ID)
	}
}
