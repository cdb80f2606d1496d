package intent

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"gliitz-backend/internal/models"
)

func userMsg(text string) models.Message {
	return models.Message{
		ID:        uuid.New(),
		Sender:    models.SenderUser,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

func assistantMsg(text string) models.Message {
	m := userMsg(text)
	m.Sender = models.SenderAssistant
	return m
}

func TestMergeContext_Scenario(t *testing.T) {
	// Turn 1: dinner tomorrow with my wife, plus a yacht with a DJ.
	history := []models.Message{}
	ctx := MergeContext(history, Extract("je veux dîner demain avec ma femme et louer un yacht avec dj"))

	if !reflect.DeepEqual(ctx.RequestedServices, []string{CategoryRestaurant, CategoryYacht}) {
		t.Fatalf("turn 1 services = %v, want [restaurant yacht]", ctx.RequestedServices)
	}
	if !ctx.HasMood(MoodRomantic) {
		t.Errorf("turn 1 moods = %v, expected to include romantic", ctx.Moods)
	}
	if ctx.Timeframe != "demain" {
		t.Errorf("turn 1 timeframe = %q, want \"demain\"", ctx.Timeframe)
	}

	// Turn 2: correction — dinner aboard the yacht. Restaurant drops.
	history = append(history,
		userMsg("je veux dîner demain avec ma femme et louer un yacht avec dj"),
		assistantMsg("Avec plaisir, je m'en occupe."),
	)
	ctx = MergeContext(history, Extract("non je veux dîner sur un yacht"))

	if !reflect.DeepEqual(ctx.RequestedServices, []string{CategoryYacht}) {
		t.Fatalf("turn 2 services = %v, want [yacht]", ctx.RequestedServices)
	}
	if !mentions(ctx.Negations, CategoryRestaurant) {
		t.Errorf("turn 2 negations = %v, expected to include restaurant", ctx.Negations)
	}

	// Turn 3: bare party size. Services untouched.
	history = append(history,
		userMsg("non je veux dîner sur un yacht"),
		assistantMsg("Très bien, un dîner à bord."),
	)
	ctx = MergeContext(history, Extract("4 personnes"))

	if !reflect.DeepEqual(ctx.RequestedServices, []string{CategoryYacht}) {
		t.Fatalf("turn 3 services = %v, want [yacht]", ctx.RequestedServices)
	}
	if ctx.PartySize != 4 {
		t.Errorf("turn 3 party size = %d, want 4", ctx.PartySize)
	}
	if ctx.Timeframe != "demain" {
		t.Errorf("turn 3 timeframe = %q, want \"demain\" (carried over)", ctx.Timeframe)
	}
}

func TestMergeContext_NegationPreservesUnrelated(t *testing.T) {
	history := []models.Message{
		userMsg("un yacht et un restaurant pour 6 personnes demain soir"),
		assistantMsg("Je vous prépare les deux."),
	}

	before := MergeContext(history, Entities{})
	ctx := MergeContext(history, Extract("finalement sans le restaurant"))

	if !reflect.DeepEqual(ctx.RequestedServices, []string{CategoryYacht}) {
		t.Errorf("services = %v, want [yacht]", ctx.RequestedServices)
	}
	if ctx.PartySize != before.PartySize {
		t.Errorf("party size changed: %d -> %d", before.PartySize, ctx.PartySize)
	}
	if ctx.Timeframe != before.Timeframe {
		t.Errorf("timeframe changed: %q -> %q", before.Timeframe, ctx.Timeframe)
	}
	if !reflect.DeepEqual(ctx.Moods, before.Moods) {
		t.Errorf("moods changed: %v -> %v", before.Moods, ctx.Moods)
	}
}

func TestMergeContext_BareNumericIsolation(t *testing.T) {
	history := []models.Message{
		userMsg("je veux louer un yacht"),
		assistantMsg("Excellent choix."),
	}

	ctx := MergeContext(history, Extract("4 personnes"))

	if !reflect.DeepEqual(ctx.RequestedServices, []string{CategoryYacht}) {
		t.Errorf("services = %v, want [yacht]", ctx.RequestedServices)
	}
	if ctx.PartySize != 4 {
		t.Errorf("party size = %d, want 4", ctx.PartySize)
	}
}

func TestMergeContext_OnlyXDropsOthers(t *testing.T) {
	history := []models.Message{
		userMsg("un restaurant un yacht et un spa"),
		assistantMsg("Tout cela est possible."),
	}

	ctx := MergeContext(history, Extract("juste le yacht"))

	if !reflect.DeepEqual(ctx.RequestedServices, []string{CategoryYacht}) {
		t.Errorf("services = %v, want [yacht]", ctx.RequestedServices)
	}
	for _, dropped := range []string{CategoryRestaurant, CategorySpa} {
		if !mentions(ctx.Negations, dropped) {
			t.Errorf("negations = %v, expected to include %q", ctx.Negations, dropped)
		}
	}
}

func TestMergeContext_LastMentionedWins(t *testing.T) {
	history := []models.Message{
		userMsg("un restaurant pour 2 personnes ce soir"),
		assistantMsg("C'est noté."),
		userMsg("finalement 6 personnes demain"),
		assistantMsg("Mis à jour."),
	}

	ctx := MergeContext(history, Entities{})

	if ctx.PartySize != 6 {
		t.Errorf("party size = %d, want 6", ctx.PartySize)
	}
	if ctx.Timeframe != "demain" {
		t.Errorf("timeframe = %q, want \"demain\"", ctx.Timeframe)
	}
}

func TestMergeContext_SkipsMalformedEntries(t *testing.T) {
	history := []models.Message{
		userMsg("un yacht pour demain"),
		{Sender: "???", Text: "corrupt entry"},
		{Sender: models.SenderUser, Text: ""},
		assistantMsg("Avec plaisir."),
	}

	ctx := MergeContext(history, Entities{})

	if !reflect.DeepEqual(ctx.RequestedServices, []string{CategoryYacht}) {
		t.Errorf("services = %v, want [yacht]", ctx.RequestedServices)
	}
}

func TestMergeContext_WindowBounded(t *testing.T) {
	// The yacht request sits beyond the 10-turn window and must be forgotten.
	history := []models.Message{userMsg("je veux un yacht")}
	for i := 0; i < contextWindow; i++ {
		history = append(history, userMsg("merci beaucoup"))
	}

	ctx := MergeContext(history, Entities{})

	if len(ctx.RequestedServices) != 0 {
		t.Errorf("services = %v, want none (out of window)", ctx.RequestedServices)
	}
}

func TestMergeContext_DoesNotMutateHistory(t *testing.T) {
	history := []models.Message{userMsg("un yacht et un restaurant")}
	textBefore := history[0].Text

	MergeContext(history, Extract("sans le restaurant"))

	if history[0].Text != textBefore {
		t.Error("history was mutated")
	}
}
