package services

import (
	"strings"
	"testing"

	"gliitz-backend/internal/intent"
	"gliitz-backend/internal/models"
)

func TestShouldDelegate(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"recognized request stays on rules", "je veux un yacht demain", false},
		{"greeting stays on rules", "bonjour", false},
		{"short unrecognized stays on rules", "euh voilà", false},
		{"long unrecognized delegates", "peux tu m'expliquer comment fonctionne votre programme partenaires", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cur := intent.Extract(tc.message)
			got := shouldDelegate(cur, tc.message)
			if got != tc.want {
				t.Errorf("shouldDelegate(%q) = %v, want %v", tc.message, got, tc.want)
			}
		})
	}
}

func TestApplyMemberDefaults(t *testing.T) {
	four := 4
	zero := 0

	tests := []struct {
		name     string
		size     int
		prefs    models.Preferences
		wantSize int
	}{
		{"default fills unspecified size", 0, models.Preferences{DefaultPartySize: &four}, 4},
		{"conversation size wins over default", 2, models.Preferences{DefaultPartySize: &four}, 2},
		{"no default leaves size unset", 0, models.Preferences{}, 0},
		{"zero default leaves size unset", 0, models.Preferences{DefaultPartySize: &zero}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			merged := intent.Context{PartySize: tc.size}
			applyMemberDefaults(&merged, &tc.prefs)
			if merged.PartySize != tc.wantSize {
				t.Errorf("PartySize = %d, want %d", merged.PartySize, tc.wantSize)
			}
		})
	}
}

func TestConversationTitle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"short message kept", "Un yacht demain", "Un yacht demain"},
		{"whitespace trimmed", "  bonsoir  ", "bonsoir"},
		{"empty gets default", "   ", "Nouvelle conversation"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := conversationTitle(tc.message)
			if got != tc.want {
				t.Errorf("conversationTitle(%q) = %q, want %q", tc.message, got, tc.want)
			}
		})
	}
}

func TestConversationTitle_Truncates(t *testing.T) {
	long := strings.Repeat("très longue demande ", 10)
	got := conversationTitle(long)
	if len([]rune(got)) != 49 { // 48 runes + ellipsis
		t.Errorf("truncated title has %d runes, want 49", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated title %q missing ellipsis", got)
	}
}
