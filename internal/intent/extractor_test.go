package intent

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "YACHT", "yacht"},
		{"accents folded", "dîner à Marbella", "diner a marbella"},
		{"punctuation flattened", "non, juste le yacht!", "non juste le yacht"},
		{"whitespace collapsed", "un   yacht    demain", "un yacht demain"},
		{"abbreviation expanded", "une resa pour ce soir", "une reservation pour ce soir"},
		{"resto expanded", "un resto chic", "un restaurant chic"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtract_Services(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		services []string
		negated  []string
	}{
		{"single service", "je veux un yacht", []string{"yacht"}, nil},
		{"two services", "un restaurant et un yacht", []string{"restaurant", "yacht"}, nil},
		{"synonym", "louer un bateau", []string{"yacht"}, nil},
		{"english synonym", "book a boat for a cruise", []string{"yacht"}, nil},
		{"negated service", "sans le restaurant", nil, []string{"restaurant"}},
		{"pas de", "pas de yacht finalement", nil, []string{"yacht"}},
		{"mixed", "un yacht mais sans restaurant", []string{"yacht"}, []string{"restaurant"}},
		{"meal aboard is not a restaurant", "je veux diner sur un yacht", []string{"yacht"}, nil},
		{"meal alone is a restaurant", "je veux diner demain", []string{"restaurant"}, nil},
		{"corrective no opener is not a negation", "no i want dinner", []string{"restaurant"}, nil},
		{"corrective opener before real negation", "non merci pas de yacht", nil, []string{"yacht"}},
		{"nothing recognized", "qwerty azerty", nil, nil},
		{"empty message", "", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Extract(tc.message)
			if !reflect.DeepEqual(e.Services, tc.services) {
				t.Errorf("Services = %v, want %v", e.Services, tc.services)
			}
			if !reflect.DeepEqual(e.Negated, tc.negated) {
				t.Errorf("Negated = %v, want %v", e.Negated, tc.negated)
			}
		})
	}
}

func TestExtract_Exclusivity(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		exclusive bool
	}{
		{"juste le", "juste le yacht", true},
		{"seulement", "seulement le restaurant", true},
		{"corrective non", "non je veux un yacht", true},
		{"corrective no in english", "no i want dinner", true},
		{"plain request", "je veux un yacht", false},
		{"corrective without service", "non merci", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Extract(tc.message)
			if e.Exclusive != tc.exclusive {
				t.Errorf("Exclusive = %v, want %v (message %q)", e.Exclusive, tc.exclusive, tc.message)
			}
		})
	}
}

func TestExtract_PartySize(t *testing.T) {
	tests := []struct {
		name    string
		message string
		size    int
	}{
		{"digits with personnes", "4 personnes", 4},
		{"digits with people", "8 people please", 8},
		{"pour digits", "une table pour 6", 6},
		{"bare number", "12", 12},
		{"spelled out", "quatre personnes", 4},
		{"bare spelled out", "douze", 12},
		{"article not a count", "pour un diner romantique", 0},
		{"hour is not a count", "ce soir a 21h", 0},
		{"no number", "un yacht avec dj", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Extract(tc.message)
			if e.PartySize != tc.size {
				t.Errorf("PartySize = %d, want %d (message %q)", e.PartySize, tc.size, tc.message)
			}
		})
	}
}

func TestExtract_TimeframeAndMoods(t *testing.T) {
	e := Extract("je veux dîner demain avec ma femme et louer un yacht avec dj")

	if e.Timeframe != "demain" {
		t.Errorf("Timeframe = %q, want %q", e.Timeframe, "demain")
	}
	if !contains(e.Moods, MoodRomantic) {
		t.Errorf("Moods = %v, expected to include %q", e.Moods, MoodRomantic)
	}
	if !contains(e.Moods, MoodFestive) {
		t.Errorf("Moods = %v, expected to include %q", e.Moods, MoodFestive)
	}
	if !reflect.DeepEqual(e.Services, []string{CategoryRestaurant, CategoryYacht}) {
		t.Errorf("Services = %v, want [restaurant yacht]", e.Services)
	}
}

func TestExtract_CompoundTimeframeWins(t *testing.T) {
	e := Extract("un restaurant demain soir")
	if e.Timeframe != "demain soir" {
		t.Errorf("Timeframe = %q, want %q", e.Timeframe, "demain soir")
	}
}

func TestExtract_Greeting(t *testing.T) {
	e := Extract("bonjour")
	if !e.Greeting {
		t.Error("expected Greeting for 'bonjour'")
	}
	if !e.Empty() {
		t.Errorf("expected empty entities for a bare greeting, got %+v", e)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	msg := "je veux dîner demain avec ma femme et louer un yacht avec dj"
	first := Extract(msg)
	second := Extract(msg)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func contains(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}
