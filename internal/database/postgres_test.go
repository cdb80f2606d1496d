package database

import "testing"

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		name string
		file string
		want int
	}{
		{"schema file", "001_initial_schema.sql", 1},
		{"seed file", "002_seed_venues.sql", 2},
		{"double digit", "012_add_venue_hours.sql", 12},
		{"not sql", "001_notes.txt", 0},
		{"no separator", "001.sql", 0},
		{"non numeric prefix", "abc_stuff.sql", 0},
		{"plain file", "README.md", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := migrationVersion(tc.file); got != tc.want {
				t.Errorf("migrationVersion(%q) = %d, want %d", tc.file, got, tc.want)
			}
		})
	}
}
