package patterns

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Album", "Album"},
		{"Album (Limited Edition)", "Album"},
		{"Album [Vinyl]", "Album"},
		{"Album (single)", "Album"},
		{"Album | Free Download", "Album"},
		{"Album (Free Download)", "Album"},
		{"Album (Free Jazz Mix)", "Album (Free Jazz Mix)"},
		{"Album - Bonus", "Album"},
		{"Album CD2", "Album"},
		{"EP - Album", "Album"},
		{"hi -bye", "hi - bye"},
		{"hi- bye", "hi - bye"},
		{"hi  bye", "hi bye"},
		{"hi - ( bye)", "hi (bye)"},
		{"hi (bye ))", "hi (bye)"},
		{"bye - Reworked", "bye (Reworked)"},
		{"Title (Some Mix", "Title (Some Mix)"},
		{`hi - "bye"`, "hi - bye"},
		{"Album (Remixes)", "Album Remixes"},
		{"[Remixer] - hi - bye", "hi - bye [Remixer]"},
		{`"bye" by hi`, "hi - bye"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := CleanName(tt.in)
			if got != tt.want {
				t.Fatalf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := CleanName(got); again != got {
				t.Errorf("CleanName is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
