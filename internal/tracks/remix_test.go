package tracks

import "testing"

func TestRemixFromName(t *testing.T) {
	tests := []struct {
		name    string
		found   bool
		remixer string
		typ     string
		artist  string
	}{
		{"Title (Artist Remix)", true, "Artist", "remix", "Artist"},
		{"Title [Club Edit]", true, "Club", "edit", "Club"},
		{"Title - Someone Rmx", true, "Someone", "rmx", "Someone"},
		{"Title (Original Mix)", true, "Original", "mix", ""},
		{"Title (Extended Mix)", true, "Extended", "mix", ""},
		{"Title (Remastered)", true, "", "remastered", ""},
		{"Title (Version)", false, "", "", ""},
		{"Plain Title", false, "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := RemixFromName(tt.name)
			if ok != tt.found {
				t.Fatalf("RemixFromName(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if !ok {
				return
			}
			if r.Remixer != tt.remixer || r.Type != tt.typ {
				t.Errorf("RemixFromName(%q) = %q/%q, want %q/%q",
					tt.name, r.Remixer, r.Type, tt.remixer, tt.typ)
			}
			if got := r.Artist(); got != tt.artist {
				t.Errorf("RemixFromName(%q).Artist() = %q, want %q", tt.name, got, tt.artist)
			}
		})
	}
}

func TestRemixSpanValidation(t *testing.T) {
	// only the last parenthesised clause is a remix credit
	if _, ok := RemixFromName("Title (radio mix) extra (words)"); ok {
		t.Error("non-final parenthesised clause accepted")
	}

	// a dash clause does not reach across further structure
	if _, ok := RemixFromName("Some - Mix of things - Title"); ok {
		t.Error("dash clause followed by another dash accepted")
	}

	r, ok := RemixFromName("Intro (skit) - Faraway Mix")
	if !ok || r.Type != "mix" {
		t.Fatalf("trailing dash clause not found: %+v %v", r, ok)
	}
	if !r.End {
		t.Error("clause at the end of the name not flagged as End")
	}
}
