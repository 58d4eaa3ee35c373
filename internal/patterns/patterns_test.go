package patterns

import (
	"reflect"
	"testing"
)

func TestFindFeaturing(t *testing.T) {
	tests := []struct {
		name   string
		artist string
		found  bool
	}{
		{"Title ft. Other Artist", "Other Artist", true},
		{"Title feat. Other Artist", "Other Artist", true},
		{"Title featuring Other", "Other", true},
		{"Title (ft. Other)", "Other", true},
		{"Title [feat. Other]", "Other", true},
		{"Title (with Other)", "Other", true},
		{"Title with Other", "", false},
		{"Title ft. Other Remix", "", false},
		{"Title feat. Somebody mix", "", false},
		{"Title w/ you in mind", "", false},
		{"Plain Title", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft, ok := FindFeaturing(tt.name)
			if ok != tt.found {
				t.Fatalf("FindFeaturing(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if ok && ft.Artist != tt.artist {
				t.Errorf("FindFeaturing(%q) artist = %q, want %q", tt.name, ft.Artist, tt.artist)
			}
		})
	}
}

func TestRemoveFeaturing(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Artist - Title ft. Other", "Artist - Title"},
		{"Artist - Title (feat. Other)", "Artist - Title "},
		{"Artist ft. A - Title feat. B", "Artist - Title"},
		{"Artist - Title (Other Remix)", "Artist - Title (Other Remix)"},
	}
	for _, tt := range tests {
		if got := RemoveFeaturing(tt.in); got != tt.want {
			t.Errorf("RemoveFeaturing(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanDigiOnly(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		found bool
	}{
		{"Title", "Title", false},
		{"Title (digital only)", "Title", true},
		{"Title [Bonus Track]", "Title", true},
		{"Title *digital bonus*", "Title", true},
		{"Title - Digital Only", "Title", true},
		{"DIGI 1. Title", "Title", true},
		{"Title (Bandcamp exclusive)", "Title", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, found := CleanDigiOnly(tt.in)
			if found != tt.found {
				t.Fatalf("CleanDigiOnly(%q) found = %v, want %v", tt.in, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("CleanDigiOnly(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFindTrackAlt(t *testing.T) {
	tests := []struct {
		in    string
		alt   string
		rest  string
		found bool
	}{
		{"A1. Artist - Title", "A1", "Artist - Title", true},
		{"A1- Artist - Title", "A1", "Artist - Title", true},
		{"B2 - Title", "B2", "Title", true},
		{"AA. Title", "AA", "Title", true},
		{"A. Title", "A", "Title", true},
		{"A: Title", "A", "Title", true},
		{"Artist - A1. Title", "A1", "Artist - Title", true},
		{"Amazing Title", "", "Amazing Title", false},
		{"A (Original Mix)", "", "A (Original Mix)", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			alt, rest, found := FindTrackAlt(tt.in)
			if found != tt.found {
				t.Fatalf("FindTrackAlt(%q) found = %v, want %v", tt.in, found, tt.found)
			}
			if alt != tt.alt || rest != tt.rest {
				t.Errorf("FindTrackAlt(%q) = %q, %q, want %q, %q", tt.in, alt, rest, tt.alt, tt.rest)
			}
		})
	}
}

func TestFindAllTrackAlts(t *testing.T) {
	text := "A1. First\nA2. Second\nB1. Third\nB1. Third again"
	want := []string{"A1", "A2", "B1"}
	if got := FindAllTrackAlts(text); !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllTrackAlts = %v, want %v", got, want)
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Artist - Title", []string{"Artist", "Title"}},
		{"Artist - Title - Subtitle", []string{"Artist", "Title", "Subtitle"}},
		{"Artist (Some - Thing) - Title", []string{"Artist (Some - Thing)", "Title"}},
		{"Plain Title", []string{"Plain Title"}},
		{"Artist -- Title", []string{"Artist -- Title"}},
		{"Live - at the venue", []string{"Live - at the venue"}},
		{"Some Sample Pack - Vol 1", []string{"Some Sample Pack - Vol 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SplitName(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
