package albumname

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		original    string
		description string
		catalognum  string
		artists     []string
		label       string
		want        string
	}{
		{
			name:     "artist removed from title",
			original: "Artist - Great Album",
			artists:  []string{"Artist"},
			want:     "Great Album",
		},
		{
			name:     "album named by the artist stays",
			original: "Artist",
			artists:  []string{"Artist"},
			want:     "Artist",
		},
		{
			name:        "description header wins",
			original:    "Artist - Whatever",
			description: "Title: Actual Album",
			artists:     []string{"Artist"},
			want:        "Actual Album",
		},
		{
			name:     "quoted name extracted",
			original: `Artist "Quoted Album"`,
			artists:  []string{"Artist"},
			want:     "Quoted Album",
		},
		{
			name:     "eplp clause extracted",
			original: "Artist - Greatest Hits EP",
			artists:  []string{"Artist"},
			want:     "Greatest Hits EP",
		},
		{
			name:     "series standardized",
			original: "Album Vol 02",
			want:     "Album, Vol. 2",
		},
		{
			name:       "catalognum removed",
			original:   "CAT001 - Great Album",
			catalognum: "CAT001",
			want:       "Great Album",
		},
		{
			name:     "label removed",
			original: "Album - Super Label",
			label:    "Super Label",
			want:     "Album",
		},
		{
			name:     "va boilerplate removed",
			original: "VA - Some Comp",
			want:     "Some Comp",
		},
		{
			name:     "split release from two artists",
			original: "",
			artists:  []string{"A", "B"},
			want:     "A / B",
		},
		{
			name:       "catalognum fallback",
			original:   "CAT001",
			catalognum: "CAT001",
			want:       "CAT001",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.original, tt.description, "")
			got := r.Resolve(tt.catalognum, tt.artists, tt.artists, tt.label)
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoveVA(t *testing.T) {
	tests := []struct{ in, want string }{
		{"VA - Some Comp", "Some Comp"},
		{"Various Artists - Comp", "Comp"},
		{"Various Artists Play", "Various Artists Play"},
		{"Best Various Artists Hits", "Best Various Artists Hits"},
		{"Some Comp", "Some Comp"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RemoveVA(tt.in); got != tt.want {
				t.Errorf("RemoveVA(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckEplp(t *testing.T) {
	r := New("Album", "out now\nAlbum EP available on all platforms", "")
	if got := r.CheckEplp("Album"); got != "Album EP" {
		t.Errorf("CheckEplp = %q, want %q", got, "Album EP")
	}

	r = New("", "some text\nGreat Name EP", "")
	if got := r.CheckEplp(""); got != "Great Name EP" {
		t.Errorf("CheckEplp = %q, want %q", got, "Great Name EP")
	}
}
