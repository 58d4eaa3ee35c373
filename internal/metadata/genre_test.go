package metadata

import (
	"reflect"
	"testing"

	"github.com/snejus/beetcamp-sub000/internal/config"
)

func TestGenres(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		cfg      config.GenreSettings
		label    string
		want     []string
	}{
		{
			name:     "exact match passes every mode",
			keywords: []string{"house"},
			cfg:      config.GenreSettings{Mode: "classical"},
			want:     []string{"house"},
		},
		{
			name:     "unknown compound fails classical",
			keywords: []string{"crazy techno"},
			cfg:      config.GenreSettings{Mode: "classical"},
			want:     nil,
		},
		{
			name:     "unknown compound fails progressive",
			keywords: []string{"crazy techno"},
			cfg:      config.GenreSettings{Mode: "progressive"},
			want:     nil,
		},
		{
			name:     "last word is enough for psychedelic",
			keywords: []string{"crazy techno"},
			cfg:      config.GenreSettings{Mode: "psychedelic"},
			want:     []string{"crazy techno"},
		},
		{
			name:     "all words known passes progressive",
			keywords: []string{"minimal ambient"},
			cfg:      config.GenreSettings{Mode: "progressive"},
			want:     []string{"minimal ambient"},
		},
		{
			name:     "label name is dropped",
			keywords: []string{"cool label", "techno"},
			cfg:      config.GenreSettings{Mode: "classical"},
			label:    "Cool Label",
			want:     []string{"techno"},
		},
		{
			name:     "label name kept when a valid genre",
			keywords: []string{"deep house"},
			cfg:      config.GenreSettings{Mode: "classical"},
			label:    "Deep House",
			want:     []string{"deep house"},
		},
		{
			name:     "more specific genre wins",
			keywords: []string{"house", "garage house"},
			cfg:      config.GenreSettings{Mode: "classical"},
			want:     []string{"garage house"},
		},
		{
			name:     "badly delimited keywords are expanded",
			keywords: []string{"techno. ambient"},
			cfg:      config.GenreSettings{Mode: "classical"},
			want:     []string{"techno", "ambient"},
		},
		{
			name:     "always include skips validation",
			keywords: []string{"jersey club"},
			cfg:      config.GenreSettings{Mode: "classical", AlwaysInclude: []string{"jersey"}},
			want:     []string{"jersey club"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Genres(tt.keywords, tt.cfg, tt.label); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Genres(%v) = %v, want %v", tt.keywords, got, tt.want)
			}
		})
	}
}
