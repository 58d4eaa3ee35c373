package patterns

import (
	"reflect"
	"testing"
)

func TestSplitArtists(t *testing.T) {
	tests := []struct {
		in    string
		force bool
		want  []string
	}{
		{"Artist", false, []string{"Artist"}},
		{"A, B", false, []string{"A", "B"}},
		{"A x B", false, []string{"A", "B"}},
		{"A + B", false, []string{"A", "B"}},
		{"A vs. B", false, []string{"A", "B"}},
		{"A and B", false, []string{"A", "B"}},
		{"A // B", false, []string{"A", "B"}},
		{"Salt & Pepper", false, []string{"Salt & Pepper"}},
		{"Salt & Pepper, Salt", false, []string{"Salt", "Pepper"}},
		{"Big X Small", false, []string{"Big X Small"}},
		{"Big X Small, Small", false, []string{"Small", "Big"}},
		{"Salt & Pepper", true, []string{"Salt", "Pepper"}},
		{"A ft. B", false, []string{"A"}},
		{"A, more", false, []string{"A"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SplitArtists(tt.in, tt.force); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitArtists(%q, %v) = %v, want %v", tt.in, tt.force, got, tt.want)
			}
		})
	}
}
