package metadata

import "testing"

func TestCountry(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"Berlin, Germany", "DE"},
		{"Washington, D.C.", "US"},
		{"London, UK", "GB"},
		{"Glasgow, Scotland", "GB"},
		{"Portland, Oregon", "US"},
		{"Istanbul, Turkey", "TR"},
		{"Türkiye", "TR"},
		{"Seoul, South Korea", "KR"},
		{"Amsterdam, The Netherlands", "NL"},
		{"Moscow, Russia", "RU"},
		{"Tokyo, Japan", "JP"},
		{"France", "FR"},
		{"No Ones Land", "XW"},
		{"", "XW"},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := Country(tt.location); got != tt.want {
				t.Errorf("Country(%q) = %q, want %q", tt.location, got, tt.want)
			}
		})
	}
}
