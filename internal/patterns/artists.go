package patterns

import (
	"regexp"
	"strings"
)

var (
	splitArtistsPat    = regexp.MustCompile(`,\s*| (?:[x+/-]|//|vs|and)\.? `)
	splitAllArtistsPat = regexp.MustCompile(`,\s*|& | (?:[X&x+/-]|//|vs|and)\.? `)
)

// SplitArtists splits a composite artist string into individual artists,
// honouring delimiters such as ',', '+', 'x' and 'vs'. Featuring artists
// are removed first since they are not main artists.
//
// ' & ' and ' X ' may legitimately be part of a single name, so by default
// they only split when one of the resulting pieces also appears on its own
// in the input. Force ignores that safeguard and splits on everything.
func SplitArtists(artists string, force bool) []string {
	pat := splitArtistsPat
	if force {
		pat = splitAllArtistsPat
	}

	var out []string
	seen := make(map[string]bool)
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || name == "more" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	for _, part := range pat.Split(RemoveFeaturing(artists), -1) {
		add(part)
	}
	if force {
		return out
	}

	for _, delim := range []string{" X ", " & "} {
		var next, split []string
		for _, artist := range out {
			sub := strings.Split(artist, delim)
			if len(sub) < 2 || !anyIn(sub, seen) {
				next = append(next, artist)
				continue
			}
			delete(seen, artist)
			split = append(split, sub...)
		}
		for _, s := range split {
			if !seen[s] {
				seen[s] = true
				next = append(next, s)
			}
		}
		out = next
	}

	return out
}

// SplitArtistsList joins multiple artist strings and splits the result.
func SplitArtistsList(artists []string, force bool) []string {
	return SplitArtists(strings.Join(artists, ", "), force)
}

func anyIn(parts []string, seen map[string]bool) bool {
	for _, p := range parts {
		if seen[p] {
			return true
		}
	}
	return false
}
