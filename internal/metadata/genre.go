package metadata

import (
	"regexp"
	"strings"

	"github.com/snejus/beetcamp-sub000/internal/config"
)

var (
	keywordSplitPat    = regexp.MustCompile(`\. | #| - `)
	keywordSubsplitPat = regexp.MustCompile(`[ -]`)
)

// Genres filters the release keywords down to valid genres.
//
// A keyword that merely repeats the label name is dropped unless it is a
// valid genre in its own right. The mode controls how strictly the rest
// are validated against the reference vocabulary:
//
//   - classical: the entire keyword must be a known genre
//   - progressive: as above, or every word of the keyword is one
//   - psychedelic: as above, or the last word is one
//
// Keywords matching one of the alwaysInclude patterns skip validation.
// Finally a genre that is contained in a more specific one ("house" in
// "garage house") is dropped in its favour.
func Genres(keywords []string, cfg config.GenreSettings, label string) []string {
	labelName := strings.ReplaceAll(strings.ToLower(label), " ", "")

	var includePat *regexp.Regexp
	if len(cfg.AlwaysInclude) > 0 {
		includePat = regexp.MustCompile(strings.Join(cfg.AlwaysInclude, "|"))
	}

	validForMode := func(kw string) bool {
		if genres[kw] {
			return true
		}
		switch cfg.Mode {
		case "classical":
			return false
		case "progressive":
			words := keywordSubsplitPat.Split(kw, -1)
			for _, w := range words {
				if !genres[w] {
					return false
				}
			}
			return true
		default: // psychedelic
			words := keywordSubsplitPat.Split(kw, -1)
			return genres[words[len(words)-1]]
		}
	}

	var unique []string
	seen := make(map[string]bool)
	for _, raw := range keywords {
		// expand badly delimited keywords
		for _, kw := range keywordSplitPat.Split(raw, -1) {
			kw = strings.Trim(kw, "#")
			kw = strings.ReplaceAll(kw, "&", "and")
			kw = strings.ReplaceAll(kw, ".", "")
			if kw == "" || seen[kw] {
				continue
			}
			if strings.ReplaceAll(kw, " ", "") == labelName && !genres[kw] {
				continue
			}
			if (includePat != nil && includePat.MatchString(kw)) || validForMode(kw) {
				seen[kw] = true
				unique = append(unique, kw)
			}
		}
	}

	var out []string
	for _, genre := range unique {
		if !withinAnotherGenre(genre, unique) {
			out = append(out, genre)
		}
	}
	return out
}

// withinAnotherGenre keeps the more specific genre: "garage house" wins
// over "house", and "dark folk" survives while "darkfolk" does not.
func withinAnotherGenre(genre string, all []string) bool {
	for _, other := range all {
		if strings.Contains(genre, other) {
			continue
		}
		squashed := strings.NewReplacer(" ", "", "-", "").Replace(other)
		if strings.Contains(other, genre) || strings.Contains(squashed, genre) {
			return true
		}
	}
	return false
}
