// Package catalognum finds label-assigned catalogue numbers in free-form
// release text.
//
// There is no grammar for catalogue numbers, only conventions, so the
// resolver tries a fixed family of shape patterns against an ordered list
// of source texts and returns the first hit that survives the exclusion
// checks. No match is a normal outcome and yields an empty string.
package catalognum

import (
	"regexp"
	"strings"
)

// shapes is the family of catalogue-number conventions, most specific
// first. Each branch mirrors a convention observed in the wild, e.g.
// "MNQ 049", "EDLX.034", "Fabrik038", "ZENCD30", "a+w lp036" or "sh-303d".
const shapes = `(?:` +
	`[A-Z]{2,} 0\d{2}` +
	`|[A-Z]+[. ][A-Z]\d{3,}` +
	`|\d*[A-Z$]{3,}[.-]?\d{3}` +
	`|[A-Z][A-Za-z]{2,}0\d{2}` +
	`|[A-Z]{3,4}(?:CD)?[.!]?\d{2,}` +
	`|[A-Z]{2}\d{5}` +
	`|[A-Z]{5}\d{2}` +
	`|[A-Z]{6,}0\d` +
	`|[A-Z]{4,}\d` +
	`|[A-Za-z]+-[A-Za-z]+[ -]?\d{3,}` +
	`|[A-Za-z]{2,3}-?0\d{2,}` +
	`|[A-Za-z+]+ ?(?:[EL]P|[el]p)\d+` +
	`|[a-z]+(?:cd|lp|:)\d+` +
	`|[A-Z]+\d+[-_]\d{2,}` +
	`|[A-Z]+_[A-Z]\d{1,3}` +
	`|[A-Z]{2}\d{2,4}` +
	`|[a-z]{2}-\d{2,}[a-z]` +
	`)(?:(?:[.-]\d+)?(?:RP|CD)?)?`

var (
	// headerPat matches an explicit "Cat. Number: ABC123" style header at
	// the start of a description line.
	headerPat = regexp.MustCompile(`(?m)^(?i:cat(?:(?:\W|a?l).*?)?)\W *([A-Za-z\d]{2}.*?\w)(?:\W\W|$)`)

	anywherePat  = regexp.MustCompile(`\b(` + shapes + `(?: [-/] ` + shapes + `)?)`)
	startPat     = regexp.MustCompile(`(?m)^(` + shapes + `)`)
	endPat       = regexp.MustCompile(`(?m)(` + shapes + `)$`)
	delimitedPat = regexp.MustCompile(`[\[(](` + shapes + `)(?:[\])]|$)`)

	// inAlbumPat finds a catalogue number embedded in the album name
	// itself: a leading "ABC123: ", a trailing " - ABC123" or a bracketed
	// aside. The bracketed branch is validated further in code.
	inAlbumPat = regexp.MustCompile(`(^\d*[A-Z$]{3,}\d+)(?::\s+|\s+[|-]\s+|-\s+|\s+-)` +
		`|\s[|-]\s([A-Z]{2,}\d+)$` +
		`|[([]([^])]*[A-Z][^])]*\d+)[])]`)

	labelSuffixPat  = regexp.MustCompile(`(?i) (?:Record(?:ing)?s|Productions|Music|Official)$`)
	punctuationPat  = regexp.MustCompile(`\W`)
	volEplpPat      = regexp.MustCompile(`(?i)^(?:vol|[el]p)`)
	excludedTailPat = regexp.MustCompile(`(?i)(?:^va\d{1,3}|20[0-9]{2})$`)
)

// precedingDisallowed are characters that may not directly precede a
// catalogue number; they indicate URLs, versions and similar non-catalogue
// contexts.
const precedingDisallowed = "]/@.-"

// followingDisallowed are characters that may not directly follow one.
const followingDisallowed = `"'%,-`

// Resolver finds the catalogue number of a single release. The zero value
// is not usable; construct it with New.
type Resolver struct {
	releaseDescription string
	album              string
	label              string

	// excluded is the lowercased concatenation of all artist names, track
	// titles and label variations. Any candidate found inside it is a
	// false positive (an artist name that merely looks like a catalogue
	// number).
	excluded string

	// labelPat matches label-prefixed catalogue numbers ("LABEL001") and
	// is nil when no label is known.
	labelPat *regexp.Regexp
}

// New builds a Resolver for one release. artistsAndTitles supplies the
// exclusion texts: resolved values equal to any of them are rejected.
func New(releaseDescription, album, label string, artistsAndTitles []string) *Resolver {
	variations := labelVariations(label)

	excluded := strings.ToLower(strings.Join(append(append([]string{}, artistsAndTitles...), variations...), " "))

	return &Resolver{
		releaseDescription: releaseDescription,
		album:              album,
		label:              label,
		excluded:           excluded,
		labelPat:           labelPattern(label, variations),
	}
}

// labelVariations returns the label name without punctuation and known
// suffixes, in every combination.
func labelVariations(label string) []string {
	if label == "" {
		return nil
	}

	set := map[string]bool{label: true}
	set[strings.TrimSpace(labelSuffixPat.ReplaceAllString(label, ""))] = true
	for v := range set {
		set[punctuationPat.ReplaceAllString(v, "")] = true
	}

	var out []string
	for v := range set {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// labelPattern compiles the label-prefixed pattern, extending the
// variations with the label acronym and first word.
func labelPattern(label string, variations []string) *regexp.Regexp {
	if label == "" {
		return nil
	}

	prefixes := append([]string{}, variations...)
	for _, p := range variations {
		if words := strings.Fields(p); len(words) > 1 {
			var acronym strings.Builder
			for _, w := range words {
				acronym.WriteByte(w[0])
			}
			prefixes = append(prefixes, acronym.String())
		}
	}
	if words := strings.Fields(strings.TrimSpace(label)); len(words) > 1 && len(words[0]) > 1 {
		prefixes = append(prefixes, words[0])
	}

	quoted := make([]string, len(prefixes))
	for i, p := range prefixes {
		quoted[i] = regexp.QuoteMeta(p)
	}

	return regexp.MustCompile(`(?i)\b((?:` + strings.Join(quoted, "|") + `)[ -]?[A-Za-z]*\d+(?:[A-Za-z]|\.\d+)*)`)
}

// Find returns the catalogue number of the release, searching the media
// text (disc title plus media description) first and the release
// description after it. Empty string means none was found.
func (r *Resolver) Find(mediaText string) string {
	if cat := r.find([]source{
		{headerPat, mediaText},
		{headerPat, r.releaseDescription},
		{anywherePat, mediaText},
		{r.labelPat, mediaText},
	}); cat != "" {
		return cat
	}

	return r.InAlbumOrDescription()
}

// InAlbumOrDescription searches the album name and the release
// description only, without any media text.
func (r *Resolver) InAlbumOrDescription() string {
	return r.find([]source{
		{anywherePat, r.album},
		{r.labelPat, r.album},
		{startPat, r.releaseDescription},
		{endPat, r.releaseDescription},
		{anywherePat, r.releaseDescription},
		{r.labelPat, r.releaseDescription},
	})
}

type source struct {
	pat  *regexp.Regexp
	text string
}

func (r *Resolver) find(sources []source) string {
	for _, s := range sources {
		if s.pat == nil || s.text == "" {
			continue
		}
		if cat := r.search(s.pat, s.text); cat != "" {
			return cat
		}
	}
	return ""
}

// search returns the first match of pat in text that is valid in context
// and not part of the excluded text.
func (r *Resolver) search(pat *regexp.Regexp, text string) string {
	for _, loc := range pat.FindAllStringSubmatchIndex(text, -1) {
		start, end := submatchSpan(loc)
		if start < 0 {
			continue
		}
		cand := strings.TrimSpace(text[start:end])
		if cand == "" || !validInContext(text, start, end, cand) {
			continue
		}
		if strings.Contains(r.excluded, strings.ToLower(cand)) {
			continue
		}
		return cand
	}
	return ""
}

// submatchSpan returns the first non-empty capture group span.
func submatchSpan(loc []int) (int, int) {
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] >= 0 && loc[i+1] > loc[i] {
			return loc[i], loc[i+1]
		}
	}
	return -1, -1
}

// validInContext applies the shared constraints: a catalogue number cannot
// follow "by ", cannot touch URL-ish punctuation, cannot look like a year
// or a various-artists marker, and cannot be part of an album-name suffix
// such as "... EP".
func validInContext(text string, start, end int, cand string) bool {
	if volEplpPat.MatchString(cand) || excludedTailPat.MatchString(cand) {
		return false
	}
	if start > 0 && strings.ContainsRune(precedingDisallowed, rune(text[start-1])) {
		return false
	}
	lowerHead := strings.ToLower(text[:start])
	if strings.HasSuffix(lowerHead, "by ") || strings.HasSuffix(lowerHead, "of ") {
		return false
	}
	rest := text[end:]
	if rest != "" && strings.ContainsRune(followingDisallowed, rune(rest[0])) {
		return false
	}
	// a digit right after the match means it is a fragment of a longer
	// number, usually a year
	if rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		return false
	}
	for _, suffix := range []string{" ep", " lp", " EVER"} {
		if strings.HasPrefix(rest, suffix) {
			return false
		}
	}
	return true
}

// Delimited finds a bracketed catalogue number in a track name:
// "Title [CAT001]". It returns the number and the full bracketed span.
func Delimited(name string) (catalognum, full string) {
	if m := delimitedPat.FindStringSubmatch(name); m != nil {
		return m[1], m[0]
	}
	return "", ""
}

// Anywhere returns the first catalogue-number shape found in the text,
// without any contextual validation.
func Anywhere(text string) string {
	if m := anywherePat.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// InAlbum looks for a catalogue number embedded in the album name. It
// returns the number and the full matched span (including separators) so
// the caller can remove it from the name.
func InAlbum(album string) (catalognum, full string) {
	m := inAlbumPat.FindStringSubmatchIndex(album)
	if m == nil {
		return "", ""
	}

	start, end := submatchSpan(m)
	cand := album[start:end]

	// The bracketed branch must not be a "[Part 1]" / "[VA ...]" aside and
	// must be the last bracket in the name.
	if m[6] >= 0 {
		lower := strings.ToLower(cand)
		for _, word := range []string{"part", "va", "lp", "sample"} {
			if strings.HasPrefix(lower, word+" ") || lower == word {
				return "", ""
			}
		}
		if strings.Contains(album[m[1]:], "[") {
			return "", ""
		}
	}

	return cand, album[m[0]:m[1]]
}
