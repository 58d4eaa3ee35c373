// Package albumname derives the canonical album title of a release from
// several competing candidate sources and strips artist, label and
// catalogue-number noise from it.
package albumname

import (
	"regexp"
	"strings"

	"github.com/snejus/beetcamp-sub000/internal/patterns"
)

// SplitReleaseArtistCount is the number of unique track artists that turns
// an otherwise empty album name into the "A / B" split-release form.
const SplitReleaseArtistCount = 2

var (
	seriesPat    = regexp.MustCompile(`(?i)\b(?:part|volume|pt|vol)\b\.? ?[A-Z\d.-]+\b`)
	seriesFmtPat = regexp.MustCompile(`(?i)^(.+?)\b(part|volume|pt|vol)\b\.? *0*`)

	remixInTitlePats = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(remixes )\([^()]+\)$`),
		regexp.MustCompile(`(?i)\((?:inc|\+)[^()]*mix(?:es)?\)`),
		regexp.MustCompile(`(?i)(?:incl\.|with remixes)[^()+]+`),
		regexp.MustCompile(`(?i)\W*(?:\+|w/)[\w\s/]*remix(?:ed)?$`),
		regexp.MustCompile(`(?i)\(tracks from[^)]+\)`),
	}

	cleanEplpPat = regexp.MustCompile(`(?i)(?:[([]|Double ){0,2}\b([EL]P)\b\S?`)

	eplpAlbumPat     = regexp.MustCompile(`\b(?:[^\s:]+\b|[&, ])+ [EL]P\b(?: [\w#][^ ]+$)?`)
	eplpAlbumLinePat = regexp.MustCompile(`(?m)\b([A-Z][^:\s]*(?: [^:\s]+)* [EL]P)$`)

	quotedAlbumPats = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\B"([^"]+)"\B( VA\d+| [EL]P)?`),
		regexp.MustCompile(`(?i)\B'([^']+)'\B( VA\d+| [EL]P)?`),
	}

	albumInDescPat = regexp.MustCompile(`(?:Title *: ?|Album(?: *:|/Single) )([^\n]+)`)

	vaExcludePat = regexp.MustCompile(`(?i)\w various artists \w`)
	vaPat        = regexp.MustCompile(`(?i)(?:^v[./]?a\b|\W*\bvarious(?: artists?)?\b)`)

	compilationPat = regexp.MustCompile(`(?i)compilation|best of|anniversary`)
	yearRangePat   = regexp.MustCompile(`^20[12]\d - 20[12]\d`)
)

// Resolver holds the candidate album names of one release and resolves
// the final title once track artists and catalogue number are known.
type Resolver struct {
	original        string
	description     string
	fromTrackTitles string

	// removeArtists is cleared when the album name came from an explicit
	// description header, which is already free of artist noise.
	removeArtists bool
}

// New builds a Resolver from the raw album name, the joined
// release/media comments and the album name ejected from track titles
// (empty when the titles carried none).
func New(original, description, fromTrackTitles string) *Resolver {
	return &Resolver{
		original:        original,
		description:     description,
		fromTrackTitles: fromTrackTitles,
		removeArtists:   true,
	}
}

// FromDescription returns the album name given explicitly in the release
// description ("Title: X" or "Album: X"), or empty.
func (r *Resolver) FromDescription() string {
	if m := albumInDescPat.FindStringSubmatch(r.description); m != nil {
		r.removeArtists = false
		return strings.TrimSpace(m[1])
	}
	return ""
}

// FromTitle guesses the album name from the raw title: a quoted substring
// or a "... EP"/"... LP" clause.
func (r *Resolver) FromTitle() string {
	for _, pat := range quotedAlbumPats {
		if m := pat.FindStringSubmatch(r.original); m != nil {
			return m[1] + m[2]
		}
	}

	if m := eplpAlbumPat.FindString(r.original); m != "" && validEplpAlbum(m) {
		return m
	}
	return ""
}

func validEplpAlbum(m string) bool {
	if strings.HasPrefix(m, "VA") || strings.HasPrefix(m, "-") {
		return false
	}
	return !regexp.MustCompile(`^0\d`).MatchString(m)
}

// candidates returns the album-name candidates in priority order.
func (r *Resolver) candidates() []string {
	var names []string
	for _, name := range []string{r.fromTrackTitles, r.FromDescription(), r.FromTitle(), r.original} {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Name returns the highest-priority candidate.
func (r *Resolver) Name() string {
	if names := r.candidates(); len(names) > 0 {
		return names[0]
	}
	return ""
}

// MentionsCompilation reports whether the raw title carries compilation
// wording.
func (r *Resolver) MentionsCompilation() bool {
	return compilationPat.MatchString(r.original)
}

// seriesPart returns the "Vol. N" / "Part N" clause found in any
// candidate name.
func (r *Resolver) seriesPart() string {
	for _, name := range r.candidates() {
		if m := seriesPat.FindString(name); m != "" {
			return m
		}
	}
	return ""
}

// standardizeSeries normalizes the series marker: suffix position,
// comma separation, "Vol."/"Pt." abbreviation dots and casing,
// leading-zero removal.
func (r *Resolver) standardizeSeries(album string) string {
	series := r.seriesPart()
	if series == "" {
		return album
	}

	if !strings.Contains(strings.ToLower(album), strings.ToLower(series)) {
		// series was found in the original name but dropped from the
		// resolved one
		album += ", " + series
	} else {
		quoted := regexp.QuoteMeta(series)
		moved := regexp.MustCompile(`(?i)^(` + quoted + `)\W+(.+)`)
		if m := moved.FindStringSubmatch(album); m != nil {
			// move from the beginning to the end of the album
			album = m[2] + ", " + m[1]
		} else {
			// otherwise, ensure that it is delimited by a comma
			delim := regexp.MustCompile(`(?i)(\w)( ` + quoted + `)`)
			if !strings.Contains(album, ", "+series) && !strings.HasSuffix(album, series+")") {
				album = delim.ReplaceAllString(album, "$1,$2")
			}
		}
	}

	return formatSeries(album)
}

// formatSeries rewrites "name vol 01" as "name, Vol. 1" style.
func formatSeries(album string) string {
	m := seriesFmtPat.FindStringSubmatchIndex(album)
	if m == nil {
		return album
	}

	head := album[m[2]:m[3]]
	marker := album[m[4]:m[5]]
	if len(head) > 0 && head[0] >= 'A' && head[0] <= 'Z' && marker[0] >= 'a' {
		marker = strings.ToUpper(marker[:1]) + marker[1:]
	}
	if len(marker) == 2 || len(marker) == 3 {
		marker += "."
	}

	return head + marker + " " + album[m[1]:]
}

// RemoveVA strips "Various Artists" boilerplate unless it is embedded in
// a longer phrase or is the complete name.
func RemoveVA(name string) string {
	if vaExcludePat.MatchString(name) {
		return name
	}

	m := vaPat.FindStringIndex(name)
	if m == nil {
		return name
	}

	// keep the marker when a word follows directly: "VA Sampler" names
	// the release, it is not boilerplate
	rest := name[m[1]:]
	if len(rest) > 1 && rest[0] == ' ' && isLetter(rest[1]) {
		return name
	}
	end := m[1]
	for end < len(name) && !isLetter(name[end]) && name[end] != '(' {
		end++
	}

	return strings.TrimSpace(name[:m[0]] + " " + name[end:])
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// stripRemixInTitle removes "(incl. remixes ...)"-style promotional
// clauses.
func stripRemixInTitle(name string) string {
	for _, pat := range remixInTitlePats {
		name = pat.ReplaceAllString(name, "$1")
	}
	return strings.Trim(name, "- ")
}

// Clean returns the album name with featuring clauses, the catalogue
// number, artist names, VA boilerplate and the label removed, in that
// order.
func Clean(name string, artists []string, catalognum, label string) string {
	name = patterns.RemoveFeaturing(name)
	if catalognum != "" {
		name = removeCatalognum(name, catalognum)
	}
	for _, artist := range artists {
		if artist != "" {
			name = removeArtist(name, artist)
		}
	}
	name = RemoveVA(name)
	name = patterns.CleanName(name)
	if label != "" {
		name = removeLabel(name, label)
	}
	name = stripRemixInTitle(name)

	// uppercase EP and LP, and remove surrounding parens / brackets
	name = cleanEplpPat.ReplaceAllStringFunc(name, func(m string) string {
		return strings.ToUpper(cleanEplpPat.FindStringSubmatch(m)[1])
	})

	return strings.Trim(name, " /")
}

// FindArtist extracts an artist from an album name of the form
// "Artist - Title", used when the declared albumartist equals the label.
func (r *Resolver) FindArtist(catalognum string) string {
	if yearRangePat.MatchString(r.original) {
		return ""
	}

	album := Clean(r.original, nil, catalognum, "")
	if split := patterns.SplitName(album); len(split) > 1 {
		return split[0]
	}
	return ""
}

// CheckEplp re-appends "EP" or "LP" when the comments confirm it directly
// follows the resolved name. With an empty album it falls back to a
// capital-case "Some Name EP" line found in the comments.
func (r *Resolver) CheckEplp(album string) string {
	if album == "" {
		if m := eplpAlbumLinePat.FindStringSubmatch(r.description); m != nil && validEplpLine(m[1]) {
			return m[1]
		}
		return album
	}

	confirm := regexp.MustCompile(regexp.QuoteMeta(album) + ` [EL]P\b`)
	if m := confirm.FindString(r.description); m != "" {
		return m
	}
	return album
}

func validEplpLine(line string) bool {
	for _, word := range strings.Fields(line) {
		if word == "Vinyl" || word == "VA" || strings.HasPrefix(word, "-") {
			return false
		}
	}
	return true
}

// Resolve returns the final album name. originalArtists are the unsplit
// track artists, artists the split unique ones; both are removed from the
// name unless it came from an explicit description header.
func (r *Resolver) Resolve(catalognum string, originalArtists, artists []string, label string) string {
	original := r.Name()
	if len(artists) > 0 && strings.EqualFold(original, artists[0]) {
		// if album is named by the main artist, keep it as it is
		return original
	}

	var toClean []string
	if r.removeArtists {
		toClean = uniqueLongestFirst(append(append([]string{}, originalArtists...), artists...))
	}

	album := Clean(original, toClean, catalognum, label)
	if strings.HasPrefix(album, "(") {
		// cleaning over-stripped and left an unmatched bracket
		album = original
	}

	album = r.CheckEplp(r.standardizeSeries(album))

	if strings.Contains(strings.ToLower(album), "split ep") ||
		(album == "" && len(artists) == SplitReleaseArtistCount) {
		album = strings.Join(artists, " / ")
	}

	if album != "" {
		return album
	}
	if catalognum != "" {
		return catalognum
	}
	return original
}

// uniqueLongestFirst deduplicates and sorts by length descending, so that
// longer artist names are removed before their substrings.
func uniqueLongestFirst(names []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range names {
		if n != "" && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j]) > len(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
