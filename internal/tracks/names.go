package tracks

import (
	"regexp"
	"strings"

	"github.com/snejus/beetcamp-sub000/internal/catalognum"
	"github.com/snejus/beetcamp-sub000/internal/patterns"
)

var (
	// "Title [Some Album EP]"
	albumInTitlePat  = regexp.MustCompile(`(?i)[- ]*\[([^\]]+ [EL]P)\]+`)
	titleInQuotesPat = regexp.MustCompile(`^(.+[^ -])[ -]+"([^"]+)"$`)
	numberPrefixPat  = regexp.MustCompile(`(^|- )(\d{1,2}\W+)`)
)

// Names parses track names in the context of the entire release: it
// normalizes delimiters, ejects release-wide noise (catalogue number,
// label, embedded album name) and makes sure the artist comes first.
type Names struct {
	AlbumArtist   string
	Label         string
	OriginalAlbum string
	Singleton     bool
	Items         []Item

	// AlbumInTitles is the album name found embedded in the track
	// titles, empty when none.
	AlbumInTitles string

	// CatalognumInTitles is the catalogue number every track title
	// carried, empty when none.
	CatalognumInTitles string

	// Titles holds the resolved track names after Resolve.
	Titles []string
}

// OriginalTitles returns the raw track names.
func (n *Names) OriginalTitles() []string {
	titles := make([]string, len(n.Items))
	for i, item := range n.Items {
		titles[i] = item.Name
	}
	return titles
}

// CatalognumInAlbum returns the catalogue number embedded in the album
// name, or empty.
func (n *Names) CatalognumInAlbum() string {
	cat, _ := catalognum.InAlbum(n.OriginalAlbum)
	return cat
}

// Album returns the album name with the embedded catalogue number
// removed.
func (n *Names) Album() string {
	if _, full := catalognum.InAlbum(n.OriginalAlbum); full != "" {
		return strings.Replace(n.OriginalAlbum, full, "", 1)
	}
	return n.OriginalAlbum
}

// Catalognum returns the catalogue number found in the album name or the
// track titles, unless it coincides with the album artist.
func (n *Names) Catalognum() string {
	for _, cat := range []string{n.CatalognumInAlbum(), n.CatalognumInTitles} {
		if cat != "" && cat != n.AlbumArtist {
			return cat
		}
	}
	return ""
}

// CommonPrefix returns the longest common prefix of the resolved titles.
func (n *Names) CommonPrefix() string {
	return commonPrefix(n.Titles)
}

func commonPrefix(names []string) string {
	if len(names) == 0 {
		return ""
	}
	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

// splitQuotedTitles rewrites 'Artist "Title"' as "Artist - Title" when
// every name follows that convention.
func splitQuotedTitles(names []string) []string {
	if len(names) < 2 {
		return names
	}
	matches := make([][]string, 0, len(names))
	for _, name := range names {
		m := titleInQuotesPat.FindStringSubmatch(name)
		if m == nil {
			return names
		}
		matches = append(matches, m)
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m[1] + " - " + m[2]
	}
	return out
}

// removeAlbumCatalognum drops the bracketed album catalogue number from
// each name.
func (n *Names) removeAlbumCatalognum(names []string) []string {
	cat := n.CatalognumInAlbum()
	if cat == "" {
		return names
	}
	pat := regexp.MustCompile(`(?i)[([]` + regexp.QuoteMeta(cat) + `[])]`)
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = pat.ReplaceAllString(name, "")
	}
	return out
}

// ejectCommonCatalognum returns a catalogue number present in every
// track title. Only the first and last word of the first title are
// considered, and only when they are common to all titles.
func ejectCommonCatalognum(names []string) (string, []string) {
	if len(names) == 0 {
		return "", names
	}

	tokenized := make([][]string, len(names))
	for i, name := range names {
		tokenized[i] = strings.Fields(name)
	}
	if len(tokenized[0]) == 0 {
		return "", names
	}

	common := make(map[string]bool)
	for _, w := range tokenized[0] {
		common[w] = true
	}
	for _, tokens := range tokenized[1:] {
		seen := make(map[string]bool)
		for _, w := range tokens {
			seen[w] = true
		}
		for w := range common {
			if !seen[w] {
				delete(common, w)
			}
		}
	}

	first := tokenized[0]
	var found string
	for _, word := range []string{first[0], first[len(first)-1]} {
		if !common[word] {
			continue
		}
		if cat := catalognum.Anywhere(word); cat != "" {
			found = cat
			for i, name := range names {
				names[i] = strings.Trim(strings.Replace(name, word, "", 1), "|- ")
			}
		}
	}

	return found, names
}

// removeNumberPrefix removes the track-number prefix when more than half
// of the names carry one.
func removeNumberPrefix(names []string) []string {
	prefixes := make([]string, len(names))
	count := 0
	for i, name := range names {
		if p := findNumberPrefix(name); p != "" {
			prefixes[i] = p
			count++
		}
	}
	if count*2 <= len(names) {
		return names
	}

	out := make([]string, len(names))
	for i, name := range names {
		if prefixes[i] != "" {
			out[i] = strings.Replace(name, prefixes[i], "", 1)
		} else {
			out[i] = name
		}
	}
	return out
}

// findNumberPrefix returns the "01. " part of a name, without the "- "
// context that may precede it.
func findNumberPrefix(name string) string {
	isDigit := func(i int) bool { return i < len(name) && name[i] >= '0' && name[i] <= '9' }
	for _, loc := range numberPrefixPat.FindAllStringSubmatchIndex(name, -1) {
		s, e := loc[4], loc[5]
		d := s
		for d < e && isDigit(d) {
			d++
		}
		// the prefix must be followed by a non-digit, so give back
		// trailing separators when a digit (as in "1. 2nd Song") follows
		for e > d+1 && (e >= len(name) || isDigit(e)) {
			e--
		}
		if e >= len(name) || isDigit(e) {
			continue
		}
		return name[s:e]
	}
	return ""
}

// findCommonTrackDelimiter elects the delimiter that splits artist from
// title in this release. It needs a strict majority of the names, except
// when there is a single name; the default is a dash.
func findCommonTrackDelimiter(names []string) string {
	counts := make(map[string]int)
	var best string
	total := 0
	for _, name := range names {
		// a name counts once per delimiter no matter how often it
		// repeats it
		seen := make(map[string]bool)
		for _, m := range patterns.SeparatorPat.FindAllStringSubmatch(name, -1) {
			if seen[m[1]] {
				continue
			}
			seen[m[1]] = true
			counts[m[1]]++
			total++
			if best == "" || counts[m[1]] > counts[best] {
				best = m[1]
			}
		}
	}
	if total == 0 {
		return "-"
	}
	if len(names) == 1 || counts[best]*2 > len(names) {
		return best
	}
	return "-"
}

// normalizeDelimiter rewrites the elected delimiter (and tabs) as " - "
// in every name.
func normalizeDelimiter(names []string) []string {
	delim := findCommonTrackDelimiter(names)
	pat := regexp.MustCompile(`\s+` + regexp.QuoteMeta(delim) + `\s+|\t`)
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = pat.ReplaceAllString(name, " - ")
	}
	return out
}

// removeLabel removes the label name from the end of the track names.
func (n *Names) removeLabel(names []string) []string {
	if n.Label == "" {
		return names
	}
	pat := regexp.MustCompile(`(?i)([:-]+ |\[)` + regexp.QuoteMeta(n.Label) + `(\]|$)`)
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.TrimSpace(pat.ReplaceAllString(name, " "))
	}
	return out
}

// ejectAlbumName extracts a "[Some Album EP]" clause when every such
// clause names the same album.
func ejectAlbumName(names []string) (string, []string) {
	albums := make(map[string]bool)
	matches := make([][]int, len(names))
	for i, name := range names {
		if loc := albumInTitlePat.FindStringSubmatchIndex(name); loc != nil {
			matches[i] = loc
			albums[strings.ReplaceAll(name[loc[2]:loc[3]], `"`, "")] = true
		}
	}
	if len(albums) != 1 {
		return "", names
	}

	var album string
	for a := range albums {
		album = a
	}
	out := make([]string, len(names))
	for i, name := range names {
		if loc := matches[i]; loc != nil {
			out[i] = name[:loc[0]] + name[loc[1]:]
		} else {
			out[i] = name
		}
	}
	return album, out
}

// ensureArtistFirst swaps the two name parts when the title side holds
// the artists: either every name shares the same title which overlaps
// the album artist, or at least two names carry a remix clause on the
// left.
func (n *Names) ensureArtistFirst(names []string) []string {
	splits := make([][2]string, len(names))
	uniqueTitles := make(map[string]bool)
	remixesOnLeft := 0
	for i, name := range names {
		parts := strings.SplitN(name, " - ", 2)
		if len(parts) < 2 {
			return names
		}
		splits[i] = [2]string{parts[0], parts[1]}
		uniqueTitles[parts[1]] = true
		if _, ok := RemixFromName(parts[0]); ok {
			remixesOnLeft++
		}
	}

	swap := remixesOnLeft > 1
	if !swap && len(uniqueTitles) == 1 {
		var title string
		for t := range uniqueTitles {
			title = t
		}
		albumArtists := make(map[string]bool)
		for _, a := range patterns.SplitArtists(n.AlbumArtist, false) {
			albumArtists[a] = true
		}
		for _, a := range patterns.SplitArtists(title, false) {
			if albumArtists[a] {
				swap = true
				break
			}
		}
	}
	if !swap {
		return names
	}

	out := make([]string, len(splits))
	for i, s := range splits {
		out[i] = s[1] + " - " + s[0]
	}
	return out
}

// Resolve runs the full release-wide pass and fills Titles,
// CatalognumInTitles and AlbumInTitles.
func (n *Names) Resolve() {
	titles := n.OriginalTitles()
	if len(titles) == 0 {
		return
	}

	titles = splitQuotedTitles(titles)
	if n.Singleton {
		titles = []string{n.Album()}
	} else {
		titles = n.removeAlbumCatalognum(titles)
		n.CatalognumInTitles, titles = ejectCommonCatalognum(titles)
		titles = removeNumberPrefix(titles)
	}

	titles = normalizeDelimiter(titles)
	titles = n.removeLabel(titles)
	n.AlbumInTitles, titles = ejectAlbumName(titles)
	n.Titles = n.ensureArtistFirst(titles)
}
