package bandcamp

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SearchResult is one entry scraped from a Bandcamp search results page.
type SearchResult struct {
	Index      int     `json:"index"`
	Type       string  `json:"type,omitempty"`
	Name       string  `json:"name,omitempty"`
	Artist     string  `json:"artist,omitempty"`
	Album      string  `json:"album,omitempty"`
	Label      string  `json:"label,omitempty"`
	Genre      string  `json:"genre,omitempty"`
	Date       string  `json:"date,omitempty"`
	Tracks     int     `json:"tracks,omitempty"`
	URL        string  `json:"url,omitempty"`
	Similarity float64 `json:"similarity"`
}

// SearchQuery is what the caller is looking for. Empty fields are not
// compared.
type SearchQuery struct {
	Name   string
	Artist string
	Label  string
}

// field returns a pattern matching a value that does not start with '<'
// or whitespace, until the end of the line.
func field(prefix string) *regexp.Regexp {
	return regexp.MustCompile(prefix + `([^\s<][^\n]+)`)
}

// resultPats extract one field each from a search result block. For a
// repeated field the first matching pattern wins, so the label variants
// are ordered most to least specific.
var resultPats = []struct {
	name string
	pat  *regexp.Regexp
}{
	{"type", field(`itemtype..\n\s+`)},
	{"name", field(`search_item_type=[^>]+>\n\s+`)},
	{"genre", field(`\n\s+genre: `)},
	{"album", field(`\n\s+from `)},
	{"artist", field(`\n\s+by `)},
	{"date", field(`\n\s+released `)},
	{"tracks", regexp.MustCompile(`\n\s+(\d+) tracks`)},
	{"label", regexp.MustCompile(`>https://bandcamp\.([^.<]+)\.[^<]+<`)},
	{"label", regexp.MustCompile(`>https://([^.]+)\.bandcamp\.[^<]+<`)},
	{"label", regexp.MustCompile(`>https://(?:bandcamp[^"]+"|([^/]+))\.[^<]+<`)},
	{"url", regexp.MustCompile(`>(https://[^<]+)<`)},
}

// SearchPageURL builds the search URL for a query. itemType narrows the
// results to albums ("a"), tracks ("t") or labels ("b"); empty searches
// everything.
func SearchPageURL(query, itemType string, page int) string {
	u := fmt.Sprintf("https://bandcamp.com/search?page=%d&q=%s", page, url.QueryEscape(query))
	if itemType != "" {
		u += "&item_type=" + itemType
	}
	return u
}

// ParseSearchPage extracts the results from a search page and sorts them
// by their similarity to the query, most similar first.
func ParseSearchPage(html string, query SearchQuery) []SearchResult {
	blocks := strings.Split(html, "searchresult data-search")[1:]

	results := make([]SearchResult, 0, len(blocks))
	for _, block := range blocks {
		res := parseResultBlock(block)

		var scores []float64
		for _, fq := range []struct{ f, q string }{
			{res.Name, query.Name},
			{res.Artist, query.Artist},
			{res.Label, query.Label},
		} {
			if fq.q != "" {
				scores = append(scores, similarity(fq.q, fq.f))
			}
		}
		total := 0.0
		for _, s := range scores {
			total += s
		}
		if len(scores) > 0 {
			res.Similarity = round3(total / float64(len(scores)))
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	for i := range results {
		results[i].Index = i + 1
	}
	return results
}

func parseResultBlock(block string) SearchResult {
	var res SearchResult
	set := func(name, value string) {
		switch name {
		case "type":
			res.Type = strings.ToLower(value)
		case "name":
			res.Name = value
		case "genre":
			res.Genre = value
		case "album":
			res.Album = value
		case "artist":
			res.Artist = value
		case "date":
			// the page shows "08 May 2020" word order reversed
			words := strings.Fields(value)
			for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
				words[i], words[j] = words[j], words[i]
			}
			res.Date = strings.Join(words, " ")
		case "tracks":
			res.Tracks, _ = strconv.Atoi(value)
		case "label":
			res.Label = value
		case "url":
			res.URL = value
		}
	}

	seen := make(map[string]bool)
	for _, fp := range resultPats {
		if seen[fp.name] {
			continue
		}
		if m := fp.pat.FindStringSubmatch(block); m != nil && m[1] != "" {
			seen[fp.name] = true
			set(fp.name, m[1])
		}
	}
	return res
}

// foldTransform strips diacritics so "Björk" and "Bjork" compare equal.
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldASCII(s string) string {
	if folded, _, err := transform.String(foldTransform, s); err == nil {
		s = folded
	}
	return strings.ToLower(s)
}

// similarity scores how well a result field matches the query, in
// [0, 1]. The longest common substring rewards the covered part of the
// query (doubled) and penalizes the uncovered part of the result, and
// the Jaro-Winkler distance smooths over transpositions.
func similarity(query, result string) float64 {
	a, b := foldASCII(query), foldASCII(result)
	if a == "" || b == "" {
		return 0
	}

	m := longestCommonSubstring(a, b)
	lcs := (float64(m)/float64(len(a))*2 + float64(m)/float64(len(b))) / 3
	jw := float64(edlib.JaroWinklerSimilarity(a, b))
	return (2*lcs + jw) / 3
}

func longestCommonSubstring(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return best
}

func round3(f float64) float64 {
	return float64(int(f*1000+0.5)) / 1000
}
