package tracks

import (
	"regexp"
	"strings"
)

// remixCore is the remixer-and-type body shared by all remix clause
// forms: an optional remixer name followed by a mix/edit keyword.
const remixCore = `(['"]?\w.*?|) *((?:re)?mix|rmx|edit|bootleg|version|remastered)\b`

var (
	remixBracketPat = regexp.MustCompile(`(?i)( *)(\[` + remixCore + `[^])]*\])`)
	remixParenPat   = regexp.MustCompile(`(?i)( *)(\(` + remixCore + `[^])]*\))`)
	remixDashPat    = regexp.MustCompile(`(?i)( *)(- ` + remixCore + `[^])]*)`)
)

// Remix is a located remix clause in a track name, e.g. "(Artist Remix)",
// "[Club Edit]" or "- Someone Rmx".
type Remix struct {
	// Full is the complete clause including leading spaces and brackets.
	Full string

	// Text is the clause without the leading spaces.
	Text string

	// Remixer is the name in front of the mix keyword, possibly empty.
	Remixer string

	// Type is the lowercased mix keyword: "remix", "edit", "version" etc.
	Type string

	// Start and End report whether the clause spans the beginning or the
	// end of the searched name.
	Start, End bool
}

// RemixFromName locates a remix clause in the name. The bracketed forms
// are preferred; a parenthesised clause only counts when it is the last
// one in the name, and a dash-delimited clause only when no bracket or
// further dash follows it.
func RemixFromName(name string) (Remix, bool) {
	type hit struct {
		loc []int
		pat *regexp.Regexp
	}
	var best *hit
	for _, pat := range []*regexp.Regexp{remixBracketPat, remixParenPat, remixDashPat} {
		for _, loc := range pat.FindAllStringSubmatchIndex(name, -1) {
			if !validRemixSpan(name, pat, loc) {
				continue
			}
			if best == nil || loc[0] < best.loc[0] {
				best = &hit{loc, pat}
			}
			break
		}
	}
	if best == nil {
		return Remix{}, false
	}

	loc := best.loc
	remix := Remix{
		Full:    name[loc[0]:loc[1]],
		Text:    name[loc[4]:loc[5]],
		Remixer: strings.TrimSpace(name[loc[6]:loc[7]]),
		Type:    strings.ToLower(name[loc[8]:loc[9]]),
		Start:   loc[0] == 0,
		End:     loc[1] == len(name),
	}
	if remix.Type == "version" && remix.Remixer == "" {
		// a bare "version" is part of the title, not a remix credit
		return Remix{}, false
	}
	return remix, true
}

func validRemixSpan(name string, pat *regexp.Regexp, loc []int) bool {
	switch pat {
	case remixParenPat:
		// only the last parenthesised clause counts
		return !strings.Contains(name[loc[4]+1:], "(")
	case remixDashPat:
		if loc[4] > 0 && name[loc[4]-1] == '-' {
			return false
		}
		rest := name[loc[4]+2:]
		return !strings.ContainsAny(rest, "([") && !strings.Contains(rest, " - ")
	}
	return true
}

// Valid reports whether the clause denotes an actual remix rather than
// the original or a remaster.
func (r Remix) Valid() bool {
	return !strings.EqualFold(r.Remixer, "original") && r.Type != "remastered"
}

// Artist returns the remixer as an artist name, or empty when the clause
// carries no artist ("Extended Mix", "Album Version").
func (r Remix) Artist() string {
	if r.Valid() && !strings.EqualFold(r.Remixer, "extended") && r.Type != "version" {
		return r.Remixer
	}
	return ""
}

// removeRemixClauses strips every remix clause from the text.
func removeRemixClauses(text string) string {
	for {
		r, ok := RemixFromName(text)
		if !ok {
			return text
		}
		i := strings.Index(text, r.Full)
		if i < 0 {
			return text
		}
		text = text[:i] + text[i+len(r.Full):]
	}
}
