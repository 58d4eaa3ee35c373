// Package patterns holds the compiled regular expressions and the small
// matching helpers shared by the name, artist and catalogue-number
// resolvers: featuring and remix clauses, digital-only markers, vinyl
// side markers, artist delimiters and title cleaning.
package patterns

import (
	"regexp"
	"strings"
)

// digiWords matches the vocabulary used to mark digital-only bonus tracks.
const digiWords = `(?:[ -]?(?:bandcamp|digi(?:tal)?|exclusive|bonus|bns|unreleased))+(?:\W(?:track|only|tune))*`

var (
	// digiOnlyPat matches a digital-only marker in any of its delimiting
	// conventions: a leading "Bonus." / "Bonus 1:" prefix, a bracketed or
	// asterisked aside, a "Bonus -" clause or a bare trailing "... Bonus".
	digiOnlyPat = regexp.MustCompile(
		`(?i)(?:\s|[^][()\w])*(?:(?:^` + digiWords + `[.:\d\s]+\s)` +
			`|(?:[\[(]` + digiWords + `[\])]\W*)` +
			`|(?:[*]` + digiWords + `[*]?)` +
			`|(?:` + digiWords + ` -)` +
			`|(?: ` + digiWords + `$))\s*`,
	)

	// ftHeadPat locates the start of a featuring clause. The artist that
	// follows is consumed by code, not by the pattern, since its boundary
	// depends on the surrounding context.
	ftHeadPat = regexp.MustCompile(`(?i)(^|[([{]|\s)(ft|feat|featuring|with|w/)[. ]\s*`)

	// trackAltPat matches a vinyl side marker at the start of a name or
	// right after the artist-title separator: "A1.", "B2 -", "AA. ".
	trackAltPat = regexp.MustCompile(`(?m)(^|- )((?:[A-J]{1,3}[12]?\.?\d)|(?:[AB]{1,2}))([/.:)_\s-]+)`)

	// SeparatorPat matches a single delimiter character surrounded by
	// whitespace: pipe, dash or one of its UTF-8 lookalikes.
	SeparatorPat = regexp.MustCompile(`\s([|\x{2013}\x{2014}-])\s`)

	dotPat = regexp.MustCompile(`\.`)
)

// Featuring is a located featuring-artist clause.
type Featuring struct {
	// Full is the complete matched clause including markers and brackets.
	Full string

	// Artist is the featured artist name.
	Artist string

	// Start and End delimit Full within the searched string.
	Start, End int
}

// ftStoppers end an unbracketed featuring clause.
var ftStoppers = []string{" - ", "(", ")", "[", "]", "/"}

// FindFeaturing locates a featuring clause ("ft. X", "feat. X", "(with X)")
// in text. A clause whose artist ends in "mix" is never treated as
// featuring, so remix credits like "feat. DJ X Remix" stay untouched.
func FindFeaturing(text string) (Featuring, bool) {
	for _, loc := range ftHeadPat.FindAllStringSubmatchIndex(text, -1) {
		opener := text[loc[2]:loc[3]]
		marker := strings.ToLower(text[loc[4]:loc[5]])

		// "with" only marks a featuring artist inside brackets.
		if marker == "with" && opener != "(" {
			continue
		}

		rest := text[loc[1]:]
		var artist, full string
		start := loc[0]

		if opener == "(" || opener == "[" || opener == "{" {
			closing := closingBracket(opener)
			end := strings.Index(rest, closing)
			if end == -1 {
				continue
			}
			artist = rest[:end]
			full = text[start : loc[1]+end+1]
		} else {
			end := len(rest)
			for _, stop := range ftStoppers {
				if i := strings.Index(rest, stop); i != -1 && i < end {
					end = i
				}
			}
			artist = rest[:end]
			full = text[start : loc[1]+end]
		}

		artist = strings.TrimSpace(artist)
		if artist == "" {
			continue
		}
		lower := strings.ToLower(artist)
		if strings.HasSuffix(lower, "mix") {
			continue
		}
		// "w/ you" is lyrics, not a credit.
		if marker == "w/" && strings.HasPrefix(lower, "you") {
			continue
		}

		return Featuring{
			Full:   full,
			Artist: strings.Trim(artist, `'" `),
			Start:  start,
			End:    start + len(full),
		}, true
	}

	return Featuring{}, false
}

func closingBracket(opener string) string {
	switch opener {
	case "(":
		return ")"
	case "[":
		return "]"
	default:
		return "}"
	}
}

// RemoveFeaturing strips every featuring clause from the text.
func RemoveFeaturing(text string) string {
	for {
		ft, ok := FindFeaturing(text)
		if !ok {
			return text
		}
		text = text[:ft.Start] + text[ft.End:]
	}
}

// CleanDigiOnly removes digital-only markers from a track name. It returns
// the residual name and whether any marker was found.
func CleanDigiOnly(name string) (string, bool) {
	clean := digiOnlyPat.ReplaceAllString(name, "")
	return clean, clean != name
}

// FindTrackAlt extracts a vinyl side marker from the start of a track
// name. It returns the normalized marker ("A1", "B2", "AA"), the name with
// the marker and its trailing separators removed, and whether a marker was
// found.
func FindTrackAlt(name string) (string, string, bool) {
	for _, loc := range trackAltPat.FindAllStringSubmatchIndex(name, -1) {
		alt := name[loc[4]:loc[5]]
		seps := name[loc[6]:loc[7]]

		// A bare letter marker ("A", "AA") needs a hard separator to stand
		// apart from titles that merely start with those letters.
		if !strings.ContainsAny(alt, "0123456789") {
			if len(strings.TrimLeft(seps, " ")) < 2 || strings.HasPrefix(name[loc[7]:], "(") {
				continue
			}
		}

		var rest string
		if loc[3] > loc[2] { // keep everything up to and including the "- "
			rest = name[:loc[3]] + name[loc[7]:]
		} else {
			rest = name[loc[7]:]
		}

		return strings.ToUpper(dotPat.ReplaceAllString(alt, "")), rest, true
	}

	return "", name, false
}

// FindAllTrackAlts returns every vinyl side marker found in the text, in
// order and deduplicated. Used to recover the full side layout from a
// release description.
func FindAllTrackAlts(text string) []string {
	var alts []string
	seen := make(map[string]bool)
	for _, m := range trackAltPat.FindAllStringSubmatch(text, -1) {
		alt := strings.ToUpper(dotPat.ReplaceAllString(m[2], ""))
		if !seen[alt] {
			seen[alt] = true
			alts = append(alts, alt)
		}
	}
	return alts
}

// SplitName splits "Artist - Title" into its parts on " - " occurrences
// that sit outside brackets. Delimiters preceded by another dash or by a
// leading "live" / "sample pack" prefix do not split.
func SplitName(name string) []string {
	var parts []string
	depth, last := 0, 0

	for i := 0; i+3 <= len(name); i++ {
		switch name[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		}
		if depth > 0 || name[i:i+3] != " - " {
			continue
		}
		if i > 0 && name[i-1] == '-' {
			continue
		}
		if i+3 < len(name) && name[i+3] == '-' {
			continue
		}
		prefix := strings.ToLower(name[last:i])
		if prefix == "live" || strings.HasSuffix(strings.ToLower(name[:i]), "sample pack") {
			continue
		}
		parts = append(parts, name[last:i])
		last = i + 3
		i += 2
	}

	return append(parts, name[last:])
}
