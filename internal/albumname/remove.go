package albumname

import (
	"regexp"
	"strings"

	"github.com/snejus/beetcamp-sub000/internal/patterns"
)

// allowedDelims are characters that may surround a removable clause and
// get swallowed with it.
const allowedDelims = "*|,. –†"

func isAllowedDelim(c byte) bool {
	return strings.IndexByte(allowedDelims, c) >= 0
}

// removeSpan removes name[s:e] together with its surrounding delimiters
// and any enclosing bracket pair, replacing the whole region with a
// single space. Reports whether the span was removable at all: a clause
// glued to a word on its left stays.
func removeSpan(name string, s, e int) (string, bool) {
	if s > 0 && e < len(name) &&
		(name[s-1] == '(' || name[s-1] == '[') &&
		(name[e] == ')' || name[e] == ']') {
		return name[:s-1] + " " + name[e+1:], true
	}

	if s > 0 && !isAllowedDelim(name[s-1]) {
		return name, false
	}
	for s > 0 && isAllowedDelim(name[s-1]) {
		s--
	}
	for e < len(name) && (isAllowedDelim(name[e]) || name[e] == '-') {
		e++
	}
	// a trailing bare number is part of the clause: "Album - Artist 2"
	tail := e
	for tail < len(name) && name[tail] >= '0' && name[tail] <= '9' {
		tail++
	}
	if tail > e && tail == len(name) {
		e = tail
	}

	return name[:s] + " " + name[e:], true
}

// removeMatches removes every match of pat in name that passes validate
// (nil accepts all), then strips leftover separators from the edges.
func removeMatches(name string, pat *regexp.Regexp, validate func(name string, s, e int) bool) string {
	for range [8]struct{}{} {
		removed := false
		for _, m := range pat.FindAllStringIndex(name, -1) {
			if validate != nil && !validate(name, m[0], m[1]) {
				continue
			}
			if next, ok := removeSpan(name, m[0], m[1]); ok {
				name = strings.TrimSpace(next)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}
	return strings.Trim(strings.TrimSpace(name), "_:-")
}

// removeCatalognum strips the resolved catalogue number from the name.
func removeCatalognum(name, catalognum string) string {
	pat := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(catalognum))
	return removeMatches(name, pat, func(name string, _, e int) bool {
		// "CAT001 Deluxe Edition" names the release after the number
		return !strings.HasPrefix(strings.ToLower(name[e:]), " deluxe")
	})
}

// removeArtist strips one artist name, optionally preceded by a
// "by" / "compiled by" credit and followed by an "x Other" collaborator.
func removeArtist(name, artist string) string {
	quoted := regexp.QuoteMeta(artist)
	// an artist listed as "A, B" may appear joined by any delimiter
	quoted = strings.ReplaceAll(quoted, `, `, `(?:, | [x&] )`)
	pat := regexp.MustCompile(`(?i)(?:(?:compiled |selected )?by )?` + quoted + `(?: x [^-]+)?`)

	return removeMatches(name, pat, validArtistSpan)
}

// validArtistSpan rejects artist occurrences that are part of a larger
// credit ("A & B", "best of X") or run straight into a following word.
func validArtistSpan(name string, s, e int) bool {
	head := strings.ToLower(name[:s])
	for _, joint := range []string{" x ", " & ", " , ", " of ", " vs "} {
		if strings.HasSuffix(head, joint) {
			return false
		}
	}

	rest := name[e:]
	if rest == "" {
		return true
	}
	if strings.ContainsRune(`':,.`, rune(rest[0])) || isWordByte(rest[0]) {
		return false
	}
	// a directly following lowercase word means the artist is part of a
	// phrase; 'x' is exempt since it joins collaborators
	if len(rest) > 1 && rest[0] == ' ' {
		c := rest[1]
		if c == '&' || (c >= 'a' && c <= 'z' && c != 'x') {
			return false
		}
	}
	return true
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// removeLabel strips the label name unless it is qualified ("Label: Vol 2")
// or embedded in a longer phrase.
func removeLabel(name, label string) string {
	pat := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(label) + `\b`)
	name = removeMatches(name, pat, func(name string, s, e int) bool {
		if s > 1 && isWordByte(name[s-2]) && name[s-1] == ' ' {
			return false
		}
		rest := name[e:]
		if strings.HasPrefix(rest, ": Vol") {
			return false
		}
		if len(rest) > 1 && (rest[1] == '&' || rest[1] == '#' || isLetter(rest[1])) {
			return false
		}
		return true
	})
	return patterns.CleanName(name)
}
