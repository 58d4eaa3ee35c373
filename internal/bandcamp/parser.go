// Package bandcamp extracts release metadata from Bandcamp pages.
//
// Album and track pages embed their metadata as a schema.org ld+json
// script; the parser locates that document and deserializes it into the
// dto types. The package also scrapes the Bandcamp search results page,
// which has no structured representation at all.
package bandcamp

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/snejus/beetcamp-sub000/internal/bandcamp/dto"
)

// ErrNoMetadata is returned when a page carries no release metadata,
// for example a label page or a removed release.
var ErrNoMetadata = errors.New("release metadata not found in page")

// metaLinePat matches the single line holding the ld+json document. The
// document always contains an @id field and Bandcamp renders it without
// line breaks.
var metaLinePat = regexp.MustCompile(`.*"@id".*`)

// invisibleChars are zero-width and non-breaking characters that labels
// paste into names and descriptions and that break further parsing.
var invisibleChars = []string{"\u200b", "\u200d", "\u200e", "\u200f", "\u00a0"}

// ParseReleasePage extracts the release metadata from an album or track
// page. It returns ErrNoMetadata when the page has none.
func ParseReleasePage(html string) (*dto.Release, error) {
	for _, c := range invisibleChars {
		html = strings.ReplaceAll(html, c, "")
	}

	line := metaLinePat.FindString(html)
	if line == "" {
		return nil, ErrNoMetadata
	}

	var release dto.Release
	if err := json.Unmarshal([]byte(strings.TrimSpace(line)), &release); err != nil {
		return nil, fmt.Errorf("parse release metadata: %w", err)
	}
	return &release, nil
}
