package model

import (
	"regexp"
	"strings"
)

// Human-readable media kinds, in the form the host application stores them.
const (
	MediaDigital  = "Digital Media"
	MediaCD       = "CD"
	MediaVinyl    = "Vinyl"
	MediaCassette = "Cassette"
	MediaDVD      = "DVD"
)

// FormatToMedia maps schema.org musicReleaseFormat values to media kinds.
// USB flash drives have no musicReleaseFormat and are treated as digital.
var FormatToMedia = map[string]string{
	"VinylFormat":     MediaVinyl,
	"CDFormat":        MediaCD,
	"CassetteFormat":  MediaCassette,
	"DigitalFormat":   MediaDigital,
	"DVDFormat":       MediaDVD,
	"USB Flash Drive": MediaDigital,
}

// MediaFormat is one purchasable format of a release, derived from a
// single albumRelease entry.
type MediaFormat struct {
	// ID is the canonical URL of this format, used as the album ID of
	// records assembled for it.
	ID string

	// Name is the media kind, one of the Media* constants.
	Name string

	// DiscTitle is the seller-facing name of the physical item, empty for
	// digital formats.
	DiscTitle string

	// Description is the seller-facing description of the physical item,
	// empty for digital formats.
	Description string
}

var vinylCountPat = regexp.MustCompile(`(?i)([1-5]) ?(?:xLP|LP|x)|(single|double|triple)`)

// MediumCount returns the number of discs of this format. Only vinyl disc
// titles carry a usable count ("2xLP", "double LP"); everything else is a
// single medium.
func (f MediaFormat) MediumCount() int {
	if f.Name != MediaVinyl {
		return 1
	}

	m := vinylCountPat.FindStringSubmatch(f.DiscTitle)
	if m == nil {
		return 1
	}
	if m[1] != "" {
		return int(m[1][0] - '0')
	}
	switch strings.ToLower(m[2]) {
	case "double":
		return 2
	case "triple":
		return 3
	}
	return 1
}
