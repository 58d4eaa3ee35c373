package metadata

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/snejus/beetcamp-sub000/internal/model"
)

// countryOverrides maps location names that the ISO tables spell
// differently or do not know at all.
var countryOverrides = map[string]string{
	"Russia":          "RU", // ISO: Russian Federation
	"The Netherlands": "NL", // ISO: Netherlands
	"UK":              "GB", // ISO: United Kingdom
	"D.C.":            "US",
	"South Korea":     "KR", // ISO: Korea, Republic of
	"Turkey":          "TR", // ISO: Türkiye
}

// asciiFold strips diacritics: "Türkiye" becomes "Turkiye".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Country resolves a publisher founding location to an ISO 3166-1 alpha-2
// code. Only the last comma-separated part of the location is considered,
// so "Washington, D.C." resolves via "D.C.". Unknown locations map to the
// worldwide code.
func Country(location string) string {
	if i := strings.LastIndex(location, ", "); i >= 0 {
		location = location[i+2:]
	}
	if folded, _, err := transform.String(asciiFold, location); err == nil {
		location = folded
	}

	if code, ok := countryOverrides[location]; ok {
		return code
	}
	if code, ok := countryByName[location]; ok {
		return code
	}
	if code, ok := subdivisionCountry[strings.ToLower(location)]; ok {
		return code
	}
	return model.Worldwide
}
