// Package dto contains the wire representation of the release metadata
// that Bandcamp embeds in its pages as an ld+json script.
//
// The structures mirror the schema.org MusicAlbum / MusicRecording
// vocabulary that Bandcamp uses, plus the non-standard
// additionalProperty bags that carry the interesting bits.
package dto

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

// Release is the top-level ld+json document of an album or track page.
type Release struct {
	ID            string   `json:"@id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	CreditText    string   `json:"creditText"`
	DatePublished string   `json:"datePublished"`
	DateModified  string   `json:"dateModified"`
	ByArtist      *Entity  `json:"byArtist"`
	Publisher     *Entity  `json:"publisher"`
	Image         Strings  `json:"image"`
	Keywords      Strings  `json:"keywords"`
	AlbumRelease  []Format `json:"albumRelease"`

	// Track is set on album pages.
	Track *ItemList `json:"track"`

	// InAlbum, Duration and RecordingOf are set on track pages.
	InAlbum     *Release   `json:"inAlbum"`
	Duration    string     `json:"duration"`
	RecordingOf *Recording `json:"recordingOf"`
}

// Entity is a named schema.org object: an artist, a label or a location.
type Entity struct {
	ID               string  `json:"@id"`
	Name             string  `json:"name"`
	Genre            string  `json:"genre"`
	FoundingLocation *Entity `json:"foundingLocation"`
}

// Format is one release format (digital, vinyl, CD...) of the release.
type Format struct {
	ID                 string     `json:"@id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	MusicReleaseFormat string     `json:"musicReleaseFormat"`
	RecordLabel        *Entity    `json:"recordLabel"`
	AdditionalProperty []Property `json:"additionalProperty"`
}

// Property is one entry of an additionalProperty bag.
type Property struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// Prop returns the raw value of a named additional property, or nil.
func (f *Format) Prop(name string) json.RawMessage {
	for _, p := range f.AdditionalProperty {
		if p.Name == name {
			return p.Value
		}
	}
	return nil
}

// StringProp returns a string-valued additional property.
func (f *Format) StringProp(name string) string {
	var s string
	if raw := f.Prop(name); raw != nil {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// IntProp returns a numeric additional property, with ok reporting
// whether it was present.
func (f *Format) IntProp(name string) (int, bool) {
	raw := f.Prop(name)
	if raw == nil {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

// ItemList is the schema.org track list of an album.
type ItemList struct {
	NumberOfItems   int        `json:"numberOfItems"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one positioned entry of an ItemList.
type ListItem struct {
	Position int        `json:"position"`
	Item     *TrackItem `json:"item"`
}

// TrackItem is one MusicRecording of the track list.
type TrackItem struct {
	ID          string     `json:"@id"`
	Name        string     `json:"name"`
	ByArtist    *Entity    `json:"byArtist"`
	Duration    string     `json:"duration"`
	RecordingOf *Recording `json:"recordingOf"`
}

// Recording carries the lyrics of a track.
type Recording struct {
	Lyrics *Lyrics `json:"lyrics"`
}

// Lyrics is the text body of a recording's lyrics.
type Lyrics struct {
	Text string `json:"text"`
}

// LyricsText returns the lyrics with carriage returns removed.
func (r *Recording) LyricsText() string {
	if r == nil || r.Lyrics == nil {
		return ""
	}
	return strings.ReplaceAll(r.Lyrics.Text, "\r", "")
}

// Strings decodes a JSON value that may be a single string or a list of
// strings. Bandcamp uses both forms for image and keywords.
type Strings []string

func (s *Strings) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = Strings{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = Strings(many)
	return nil
}

// First returns the first string, or empty.
func (s Strings) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

var numberPat = regexp.MustCompile(`\d+`)

// DurationSeconds parses the "P00H03M44S" style duration into seconds.
// Zero means the duration is unknown.
func DurationSeconds(duration string) int {
	nums := numberPat.FindAllString(duration, -1)
	if len(nums) != 3 {
		return 0
	}
	total := 0
	for _, n := range nums {
		v := 0
		for _, c := range n {
			v = v*10 + int(c-'0')
		}
		total = total*60 + v
	}
	return total
}

// dates look like "17 Jul 2020 00:00:00 GMT"
const dateLayout = "02 Jan 2006"

// ParseDate parses the published/modified date, ignoring the time part.
func ParseDate(value string) (time.Time, bool) {
	if len(value) < len(dateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, value[:len(dateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// Meta returns the album document of the page: the page itself for album
// pages, the containing album for track pages.
func (r *Release) Meta() *Release {
	if r.InAlbum != nil {
		return r.InAlbum
	}
	return r
}

// IsTrackPage reports whether the document describes a single track.
func (r *Release) IsTrackPage() bool {
	return r.Track == nil
}

// Label returns the record label name: the label of the first release
// format when given, the publisher otherwise.
func (r *Release) Label() string {
	meta := r.Meta()
	if formats := meta.AlbumRelease; len(formats) > 0 && formats[0].RecordLabel != nil {
		if name := formats[0].RecordLabel.Name; name != "" {
			return name
		}
	}
	if r.Publisher != nil {
		return r.Publisher.Name
	}
	return ""
}

// ArtistID returns the identifier of the release artist, falling back to
// the publisher.
func (r *Release) ArtistID() string {
	if r.ByArtist != nil && r.ByArtist.ID != "" {
		return r.ByArtist.ID
	}
	if r.Publisher != nil {
		return r.Publisher.ID
	}
	return ""
}
