package model

// DataSource identifies where the metadata came from. It is part of the
// output contract consumed by the host tagging application.
const DataSource = "bandcamp"

// Worldwide is the country sentinel used when the publisher location
// cannot be resolved to an ISO 3166-1 code.
const Worldwide = "XW"

// Album types recognized by the host application. AlbumType of a release
// is always exactly one of these; AlbumTypes may carry additional tags
// such as "lp", "remix", "live" or "soundtrack".
const (
	TypeAlbum       = "album"
	TypeEP          = "ep"
	TypeSingle      = "single"
	TypeCompilation = "compilation"
)

// Release statuses derived from the release date.
const (
	StatusOfficial    = "Official"
	StatusPromotional = "Promotional"
)

// TrackRecord is the resolved, immutable form of a single track.
//
// Field names follow the host application's data model: in particular
// TrackAlt, Medium, MediumIndex and MediumTotal are contract surface and
// must keep their JSON names stable.
type TrackRecord struct {
	// Index is the position of the track within the release, 1-based and
	// unique within a ReleaseRecord.
	Index int `json:"index"`

	// Medium and friends describe the physical disc layout. For digital
	// releases Medium is always 1 and MediumTotal the track count.
	Medium      int `json:"medium"`
	MediumIndex int `json:"medium_index"`
	MediumTotal int `json:"medium_total"`

	// TrackID is the canonical URL of the track.
	TrackID string `json:"track_id"`

	// Artist is the resolved main artist string, including a featuring
	// suffix when one was found. Artists holds the individual split names.
	Artist  string   `json:"artist"`
	Artists []string `json:"artists,omitempty"`

	// Title is the resolved title with any remix clause attached.
	Title string `json:"title"`

	// Length is the track duration in seconds, 0 when unknown.
	Length int `json:"length,omitempty"`

	// TrackAlt is the vinyl-style side marker ("A1", "B2"), empty when the
	// release does not use side lettering.
	TrackAlt string `json:"track_alt,omitempty"`

	Lyrics string `json:"lyrics,omitempty"`

	// Catalognum is only set when a track carries its own catalogue number
	// different from the release's.
	Catalognum string `json:"catalognum,omitempty"`
}

// ReleaseRecord is the final album-level record assembled once per
// retained media format.
type ReleaseRecord struct {
	Album    string `json:"album"`
	Artist   string `json:"artist"`
	AlbumID  string `json:"album_id"`
	ArtistID string `json:"artist_id"`

	Label      string `json:"label,omitempty"`
	Catalognum string `json:"catalognum,omitempty"`

	// Country is an ISO 3166-1 alpha-2 code, or the Worldwide sentinel.
	Country string `json:"country,omitempty"`

	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`

	AlbumType   string   `json:"albumtype"`
	AlbumTypes  []string `json:"albumtypes"`
	AlbumStatus string   `json:"albumstatus"`

	VA bool `json:"va,omitempty"`

	Genres []string `json:"genre,omitempty"`
	Style  string   `json:"style,omitempty"`

	Media     string `json:"media"`
	Mediums   int    `json:"mediums,omitempty"`
	DiscTitle string `json:"disctitle,omitempty"`

	Comments string `json:"comments,omitempty"`

	DataSource string `json:"data_source"`
	DataURL    string `json:"data_url"`

	Tracks []TrackRecord `json:"tracks"`
}

// Singleton reports whether the record describes a one-track release.
func (r *ReleaseRecord) Singleton() bool {
	return len(r.Tracks) == 1
}

// ApplyExclusions zeroes the output fields named in the configured
// exclude_extra_fields set. Unknown names are ignored.
func (r *ReleaseRecord) ApplyExclusions(fields map[string]bool) {
	if len(fields) == 0 {
		return
	}
	if fields["comments"] {
		r.Comments = ""
	}
	if fields["genre"] {
		r.Genres = nil
	}
	if fields["style"] {
		r.Style = ""
	}
	if fields["country"] {
		r.Country = ""
	}
	if fields["catalognum"] {
		r.Catalognum = ""
	}
	if fields["lyrics"] {
		for i := range r.Tracks {
			r.Tracks[i].Lyrics = ""
		}
	}
	if fields["track_alt"] {
		for i := range r.Tracks {
			r.Tracks[i].TrackAlt = ""
		}
	}
}
