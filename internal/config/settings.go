// Package config holds the persisted settings of the metadata tools.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// GenreSettings control how release keywords are turned into genres.
type GenreSettings struct {
	// Capitalize the resulting genres and the style tag.
	Capitalize bool `json:"capitalize"`

	// Maximum number of genres to keep; 0 keeps all of them.
	Maximum int `json:"maximum"`

	// Mode is the keyword validation strictness: "classical",
	// "progressive" or "psychedelic".
	Mode string `json:"mode"`

	// AlwaysInclude are regular expressions for keywords that bypass the
	// mode validation.
	AlwaysInclude []string `json:"always_include"`
}

// Settings holds all configuration options.
type Settings struct {
	// Metadata settings
	PreferredMedia           []string      `json:"preferred_media"`
	IncludeDigitalOnlyTracks bool          `json:"include_digital_only_tracks"`
	ExcludeExtraFields       []string      `json:"exclude_extra_fields"`
	CommentsSeparator        string        `json:"comments_separator"`
	VAName                   string        `json:"va_name"`
	Genre                    GenreSettings `json:"genre"`

	// Search settings
	SearchMax int `json:"search_max"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`

	// Artwork settings
	SaveCoverArtInTags    bool `json:"save_cover_art_in_tags"`
	CoverArtInTagsResize  bool `json:"cover_art_in_tags_resize"`
	CoverArtInTagsMaxSize int  `json:"cover_art_in_tags_max_size"`

	// Fetch settings
	MaxConcurrentFetches int `json:"max_concurrent_fetches"`

	// Proxy settings
	ProxyType    string `json:"proxy_type"` // none, system, manual
	ProxyAddress string `json:"proxy_address"`
	ProxyPort    int    `json:"proxy_port"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		PreferredMedia:           []string{"Digital Media"},
		IncludeDigitalOnlyTracks: false,
		CommentsSeparator:        "\n---\n",
		VAName:                   "Various Artists",
		Genre: GenreSettings{
			Capitalize:    false,
			Maximum:       0,
			Mode:          "progressive",
			AlwaysInclude: nil,
		},

		SearchMax: 10,

		ModifyTags: true,

		SaveCoverArtInTags:    true,
		CoverArtInTagsResize:  true,
		CoverArtInTagsMaxSize: 1000,

		MaxConcurrentFetches: 5,

		ProxyType: "system",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Excluded returns the excluded extra fields as a set.
func (s *Settings) Excluded() map[string]bool {
	out := make(map[string]bool, len(s.ExcludeExtraFields))
	for _, f := range s.ExcludeExtraFields {
		out[f] = true
	}
	return out
}
