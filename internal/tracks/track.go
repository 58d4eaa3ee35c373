// Package tracks parses track names of a release: first each name in the
// context of the whole tracklist, then each track on its own, and finally
// a reconciliation pass that fixes artists and titles the individual
// parses got wrong.
package tracks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/snejus/beetcamp-sub000/internal/catalognum"
	"github.com/snejus/beetcamp-sub000/internal/model"
	"github.com/snejus/beetcamp-sub000/internal/patterns"
)

// Item is the raw per-track data lifted from the release JSON, with Name
// already rewritten by the release-wide title pass.
type Item struct {
	ID       string
	Name     string
	Artist   string
	Position int
	Length   int
	Lyrics   string

	// AlbumArtist is set when the release metadata names a reliable
	// artist for every track.
	AlbumArtist string
}

// Track is one parsed track.
type Track struct {
	Item        Item
	Index       int
	MediumIndex int

	// JSONArtist is the declared artist after cleaning, which may still
	// differ from the artist parsed out of the name.
	JSONArtist string

	// Name is the track name after all removals: digi-only markers,
	// side markers, catalogue number, leading index and remix clause.
	Name string

	Ft         string
	FtArtist   string
	Catalognum string
	Remix      *Remix
	DigiOnly   bool
	TrackAlt   string

	// Artist and Title are derived from Name and may be overwritten by
	// the tracklist-wide fixes.
	Artist string
	Title  string

	nameSplit         []string
	titleWithoutRemix string
}

// MakeTrack parses one track item.
func MakeTrack(item Item) *Track {
	t := &Track{Item: item, Index: item.Position}
	t.parseName(item.Name, item.Artist, item.Position)
	if item.AlbumArtist != "" {
		t.Artist = item.AlbumArtist
	} else {
		t.Artist = t.deriveArtist()
	}
	t.Title = t.deriveTitle()
	return t
}

func (t *Track) parseName(name, artist string, index int) {
	artist, artistDigi := patterns.CleanDigiOnly(artist)
	name, nameDigi := patterns.CleanDigiOnly(name)
	t.DigiOnly = nameDigi || artistDigi

	if artist != "" {
		artist = patterns.CleanName(artist)
	}
	name = strings.TrimSpace(patterns.CleanName(name))

	if alt, rest, ok := patterns.FindTrackAlt(name); ok {
		t.TrackAlt = alt
		name = rest
	}

	if cat, full := catalognum.Delimited(name); cat != "" {
		t.Catalognum = cat
		name = strings.TrimSpace(strings.Replace(name, full, "", 1))
	}

	if index > 0 {
		prefix := regexp.MustCompile(fmt.Sprintf(`^0?%d\W\W+`, index))
		name = prefix.ReplaceAllString(name, "")
		t.MediumIndex = index
	}

	if remix, ok := RemixFromName(name); ok {
		t.Remix = &remix
		if remix.Start {
			name = strings.TrimSpace(strings.TrimPrefix(name, remix.Full))
		} else if remix.End {
			name = strings.TrimSpace(strings.TrimSuffix(name, remix.Full))
		}
	}

	// a featuring artist may sit in the name or in the declared artist
	if ft, ok := patterns.FindFeaturing(name); ok {
		t.FtArtist = ft.Artist
		t.Ft = strings.Trim(strings.TrimSpace(ft.Full), "()[]{} ")
		name = name[:ft.Start] + name[ft.End:]
	} else if ft, ok := patterns.FindFeaturing(artist); ok {
		t.FtArtist = ft.Artist
		t.Ft = strings.Trim(strings.TrimSpace(ft.Full), "()[]{} ")
		artist = artist[:ft.Start] + artist[ft.End:]
	}

	t.Name = name
	t.JSONArtist = artist
}

// NameSplit returns the name split into artist and title parts. A name
// without a separator inherits the declared artist as its first part.
func (t *Track) NameSplit() []string {
	if t.nameSplit != nil {
		return t.nameSplit
	}

	name := t.Name
	if a := t.JSONArtist; a != "" &&
		strings.HasPrefix(strings.ToLower(name), strings.ToLower(a)+" - ") {
		t.nameSplit = []string{name[len(a)+3:]}
		return t.nameSplit
	}

	split := patterns.SplitName(strings.TrimSpace(name))
	if t.JSONArtist != "" && !strings.Contains(name, " - ") {
		split = append([]string{strings.TrimSpace(t.JSONArtist)}, split...)
	}
	t.nameSplit = split
	return split
}

// TitleWithoutRemix returns the last part of the split name.
func (t *Track) TitleWithoutRemix() string {
	if t.titleWithoutRemix == "" {
		split := t.NameSplit()
		t.titleWithoutRemix = split[len(split)-1]
	}
	return t.titleWithoutRemix
}

// deriveTitle returns the main title with the remix clause appended when
// the split dropped it.
func (t *Track) deriveTitle() string {
	title := t.TitleWithoutRemix()
	if t.Remix != nil && !strings.Contains(title, t.Remix.Text) {
		return title + " " + t.Remix.Text
	}
	return title
}

// deriveArtist deduces the artist from the track name.
func (t *Track) deriveArtist() string {
	if t.TitleWithoutRemix() == "" {
		return ""
	}

	split := t.NameSplit()
	if t.JSONArtist != "" && len(split) == 1 {
		return t.JSONArtist
	}

	artist := strings.Join(split[:len(split)-1], " - ")
	initial := artist
	artist = removeRemixClauses(strings.Trim(artist, ", -"))
	if artist != "" && t.Remix != nil && t.Remix.Artist() != "" {
		artist = cleanDuplicateArtists(artist, strings.ToLower(t.Remix.Text))
	}

	// singletons keep the original artist even if it names the remixer
	if artist == "" && t.Index == 0 {
		artist = initial
	}

	parts := strings.Split(strings.Trim(artist, ", -"), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// cleanDuplicateArtists drops artists that already appear in the remix
// clause from the artist field.
func cleanDuplicateArtists(artist, remixText string) string {
	for _, sub := range patterns.SplitArtists(artist, true) {
		if strings.Contains(remixText, strings.ToLower(sub)) {
			pat := regexp.MustCompile(`(?i)(?:and|x|\W*)*\b` + regexp.QuoteMeta(sub))
			artist = pat.ReplaceAllString(artist, "")
		}
	}
	return artist
}

// Artists returns the split main artists of the track.
func (t *Track) Artists() []string {
	return patterns.SplitArtists(t.Artist, false)
}

// LeadArtist returns the first artist of a collaboration.
func (t *Track) LeadArtist() string {
	if artists := patterns.SplitArtists(t.Artist, true); len(artists) > 0 {
		return artists[0]
	}
	return t.Artist
}

// Record returns the track as a metadata record, with the featuring
// artist appended to the artist field unless it already appears in it or
// in the title.
func (t *Track) Record() model.TrackRecord {
	artists := t.Artists()
	if t.FtArtist != "" {
		artists = append(artists, t.FtArtist)
	}
	artists = patterns.SplitArtistsList(artists, true)

	artist := t.Artist
	if t.Ft != "" && !strings.Contains(t.Artist+t.Title, t.FtArtist) {
		artist = t.Artist + " " + t.Ft
	}

	return model.TrackRecord{
		Index:       t.Index,
		MediumIndex: t.MediumIndex,
		Medium:      1,
		TrackID:     t.Item.ID,
		Artist:      artist,
		Artists:     artists,
		Title:       t.Title,
		Length:      t.Item.Length,
		TrackAlt:    t.TrackAlt,
		Lyrics:      t.Item.Lyrics,
		Catalognum:  t.Catalognum,
	}
}
