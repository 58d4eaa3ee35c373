package metadata

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/snejus/beetcamp-sub000/internal/bandcamp/dto"
	"github.com/snejus/beetcamp-sub000/internal/config"
)

func prop(name, raw string) dto.Property {
	return dto.Property{Name: name, Value: json.RawMessage(raw)}
}

func digitalFormat(id, name string) dto.Format {
	return dto.Format{
		ID:                 id,
		MusicReleaseFormat: "DigitalFormat",
		AdditionalProperty: []dto.Property{
			prop("name", fmt.Sprintf("%q", name)),
			prop("item_type", `"a"`),
		},
	}
}

func albumTracks(names ...string) *dto.ItemList {
	list := &dto.ItemList{NumberOfItems: len(names)}
	for i, name := range names {
		list.ItemListElement = append(list.ItemListElement, dto.ListItem{
			Position: i + 1,
			Item: &dto.TrackItem{
				ID:       fmt.Sprintf("https://artist.bandcamp.com/track/%d", i+1),
				Name:     name,
				Duration: "P00H03M44S",
			},
		})
	}
	return list
}

func TestMediaFormats(t *testing.T) {
	formats := []dto.Format{
		digitalFormat("https://x.bandcamp.com/album/a#digital", "Great EP"),
		{
			ID:                 "https://x.bandcamp.com/album/a#vinyl",
			Name:               "Limited 12\" Vinyl",
			MusicReleaseFormat: "VinylFormat",
			AdditionalProperty: []dto.Property{
				prop("name", `"Limited 12\" Vinyl"`),
				prop("item_type", `"p"`),
			},
		},
		{
			// merch bundles do not describe the release itself
			ID:                 "https://x.bandcamp.com/album/a#bundle",
			MusicReleaseFormat: "VinylFormat",
			AdditionalProperty: []dto.Property{
				prop("name", `"Vinyl Bundle with T-Shirt"`),
				prop("item_type", `"p"`),
			},
		},
		{
			// subscriber-only pseudo release
			ID: "https://x.bandcamp.com/album/a#sub",
			AdditionalProperty: []dto.Property{
				prop("name", `"Subscription"`),
				prop("item_type", `"b"`),
			},
		},
	}

	got := mediaFormats(formats)
	if len(got) != 2 {
		t.Fatalf("kept %d formats, want 2: %+v", len(got), got)
	}
	if got[0].Name != "Digital Media" || got[1].Name != "Vinyl" {
		t.Errorf("media kinds = %q, %q, want Digital Media, Vinyl", got[0].Name, got[1].Name)
	}
	if got[0].DiscTitle != "" {
		t.Errorf("digital format has disc title %q", got[0].DiscTitle)
	}
	if got[1].DiscTitle != "Limited 12\" Vinyl" {
		t.Errorf("vinyl disc title = %q", got[1].DiscTitle)
	}
}

func TestPreferredMediaOrder(t *testing.T) {
	vinylFormat := dto.Format{
		ID:                 "https://artist.bandcamp.com/album/great-ep#vinyl",
		Name:               "Limited 12\" Vinyl",
		MusicReleaseFormat: "VinylFormat",
		AdditionalProperty: []dto.Property{
			prop("name", `"Limited 12\" Vinyl"`),
			prop("item_type", `"p"`),
		},
	}
	release := func() *dto.Release {
		return &dto.Release{
			ID:            "https://artist.bandcamp.com/album/great-ep",
			Name:          "Great EP",
			DatePublished: "17 Jul 2020 00:00:00 GMT",
			ByArtist:      &dto.Entity{Name: "Artist"},
			AlbumRelease: []dto.Format{
				digitalFormat("https://artist.bandcamp.com/album/great-ep#digital", "Great EP"),
				vinylFormat,
			},
			Track: albumTracks("Intro", "Outro"),
		}
	}

	// the default preference keeps digital first
	albums := New(release(), config.DefaultSettings()).Albums()
	if len(albums) != 2 {
		t.Fatalf("got %d albums, want 2", len(albums))
	}
	if albums[0].Media != "Digital Media" {
		t.Errorf("default first media = %q, want Digital Media", albums[0].Media)
	}

	cfg := config.DefaultSettings()
	cfg.PreferredMedia = []string{"Vinyl", "Digital Media"}
	albums = New(release(), cfg).Albums()
	if albums[0].Media != "Vinyl" {
		t.Errorf("preferred first media = %q, want Vinyl", albums[0].Media)
	}
	if albums[1].Media != "Digital Media" {
		t.Errorf("second media = %q, want Digital Media", albums[1].Media)
	}
}

func TestAlbumRecord(t *testing.T) {
	release := &dto.Release{
		ID:            "https://artist.bandcamp.com/album/great-ep",
		Name:          "Great EP",
		Description:   "Debut release.",
		CreditText:    "Mastered by X",
		DatePublished: "17 Jul 2020 00:00:00 GMT",
		ByArtist:      &dto.Entity{Name: "Artist"},
		Publisher: &dto.Entity{
			ID:               "https://label.bandcamp.com",
			Name:             "Cool Label",
			Genre:            "https://bandcamp.com/tag/electronic",
			FoundingLocation: &dto.Entity{Name: "Berlin, Germany"},
		},
		Keywords:     dto.Strings{"electronic", "techno", "ambient"},
		AlbumRelease: []dto.Format{digitalFormat("https://artist.bandcamp.com/album/great-ep#digital", "Great EP")},
		Track:        albumTracks("Intro", "Outro"),
	}

	m := New(release, config.DefaultSettings())
	albums := m.Albums()
	if len(albums) != 1 {
		t.Fatalf("got %d albums, want 1", len(albums))
	}

	rec := albums[0]
	if rec.Album != "Great EP" {
		t.Errorf("album = %q, want Great EP", rec.Album)
	}
	if rec.Artist != "Artist" {
		t.Errorf("albumartist = %q, want Artist", rec.Artist)
	}
	if rec.AlbumType != "ep" {
		t.Errorf("albumtype = %q, want ep", rec.AlbumType)
	}
	if !reflect.DeepEqual(rec.AlbumTypes, []string{"ep"}) {
		t.Errorf("albumtypes = %v, want [ep]", rec.AlbumTypes)
	}
	if rec.AlbumStatus != "Official" {
		t.Errorf("albumstatus = %q, want Official", rec.AlbumStatus)
	}
	if rec.Label != "Cool Label" {
		t.Errorf("label = %q, want Cool Label", rec.Label)
	}
	if rec.Country != "DE" {
		t.Errorf("country = %q, want DE", rec.Country)
	}
	if rec.Year != 2020 || rec.Month != 7 || rec.Day != 17 {
		t.Errorf("date = %d-%d-%d, want 2020-7-17", rec.Year, rec.Month, rec.Day)
	}
	if rec.Style != "electronic" {
		t.Errorf("style = %q, want electronic", rec.Style)
	}
	if !reflect.DeepEqual(rec.Genres, []string{"ambient", "techno"}) {
		t.Errorf("genres = %v, want [ambient techno]", rec.Genres)
	}
	if rec.Media != "Digital Media" || rec.Mediums != 1 {
		t.Errorf("media = %q/%d, want Digital Media/1", rec.Media, rec.Mediums)
	}
	if rec.VA {
		t.Error("release marked as various artists")
	}
	if rec.AlbumID != "https://artist.bandcamp.com/album/great-ep#digital" {
		t.Errorf("album_id = %q", rec.AlbumID)
	}
	if rec.DataURL != release.ID || rec.DataSource != "bandcamp" {
		t.Errorf("data_url/source = %q/%q", rec.DataURL, rec.DataSource)
	}
	if rec.Comments != "Debut release.\n---\nMastered by X" {
		t.Errorf("comments = %q", rec.Comments)
	}

	if len(rec.Tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(rec.Tracks))
	}
	for i, want := range []string{"Intro", "Outro"} {
		tr := rec.Tracks[i]
		if tr.Title != want || tr.Artist != "Artist" {
			t.Errorf("track %d = %q by %q, want %q by Artist", i+1, tr.Title, tr.Artist, want)
		}
		if tr.Index != i+1 || tr.Medium != 1 || tr.MediumTotal != 2 {
			t.Errorf("track %d layout = %d/%d/%d", i+1, tr.Index, tr.Medium, tr.MediumTotal)
		}
		if tr.Length != 224 {
			t.Errorf("track %d length = %d, want 224", i+1, tr.Length)
		}
	}
}

func TestVariousArtistsCompilation(t *testing.T) {
	release := &dto.Release{
		ID:            "https://label.bandcamp.com/album/summer-selection",
		Name:          "Summer Selection",
		Description:   "Five fresh tracks.",
		DatePublished: "01 Jun 2021 00:00:00 GMT",
		ByArtist:      &dto.Entity{Name: "Various Artists"},
		Publisher:     &dto.Entity{ID: "https://label.bandcamp.com", Name: "Cool Label"},
		AlbumRelease: []dto.Format{
			digitalFormat("https://label.bandcamp.com/album/summer-selection#digital", "Summer Selection"),
		},
		Track: albumTracks(
			"Alpha - One",
			"Bravo - Two",
			"Carla - Three",
			"Delta - Four",
			"Echo - Five",
		),
	}

	m := New(release, config.DefaultSettings())
	rec := m.Albums()[0]

	if !rec.VA {
		t.Error("release not marked as various artists")
	}
	if rec.Artist != "Various Artists" {
		t.Errorf("albumartist = %q, want Various Artists", rec.Artist)
	}
	if rec.AlbumType != "compilation" {
		t.Errorf("albumtype = %q, want compilation", rec.AlbumType)
	}
	if !reflect.DeepEqual(rec.AlbumTypes, []string{"album", "compilation"}) {
		t.Errorf("albumtypes = %v, want [album compilation]", rec.AlbumTypes)
	}
	if rec.Album != "Summer Selection" {
		t.Errorf("album = %q, want Summer Selection", rec.Album)
	}

	wantArtists := []string{"Alpha", "Bravo", "Carla", "Delta", "Echo"}
	for i, tr := range rec.Tracks {
		if tr.Artist != wantArtists[i] {
			t.Errorf("track %d artist = %q, want %q", i+1, tr.Artist, wantArtists[i])
		}
	}
}

func TestSingletonRecord(t *testing.T) {
	release := &dto.Release{
		ID:            "https://artist.bandcamp.com/track/cool-track",
		Name:          "Cool Track",
		DatePublished: "17 Jul 2020 00:00:00 GMT",
		Duration:      "P00H03M44S",
		ByArtist:      &dto.Entity{Name: "Artist", ID: "https://artist.bandcamp.com"},
		Publisher:     &dto.Entity{Name: "Artist"},
		InAlbum: &dto.Release{
			AlbumRelease: []dto.Format{
				digitalFormat("https://artist.bandcamp.com/track/cool-track#digital", "Cool Track"),
			},
		},
	}

	m := New(release, config.DefaultSettings())
	rec := m.SingletonRecord()

	if rec.Album != "" {
		t.Errorf("album = %q, want empty", rec.Album)
	}
	if rec.AlbumType != "single" {
		t.Errorf("albumtype = %q, want single", rec.AlbumType)
	}
	if rec.AlbumID != release.ID {
		t.Errorf("album_id = %q, want %q", rec.AlbumID, release.ID)
	}
	if len(rec.Tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(rec.Tracks))
	}

	tr := rec.Tracks[0]
	if tr.Title != "Cool Track" || tr.Artist != "Artist" {
		t.Errorf("track = %q by %q, want Cool Track by Artist", tr.Title, tr.Artist)
	}
	if tr.TrackID != release.ID {
		t.Errorf("track_id = %q, want %q", tr.TrackID, release.ID)
	}
	if tr.Length != 224 {
		t.Errorf("length = %d, want 224", tr.Length)
	}
}
