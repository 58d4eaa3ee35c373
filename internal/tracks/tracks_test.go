package tracks

import (
	"testing"
)

func makeTracks(t *testing.T, n *Names) *Tracks {
	t.Helper()
	n.Resolve()
	return FromNames(n)
}

func TestFixTrackArtistsDefault(t *testing.T) {
	tracks := makeTracks(t, &Names{Items: items("One", "Two", "Alpha - Three")})
	tracks.FixTrackArtists("Alpha")

	for i, tr := range tracks.List {
		if tr.Artist != "Alpha" {
			t.Errorf("track %d artist = %q, want Alpha", i+1, tr.Artist)
		}
	}
}

func TestFixTrackArtistsSpurious(t *testing.T) {
	// a lone title-derived "artist" foreign to the album artist moves
	// back into the title
	tracks := makeTracks(t, &Names{Items: items("Intro - One", "Two", "Three", "Four")})
	tracks.FixTrackArtists("Alpha")

	first := tracks.List[0]
	if first.Title != "Intro - One" {
		t.Errorf("title = %q, want Intro - One", first.Title)
	}
	if first.Artist != "Alpha" {
		t.Errorf("artist = %q, want Alpha", first.Artist)
	}
}

func TestFixTrackArtistsRecoversTrackAlt(t *testing.T) {
	// vinyl release where the last side marker ended up in the declared
	// artist instead of the name
	tracks := makeTracks(t, &Names{Items: []Item{
		{Name: "A1 - X", Position: 1},
		{Name: "A2 - Y", Position: 2},
		{Name: "Z", Artist: "B1", Position: 3},
	}})
	tracks.FixTrackArtists("Alpha")

	wantAlt := []string{"A1", "A2", "B1"}
	wantTitle := []string{"X", "Y", "Z"}
	for i, tr := range tracks.List {
		if tr.TrackAlt != wantAlt[i] {
			t.Errorf("track %d alt = %q, want %q", i+1, tr.TrackAlt, wantAlt[i])
		}
		if tr.Title != wantTitle[i] {
			t.Errorf("track %d title = %q, want %q", i+1, tr.Title, wantTitle[i])
		}
		if tr.Artist != "Alpha" {
			t.Errorf("track %d artist = %q, want Alpha", i+1, tr.Artist)
		}
	}
}

func TestFixTrackArtistsKeepsLetterArtist(t *testing.T) {
	// a plain two-letter artist is not a side marker
	tracks := makeTracks(t, &Names{Items: []Item{
		{Name: "A1 - X", Position: 1},
		{Name: "A2 - Y", Position: 2},
		{Name: "DJ Fresh - Z", Position: 3},
	}})
	tracks.FixTrackArtists("DJ Fresh")

	last := tracks.List[2]
	if last.TrackAlt != "" || last.Artist != "DJ Fresh" {
		t.Errorf("got alt %q by %q, want Z by DJ Fresh", last.TrackAlt, last.Artist)
	}
}

func TestFixTrackArtistsThe(t *testing.T) {
	tracks := makeTracks(t, &Names{Items: items("The - End", "Alpha - One", "Alpha - Two")})
	tracks.FixTrackArtists("Alpha")

	first := tracks.List[0]
	if first.Artist != "Alpha" || first.Title != "The End" {
		t.Errorf("got %q by %q, want The End by Alpha", first.Title, first.Artist)
	}
}

func TestForMediaVinylSides(t *testing.T) {
	tracks := makeTracks(t, &Names{
		Items: items("Alpha - One", "Alpha - Two", "Alpha - Three", "Alpha - Four"),
	})
	comments := "A1. One\nB1. Two\nC1. Three\nD1. Four"

	records := tracks.ForMedia("Vinyl", comments, false)
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	wantAlt := []string{"A1", "B1", "C1", "D1"}
	wantMedium := []int{1, 1, 2, 2}
	wantMediumIndex := []int{1, 2, 1, 2}
	for i, rec := range records {
		if rec.TrackAlt != wantAlt[i] {
			t.Errorf("track %d alt = %q, want %q", i+1, rec.TrackAlt, wantAlt[i])
		}
		if rec.Medium != wantMedium[i] || rec.MediumIndex != wantMediumIndex[i] {
			t.Errorf("track %d medium = %d/%d, want %d/%d",
				i+1, rec.Medium, rec.MediumIndex, wantMedium[i], wantMediumIndex[i])
		}
		if rec.MediumTotal != 2 {
			t.Errorf("track %d medium total = %d, want 2", i+1, rec.MediumTotal)
		}
	}
}

func TestForMediaDigiOnly(t *testing.T) {
	tracks := makeTracks(t, &Names{
		Items: items("Alpha - One", "Alpha - Two (digital only)"),
	})

	if got := tracks.ForMedia("Vinyl", "", false); len(got) != 1 {
		t.Errorf("vinyl kept %d tracks, want 1", len(got))
	}
	if got := tracks.ForMedia("Vinyl", "", true); len(got) != 2 {
		t.Errorf("vinyl with digi kept %d tracks, want 2", len(got))
	}
	if got := tracks.ForMedia("Digital Media", "", false); len(got) != 2 {
		t.Errorf("digital kept %d tracks, want 2", len(got))
	}
}

func TestCollaborators(t *testing.T) {
	tracks := makeTracks(t, &Names{Items: items(
		"Alpha - One",
		"Alpha - Two (Bravo Remix)",
		"Alpha - Three (feat. Carla)",
	)})

	collabs := tracks.Collaborators()
	for _, want := range []string{"Bravo", "feat. Carla"} {
		if !collabs[want] {
			t.Errorf("collaborators missing %q: %v", want, collabs)
		}
	}
	if collabs["Alpha"] {
		t.Error("main artist listed as collaborator")
	}
}

func TestLeadArtists(t *testing.T) {
	tracks := makeTracks(t, &Names{Items: items(
		"Alpha - One",
		"Alpha x Bravo - Two",
	)})

	leads := tracks.LeadArtists()
	if len(leads) != 1 || leads[0] != "Alpha" {
		t.Errorf("lead artists = %v, want [Alpha]", leads)
	}
}
