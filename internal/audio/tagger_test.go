package audio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/snejus/beetcamp-sub000/internal/config"
	"github.com/snejus/beetcamp-sub000/internal/model"
)

// an ID3v2.4 header with no frames, enough for id3v2.Open to parse
var emptyTagHeader = []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 0}

func emptyTaggedFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, emptyTagHeader, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testRelease() *model.ReleaseRecord {
	return &model.ReleaseRecord{
		Album:      "Great EP",
		Artist:     "Alpha",
		Label:      "Cool Label",
		Catalognum: "CAT001",
		Year:       2020, Month: 7, Day: 17,
		AlbumType: "ep",
		Genres:    []string{"ambient", "techno"},
		Media:     "Vinyl",
		Mediums:   1,
		Comments:  "Mastered by X",
		Tracks: []model.TrackRecord{
			{Index: 1, Medium: 1, MediumIndex: 1, Artist: "Alpha", Title: "One", TrackAlt: "A1"},
			{Index: 2, Medium: 1, MediumIndex: 2, Artist: "Alpha", Title: "Two", Lyrics: "la la"},
		},
	}
}

func userFrameValues(t *testing.T, tag *id3v2.Tag) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, frame := range tag.GetFrames(tag.CommonID("User defined text information frame")) {
		udt, ok := frame.(id3v2.UserDefinedTextFrame)
		if !ok {
			t.Fatalf("unexpected frame type %T", frame)
		}
		out[udt.Description] = udt.Value
	}
	return out
}

func TestWriteTags(t *testing.T) {
	dir := t.TempDir()
	path := emptyTaggedFile(t, dir, "01 one.mp3")
	release := testRelease()

	tagger := NewTagger(nil)
	if err := tagger.WriteTags(path, release, &release.Tracks[0], nil); err != nil {
		t.Fatalf("WriteTags: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer tag.Close()

	if tag.Artist() != "Alpha" || tag.Title() != "One" || tag.Album() != "Great EP" {
		t.Errorf("got %q / %q / %q", tag.Artist(), tag.Title(), tag.Album())
	}
	if tag.Genre() != "ambient, techno" {
		t.Errorf("genre = %q", tag.Genre())
	}
	if got := tag.GetTextFrame("TRCK").Text; got != "1/2" {
		t.Errorf("TRCK = %q, want 1/2", got)
	}
	if got := tag.GetTextFrame("TPOS").Text; got != "1/1" {
		t.Errorf("TPOS = %q, want 1/1", got)
	}
	if got := tag.GetTextFrame("TYER").Text; got != "2020" {
		t.Errorf("TYER = %q, want 2020", got)
	}
	if got := tag.GetTextFrame("TDRC").Text; got != "2020-07-17" {
		t.Errorf("TDRC = %q, want 2020-07-17", got)
	}
	if got := tag.GetTextFrame("TPE2").Text; got != "Alpha" {
		t.Errorf("TPE2 = %q, want Alpha", got)
	}

	user := userFrameValues(t, tag)
	want := map[string]string{
		"CATALOGNUMBER": "CAT001",
		"ALBUMTYPE":     "ep",
		"MEDIA":         "Vinyl",
		"TRACK_ALT":     "A1",
	}
	for desc, value := range want {
		if user[desc] != value {
			t.Errorf("TXXX %s = %q, want %q", desc, user[desc], value)
		}
	}
}

func TestTagDirectory(t *testing.T) {
	dir := t.TempDir()
	emptyTaggedFile(t, dir, "01 one.mp3")
	second := emptyTaggedFile(t, dir, "02 two.mp3")
	release := testRelease()

	tagger := NewTagger(nil)
	if err := tagger.TagDirectory(dir, release, nil); err != nil {
		t.Fatalf("TagDirectory: %v", err)
	}

	tag, err := id3v2.Open(second, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer tag.Close()

	if tag.Title() != "Two" {
		t.Errorf("second file title = %q, want Two", tag.Title())
	}
	lyrics := tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	if len(lyrics) != 1 {
		t.Fatalf("got %d lyrics frames, want 1", len(lyrics))
	}
	if uslt := lyrics[0].(id3v2.UnsynchronisedLyricsFrame); uslt.Lyrics != "la la" {
		t.Errorf("lyrics = %q, want la la", uslt.Lyrics)
	}
}

func TestTagDirectoryCountMismatch(t *testing.T) {
	dir := t.TempDir()
	emptyTaggedFile(t, dir, "01 one.mp3")

	if err := NewTagger(nil).TagDirectory(dir, testRelease(), nil); err == nil {
		t.Error("expected an error for mismatched track count")
	}
}

func TestPrepareArtwork(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for x := 0; x < 200; x++ {
		for y := 0; y < 200; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	settings := config.DefaultSettings()
	settings.CoverArtInTagsMaxSize = 100
	prepared := NewTagger(settings).PrepareArtwork(buf.Bytes())
	if prepared == nil {
		t.Fatal("PrepareArtwork returned nil")
	}
	decoded, err := jpeg.Decode(bytes.NewReader(prepared))
	if err != nil {
		t.Fatalf("prepared artwork is not a jpeg: %v", err)
	}
	if decoded.Bounds().Dx() != 100 {
		t.Errorf("width = %d, want 100", decoded.Bounds().Dx())
	}

	settings.SaveCoverArtInTags = false
	if NewTagger(settings).PrepareArtwork(buf.Bytes()) != nil {
		t.Error("artwork prepared although embedding is disabled")
	}
}
