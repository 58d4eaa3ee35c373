// Package audio writes resolved release metadata into the ID3 tags of
// local MP3 files.
package audio

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bogem/id3v2"

	"github.com/snejus/beetcamp-sub000/internal/config"
	ioutils "github.com/snejus/beetcamp-sub000/internal/io"
	"github.com/snejus/beetcamp-sub000/internal/model"
)

// Tagger writes record fields into ID3v2 frames. Beyond the standard
// text frames it stores the catalogue number, the album type and the
// vinyl side marker in TXXX frames, where tagging tools expect them.
type Tagger struct {
	settings *config.Settings
}

// NewTagger creates a Tagger. A nil settings falls back to defaults.
func NewTagger(settings *config.Settings) *Tagger {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &Tagger{settings: settings}
}

// PrepareArtwork converts cover art into the form embedded into tags:
// scaled down to the configured maximum size and JPEG-encoded. It
// returns nil when embedding is disabled or the image cannot be
// decoded.
func (t *Tagger) PrepareArtwork(artwork []byte) []byte {
	if len(artwork) == 0 || !t.settings.SaveCoverArtInTags {
		return nil
	}
	if t.settings.CoverArtInTagsResize {
		resized, err := ioutils.Resize(artwork, t.settings.CoverArtInTagsMaxSize)
		if err != nil {
			return nil
		}
		return resized
	}
	converted, err := ioutils.ToJPEG(artwork)
	if err != nil {
		return nil
	}
	return converted
}

// TagDirectory tags the MP3 files of dir with the release's tracks,
// matched in sorted filename order. The file count must equal the track
// count. Pass artwork through PrepareArtwork first.
func (t *Tagger) TagDirectory(dir string, release *model.ReleaseRecord, artwork []byte) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.mp3"))
	if err != nil {
		return err
	}
	if len(files) != len(release.Tracks) {
		return fmt.Errorf("%s holds %d mp3 files, release has %d tracks",
			dir, len(files), len(release.Tracks))
	}
	sort.Strings(files)

	for i, file := range files {
		if err := t.WriteTags(file, release, &release.Tracks[i], artwork); err != nil {
			return fmt.Errorf("tag %s: %w", file, err)
		}
	}
	return nil
}

// WriteTags writes one track's tags to an MP3 file.
func (t *Tagger) WriteTags(path string, release *model.ReleaseRecord, track *model.TrackRecord, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if t.settings.ModifyTags {
		t.writeTextFrames(tag, release, track)
	}
	if artwork != nil {
		writeArtwork(tag, artwork)
	}

	return tag.Save()
}

func (t *Tagger) writeTextFrames(tag *id3v2.Tag, release *model.ReleaseRecord, track *model.TrackRecord) {
	tag.SetArtist(track.Artist)
	tag.SetTitle(track.Title)
	tag.SetAlbum(release.Album)
	if len(release.Genres) > 0 {
		tag.SetGenre(strings.Join(release.Genres, ", "))
	}

	tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, release.Artist)
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8,
		fmt.Sprintf("%d/%d", track.Index, len(release.Tracks)))
	if track.Medium > 0 && release.Mediums > 0 {
		tag.AddTextFrame("TPOS", id3v2.EncodingUTF8,
			fmt.Sprintf("%d/%d", track.Medium, release.Mediums))
	}
	if release.Year > 0 {
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, fmt.Sprintf("%04d", release.Year))
		tag.AddTextFrame("TDRC", id3v2.EncodingUTF8,
			fmt.Sprintf("%04d-%02d-%02d", release.Year, release.Month, release.Day))
	}

	userFrames := []struct{ description, value string }{
		{"CATALOGNUMBER", release.Catalognum},
		{"ALBUMTYPE", release.AlbumType},
		{"MEDIA", release.Media},
		{"TRACK_ALT", track.TrackAlt},
	}
	for _, f := range userFrames {
		if f.value != "" {
			tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
				Encoding:    id3v2.EncodingUTF8,
				Description: f.description,
				Value:       f.value,
			})
		}
	}

	if track.Lyrics != "" {
		tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
			Encoding:          id3v2.EncodingUTF8,
			Language:          "eng",
			ContentDescriptor: "",
			Lyrics:            track.Lyrics,
		})
	}
	if release.Comments != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    "eng",
			Description: "",
			Text:        release.Comments,
		})
	}
}

func writeArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})
}
