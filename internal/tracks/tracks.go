package tracks

import (
	"regexp"
	"strings"

	"github.com/snejus/beetcamp-sub000/internal/model"
	"github.com/snejus/beetcamp-sub000/internal/patterns"
)

// artistAltPat matches a side marker at the start of an artist field.
var artistAltPat = regexp.MustCompile(`^([A-J]{1,2}\d?)\b[. -]*`)

// discByLetter maps a vinyl side letter to its disc number.
var discByLetter = map[byte]int{
	'A': 1, 'B': 1,
	'C': 2, 'D': 2,
	'E': 3, 'F': 3,
	'G': 4, 'H': 4,
	'I': 5, 'J': 5,
}

// Tracks is the parsed tracklist of one release.
type Tracks struct {
	List  []*Track
	Names *Names
}

// FromNames parses every resolved track name and runs the release-wide
// fixes that need the whole tracklist.
func FromNames(n *Names) *Tracks {
	items := make([]Item, len(n.Items))
	copy(items, n.Items)
	for i := range items {
		if i < len(n.Titles) {
			items[i].Name = n.Titles[i]
		}
	}

	// when every title repeats the album name, the declared album artist
	// is reliable enough to assign to each track
	albumArtist := n.AlbumArtist
	if len(items) > 1 &&
		strings.Contains(commonPrefix(n.Titles), n.OriginalAlbum) &&
		albumArtist != n.Label &&
		!strings.Contains(albumArtist, ",") {
		for i := range items {
			items[i].AlbumArtist = albumArtist
		}
	}

	list := make([]*Track, len(items))
	for i, item := range items {
		list[i] = MakeTrack(item)
	}

	t := &Tracks{List: list, Names: n}
	t.handleWildTrackAlt()
	t.fixTitleSplit()
	return t
}

// Len returns the number of tracks.
func (t *Tracks) Len() int { return len(t.List) }

// First returns the first track.
func (t *Tracks) First() *Track { return t.List[0] }

func (t *Tracks) withoutArtist() []*Track {
	var out []*Track
	for _, tr := range t.List {
		if tr.Artist == "" {
			out = append(out, tr)
		}
	}
	return out
}

// RawNames returns the parsed name of every track.
func (t *Tracks) RawNames() []string {
	names := make([]string, len(t.List))
	for i, tr := range t.List {
		names[i] = tr.Name
	}
	return names
}

// OriginalArtists returns all unique unsplit main track artists.
func (t *Tracks) OriginalArtists() []string {
	var out []string
	seen := make(map[string]bool)
	for _, tr := range t.List {
		if !seen[tr.Artist] {
			seen[tr.Artist] = true
			out = append(out, tr.Artist)
		}
	}
	return out
}

// Artists returns all unique split main track artists.
func (t *Tracks) Artists() []string {
	var out []string
	seen := make(map[string]bool)
	for _, tr := range t.List {
		for _, a := range tr.Artists() {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out
}

// LeadArtists returns the first artist of every collaboration, keeping a
// collaboration intact when its members never appear on their own.
func (t *Tracks) LeadArtists() []string {
	var leads []string
	seen := make(map[string]bool)
	for _, tr := range t.List {
		if a := tr.LeadArtist(); !seen[a] {
			seen[a] = true
			leads = append(leads, a)
		}
	}

	unique := make(map[string]bool)
	for _, a := range t.Artists() {
		unique[a] = true
	}
	if len(unique) == 0 {
		return nil
	}

	out := make([]string, len(leads))
	for i, a := range leads {
		if unique[a] {
			out[i] = a
			continue
		}
		var collabs []string
		for u := range unique {
			if strings.Contains(u, a) {
				collabs = append(collabs, u)
			}
		}
		if len(collabs) == 1 {
			out[i] = collabs[0]
		} else {
			out[i] = a
		}
	}
	return out
}

// Collaborators returns all unique remix and featuring artists.
func (t *Tracks) Collaborators() map[string]bool {
	artists := t.Artists()
	out := make(map[string]bool)
	for _, tr := range t.List {
		if tr.Remix == nil {
			continue
		}
		r := tr.Remix.Artist()
		if r == "" {
			continue
		}
		foreign := true
		for _, a := range artists {
			if strings.Contains(r, a) {
				foreign = false
				break
			}
		}
		if foreign {
			out[r] = true
		}
	}
	for _, tr := range t.List {
		if tr.Ft != "" {
			out[tr.Ft] = true
		}
	}
	return out
}

// ArtistsAndTitles returns every parsed name, collaborator and original
// artist, used as the catalogue-number exclusion set.
func (t *Tracks) ArtistsAndTitles() []string {
	var out []string
	out = append(out, t.RawNames()...)
	for c := range t.Collaborators() {
		out = append(out, c)
	}
	out = append(out, t.OriginalArtists()...)
	return out
}

// DiscardCollaborators drops artists that only ever appear as remixers
// or featuring artists.
func (t *Tracks) DiscardCollaborators(artists []string) []string {
	var all []string
	for c := range t.Collaborators() {
		all = append(all, c)
	}
	collaborators := strings.ToLower(strings.Join(all, " "))

	var out []string
	for _, a := range artists {
		for _, sa := range strings.Split(strings.ToLower(a), " & ") {
			if !strings.Contains(collaborators, sa) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// fixTitleSplit restores artists that the remix handling wiped out, and
// moves a lone title-derived artist back into the title when the JSON
// data disagrees with it.
func (t *Tracks) fixTitleSplit() {
	if missing := t.withoutArtist(); len(missing) >= 1 && len(missing)*2 < t.Len() {
		for _, tr := range missing {
			if tr.Remix == nil {
				continue
			}
			if split := tr.NameSplit(); len(split) > 1 {
				tr.Artist = strings.Join(split[:len(split)-1], " - ")
			} else {
				tr.Artist = tr.JSONArtist
			}
		}
	}

	var suspects []*Track
	for _, tr := range t.List {
		remixer := ""
		if tr.Remix != nil {
			remixer = tr.Remix.Remixer
		}
		if tr.Artist != "" &&
			!strings.Contains(tr.JSONArtist, ",") &&
			commonPrefix([]string{tr.JSONArtist, tr.Artist}) == "" &&
			commonPrefix([]string{tr.JSONArtist, remixer}) == "" &&
			!strings.Contains(strings.ToLower(tr.Name), strings.ToLower(tr.JSONArtist)) {
			suspects = append(suspects, tr)
		}
	}
	if len(suspects) == 1 && t.Len() > 2 {
		tr := suspects[0]
		tr.Title = tr.Artist + " - " + tr.Title
		tr.Artist = tr.JSONArtist
	}
}

// handleWildTrackAlt reinterprets a single repeated side marker: it is
// either an artist named like one, or plain title text.
func (t *Tracks) handleWildTrackAlt() {
	unique := make(map[string]bool)
	var marked []*Track
	for _, tr := range t.List {
		if tr.TrackAlt != "" {
			unique[tr.TrackAlt] = true
			marked = append(marked, tr)
		}
	}
	if len(unique) != 1 || t.Len() < 2 {
		return
	}

	sameOnAll := len(marked) == t.Len()
	parsedAnyArtists := false
	for _, tr := range t.List {
		if tr.Artist != "" {
			parsedAnyArtists = true
			break
		}
	}
	maySetArtist := parsedAnyArtists || sameOnAll

	var alt string
	for a := range unique {
		alt = a
	}
	for _, tr := range marked {
		if tr.Artist == "" && maySetArtist {
			tr.Artist = alt
		} else {
			tr.Title = tr.Item.Name
		}
		tr.TrackAlt = ""
	}
}

// recoverTrackAlt handles the release that uses side markers on every
// track except one: the odd track had its marker parsed into the artist
// field, so the marker is lifted back out of it.
func (t *Tracks) recoverTrackAlt() {
	if t.Len() < 2 {
		return
	}
	var bare []*Track
	for _, tr := range t.List {
		if tr.TrackAlt == "" {
			bare = append(bare, tr)
		}
	}
	if len(bare) != 1 {
		return
	}

	tr := bare[0]
	m := artistAltPat.FindStringSubmatch(tr.Artist)
	if m == nil {
		return
	}
	// a bare letter pair like "DJ" only counts when it is the entire
	// artist field
	if m[0] != tr.Artist && !strings.ContainsAny(m[1], "0123456789") {
		return
	}
	tr.TrackAlt = strings.ToUpper(m[1])
	tr.Artist = strings.TrimSpace(tr.Artist[len(m[0]):])
}

// FixTrackArtists adjusts track artists in the context of the album:
// a lone track missing its side marker gets it back from the artist
// field, spurious title-derived artists move back into the title,
// missing ones are recovered from unspaced delimiters, and the rest
// default to the album artist.
func (t *Tracks) FixTrackArtists(albumartist string) {
	t.recoverTrackAlt()

	for _, tr := range t.List {
		// 'the' is never an artist, it is the start of the title
		if strings.EqualFold(tr.Artist, "the") {
			tr.Title = tr.Artist + " " + tr.Title
			tr.Artist = ""
		}
	}

	missing := t.withoutArtist()
	if len(missing) == 0 {
		return
	}

	if withArtist := t.Len() - len(missing); withArtist >= 1 && withArtist < 4 {
		aartist := strings.ToLower(albumartist)
		for _, tr := range t.List {
			artist := strings.ToLower(tr.Artist)
			if artist == "" || tr.JSONArtist != "" || strings.Contains(aartist, artist) {
				continue
			}
			if strings.Contains(artist+strings.ToLower(tr.FtArtist)+strings.ToLower(tr.Title), aartist) {
				continue
			}
			tr.Title = tr.Artist + " - " + tr.Title
			tr.Artist = ""
		}
	}

	if missing = t.withoutArtist(); len(missing) >= 1 && len(missing)*2 < t.Len() {
		for _, tr := range missing {
			split := strings.SplitN(tr.Title, "-", 2)
			if len(split) < 2 {
				if loc := patterns.SeparatorPat.FindStringSubmatchIndex(tr.Title); loc != nil {
					split = []string{tr.Title[:loc[0]], tr.Title[loc[1]:]}
				}
			}
			if len(split) > 1 {
				tr.Artist = strings.TrimSpace(split[0])
				tr.Title = strings.TrimSpace(split[1])
			}
		}
	}

	for _, tr := range t.withoutArtist() {
		tr.Artist = albumartist
	}
}

// ForMedia returns the track records for one release format. Digital
// only tracks are dropped from physical formats unless configured
// otherwise, and a vinyl format gets sides and mediums assigned from the
// side markers found in the comments.
func (t *Tracks) ForMedia(media, comments string, includeDigi bool) []model.TrackRecord {
	var kept []*Track
	if !includeDigi && media != model.MediaDigital {
		for _, tr := range t.List {
			if !tr.DigiOnly {
				kept = append(kept, tr)
			}
		}
	} else {
		kept = t.List
	}

	records := make([]model.TrackRecord, len(kept))
	for i, tr := range kept {
		records[i] = tr.Record()
		records[i].MediumTotal = len(kept)
	}
	if len(records) == 1 || media != model.MediaVinyl {
		return records
	}

	trackAlts := patterns.FindAllTrackAlts(comments)
	if len(trackAlts) != len(records) {
		return records
	}

	mediums := make([]int, len(trackAlts))
	totalByMedium := make(map[int]int)
	for i, alt := range trackAlts {
		mediums[i] = discByLetter[alt[0]]
		totalByMedium[mediums[i]]++
	}
	indexByMedium := make(map[int]int)
	for i := range records {
		medium := mediums[i]
		indexByMedium[medium]++
		records[i].TrackAlt = trackAlts[i]
		records[i].Medium = medium
		records[i].MediumTotal = totalByMedium[medium]
		records[i].MediumIndex = indexByMedium[medium]
	}
	return records
}
