// Package metadata assembles normalized release records from the raw
// Bandcamp release document.
package metadata

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/snejus/beetcamp-sub000/internal/albumname"
	"github.com/snejus/beetcamp-sub000/internal/bandcamp/dto"
	"github.com/snejus/beetcamp-sub000/internal/catalognum"
	"github.com/snejus/beetcamp-sub000/internal/config"
	"github.com/snejus/beetcamp-sub000/internal/model"
	"github.com/snejus/beetcamp-sub000/internal/patterns"
	"github.com/snejus/beetcamp-sub000/internal/tracks"
)

// VAArtistCount is the number of distinct lead artists at which a release
// is treated as a various-artists compilation.
const VAArtistCount = 4

const usbTypeID = 5

var (
	labelInDescPat   = regexp.MustCompile(`Label: *([^\s/,\n][^/,\n]*)`)
	artistInDescPat  = regexp.MustCompile(`Artists?: *(\w[^\n]*)`)
	remixInArtistPat = regexp.MustCompile(`(?i)[(,+]+.+?re?mi?x`)
	nonAlphanumPat   = regexp.MustCompile(`\W`)
)

// Metaguru aggregates everything parsed out of one release into the
// final records: tracklist, album name, artists, types, genres and the
// per-format albums.
type Metaguru struct {
	release *dto.Release
	meta    *dto.Release
	cfg     *config.Settings

	// MediaFormats are the retained release formats, one album record
	// each.
	MediaFormats []model.MediaFormat

	media model.MediaFormat

	names         *tracks.Names
	tracklist     *tracks.Tracks
	catnums       *catalognum.Resolver
	albumResolver *albumname.Resolver

	allMediaComments string

	singleton    bool
	fixedArtists bool

	albumNameCached   string
	albumNameResolved bool
	albumartistCached string
	albumartistDone   bool
	prelimCached      string
	prelimDone        bool
}

// New builds a Metaguru from the parsed release document.
func New(release *dto.Release, cfg *config.Settings) *Metaguru {
	if cfg == nil {
		cfg = config.DefaultSettings()
	}
	m := &Metaguru{
		release: release,
		meta:    release.Meta(),
		cfg:     cfg,
	}
	m.MediaFormats = mediaFormats(m.meta.AlbumRelease)
	orderByPreference(m.MediaFormats, cfg.PreferredMedia)
	if len(m.MediaFormats) > 0 {
		m.media = m.MediaFormats[0]
	}
	m.allMediaComments = m.onlyMediaComments() + "\n" + m.commentsFor(m.media)

	m.names = &tracks.Names{
		AlbumArtist:   m.originalAlbumartist(),
		Label:         release.Label(),
		OriginalAlbum: release.Name,
		Singleton:     release.IsTrackPage(),
		Items:         m.trackItems(),
	}
	m.names.Resolve()
	m.tracklist = tracks.FromNames(m.names)

	excluded := append(m.tracklist.ArtistsAndTitles(), m.originalAlbumartist())
	m.catnums = catalognum.New(
		strings.ReplaceAll(m.description()+"\n"+m.credits(), "\r", ""),
		m.names.OriginalAlbum,
		m.names.Label,
		excluded,
	)
	m.albumResolver = albumname.New(m.names.OriginalAlbum, m.allMediaComments, m.names.AlbumInTitles)

	return m
}

// mediaFormats filters the albumRelease entries down to actual release
// formats, dropping discographies, subscriptions and merch bundles.
func mediaFormats(formats []dto.Format) []model.MediaFormat {
	var out []model.MediaFormat
	for i := range formats {
		f := &formats[i]
		name, itemType := f.StringProp("name"), f.StringProp("item_type")
		if f.Name != "" && name == "" {
			name = f.Name
		}
		if name == "" || itemType == "" {
			continue
		}
		if itemType == "b" || itemType == "i" {
			continue
		}
		typeID, hasTypeID := f.IntProp("type_id")
		if f.MusicReleaseFormat == "" && !(hasTypeID && typeID == usbTypeID) {
			continue
		}
		if itemType == "p" && strings.Contains(strings.ToLower(name), "bundle") {
			continue
		}

		format := f.MusicReleaseFormat
		if format == "" {
			format = "DigitalFormat"
		}
		mf := model.MediaFormat{ID: f.ID, Name: model.FormatToMedia[format]}
		if format != "DigitalFormat" {
			mf.DiscTitle = f.Name
			mf.Description = f.Description
		}
		out = append(out, mf)
	}
	return out
}

// orderByPreference sorts the release formats by the configured media
// preference list. Formats not listed keep their page order after the
// listed ones.
func orderByPreference(formats []model.MediaFormat, preferred []string) {
	rank := func(media string) int {
		for i, name := range preferred {
			if strings.EqualFold(name, media) {
				return i
			}
		}
		return len(preferred)
	}
	sort.SliceStable(formats, func(i, j int) bool {
		return rank(formats[i].Name) < rank(formats[j].Name)
	})
}

// trackItems lifts the raw per-track data out of the document. A track
// page yields a single item built from the page itself.
func (m *Metaguru) trackItems() []tracks.Item {
	r := m.release
	if r.IsTrackPage() {
		return []tracks.Item{{
			ID:     r.ID,
			Name:   r.Name,
			Artist: m.originalAlbumartist(),
			Length: dto.DurationSeconds(r.Duration),
			Lyrics: r.RecordingOf.LyricsText(),
		}}
	}

	var items []tracks.Item
	for _, li := range r.Track.ItemListElement {
		if li.Item == nil {
			continue
		}
		item := tracks.Item{
			ID:       li.Item.ID,
			Name:     li.Item.Name,
			Position: li.Position,
			Length:   dto.DurationSeconds(li.Item.Duration),
			Lyrics:   li.Item.RecordingOf.LyricsText(),
		}
		if li.Item.ByArtist != nil {
			item.Artist = li.Item.ByArtist.Name
		}
		items = append(items, item)
	}
	return items
}

func (m *Metaguru) description() string { return m.release.Description }
func (m *Metaguru) credits() string     { return m.release.CreditText }

// commentsFor concatenates the release description, the format
// description (unless it repeats the former) and the credits.
func (m *Metaguru) commentsFor(media model.MediaFormat) string {
	parts := []string{m.description()}

	squash := func(s string) string {
		return nonAlphanumPat.ReplaceAllString(strings.ToLower(s), "")
	}
	if squash(media.Description) != squash(m.description()) {
		parts = append(parts, media.Description)
	}
	parts = append(parts, m.credits())

	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ReplaceAll(strings.Join(kept, m.cfg.CommentsSeparator), "\r", "")
}

// disctitles joins the disc titles of every format.
func (m *Metaguru) disctitles() string {
	var titles []string
	for _, f := range m.MediaFormats {
		if f.DiscTitle != "" {
			titles = append(titles, f.DiscTitle)
		}
	}
	return strings.Join(titles, " ")
}

func (m *Metaguru) onlyMediaComments() string {
	parts := []string{m.disctitles()}
	for _, f := range m.MediaFormats {
		parts = append(parts, f.Description)
	}
	return strings.Join(parts, "\n")
}

// Label returns the release label, preferring an explicit "Label: X"
// line in the comments over the publisher name.
func (m *Metaguru) Label() string {
	if match := labelInDescPat.FindStringSubmatch(m.allMediaComments); match != nil {
		return strings.Trim(strings.TrimSpace(match[1]), ` '"`)
	}
	return m.names.Label
}

// originalAlbumartist returns the declared album artist: an explicit
// "Artist: X" comment line wins over the document byArtist. A trailing
// remix clause and " // " joiners are normalized away.
func (m *Metaguru) originalAlbumartist() string {
	var aartist string
	if match := artistInDescPat.FindStringSubmatch(m.allMediaComments); match != nil {
		aartist = strings.TrimSpace(match[1])
	} else if m.release.ByArtist != nil {
		aartist = m.release.ByArtist.Name
	}

	parts := strings.Split(aartist, " // ")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	aartist = strings.Join(parts, ", ")

	if loc := remixInArtistPat.FindStringIndex(aartist); loc != nil {
		aartist = aartist[:loc[0]]
	}
	return strings.TrimSpace(aartist)
}

// AlbumID returns the canonical URL of the release.
func (m *Metaguru) AlbumID() string { return m.release.ID }

// ArtistID returns the canonical URL of the artist or publisher.
func (m *Metaguru) ArtistID() string { return m.release.ArtistID() }

// ReleaseDate returns the published (or modified) date.
func (m *Metaguru) ReleaseDate() (time.Time, bool) {
	if t, ok := dto.ParseDate(m.release.DatePublished); ok {
		return t, true
	}
	return dto.ParseDate(m.release.DateModified)
}

// AlbumStatus reports Official for released albums and Promotional for
// future release dates.
func (m *Metaguru) AlbumStatus() string {
	if date, ok := m.ReleaseDate(); ok && !date.After(time.Now().UTC()) {
		return model.StatusOfficial
	}
	return model.StatusPromotional
}

// Catalognum resolves the catalogue number in the context of the current
// media format.
func (m *Metaguru) Catalognum() string {
	if cat := m.names.Catalognum(); cat != "" {
		return cat
	}
	return m.catnums.Find(m.media.DiscTitle + "\n" + m.media.Description)
}

// Country resolves the publisher founding location.
func (m *Metaguru) Country() string {
	if p := m.release.Publisher; p != nil && p.FoundingLocation != nil {
		return Country(p.FoundingLocation.Name)
	}
	return model.Worldwide
}

// Tracks returns the tracklist with the album-level artist fixes applied.
func (m *Metaguru) Tracks() *tracks.Tracks {
	if !m.fixedArtists {
		m.fixedArtists = true
		m.tracklist.FixTrackArtists(m.preliminaryAlbumartist())
	}
	return m.tracklist
}

// preliminaryAlbumartist is the album artist candidate derived before
// track artists are settled, by elimination: not the label, not a
// collaborator.
func (m *Metaguru) preliminaryAlbumartist() string {
	if m.prelimDone {
		return m.prelimCached
	}
	m.prelimDone = true

	aartist := m.originalAlbumartist()
	if m.Label() != aartist {
		aartist = patterns.CleanName(aartist)
	} else if a := m.albumResolver.FindArtist(m.Catalognum()); a != "" {
		aartist = a
	}

	if aartists := patterns.SplitArtists(aartist, false); len(aartists) > 1 {
		if main := m.tracklist.DiscardCollaborators(aartists); len(main) > 0 && !equalStrings(main, aartists) {
			aartist = strings.Join(main, ", ")
		}
	}

	m.prelimCached = aartist
	return aartist
}

// uniqueArtists returns the split track artists, collapsed to one entry
// when they only differ in case.
func (m *Metaguru) uniqueArtists() []string {
	artists := patterns.SplitArtistsList(m.tracklist.Artists(), false)
	lower := make(map[string]bool)
	for _, a := range artists {
		lower[strings.ToLower(a)] = true
	}
	if len(lower) == 1 && len(artists) > 0 {
		return artists[:1]
	}
	return artists
}

// TrackCount returns the number of parsed tracks.
func (m *Metaguru) TrackCount() int { return m.tracklist.Len() }

// VA reports whether the release has enough lead artists to be treated
// as various artists.
func (m *Metaguru) VA() bool {
	return len(m.Tracks().LeadArtists()) >= VAArtistCount
}

// Albumartist elects the album artist from the declared one and the
// track artists.
func (m *Metaguru) Albumartist() string {
	if m.albumartistDone {
		return m.albumartistCached
	}
	m.albumartistDone = true
	m.albumartistCached = m.electAlbumartist()
	return m.albumartistCached
}

func (m *Metaguru) electAlbumartist() string {
	if m.TrackCount() == 1 {
		return patterns.RemoveFeaturing(m.Tracks().First().Artist)
	}
	if m.VA() {
		return m.cfg.VAName
	}

	aartist := m.preliminaryAlbumartist()
	unique := m.uniqueArtists()
	if aartist != "" && subset(patterns.SplitArtists(aartist, false), unique) {
		if strings.Contains(strings.ToLower(aartist), "remix") {
			return patterns.RemoveFeaturing(aartist)
		}
		return aartist
	}
	if originals := m.Tracks().OriginalArtists(); len(originals) == 1 {
		return originals[0]
	}

	leads := m.Tracks().LeadArtists()
	aartists := normalizeArtists(patterns.SplitArtists(aartist, true))
	leadSet := normalizeArtists(leads)
	uniqueSet := normalizeArtists(unique)

	all := make(map[string]bool)
	for _, a := range append(append([]string{}, leadSet...), uniqueSet...) {
		all[a] = true
	}
	if len(leads) == 0 ||
		(len(aartists) == 1 && all[aartists[0]]) ||
		equalStrings(aartists, leadSet) || equalStrings(aartists, uniqueSet) {
		return aartist
	}

	sorted := append([]string{}, leads...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// AlbumName resolves the final album name. The result is computed once,
// in the context of the first media format.
func (m *Metaguru) AlbumName() string {
	if m.albumNameResolved {
		return m.albumNameCached
	}
	m.albumNameResolved = true

	var artists []string
	if a := m.originalAlbumartist(); a != m.Label() {
		artists = append(artists, a)
	}
	artists = append(artists, m.Tracks().OriginalArtists()...)

	m.albumNameCached = m.albumResolver.Resolve(
		m.Catalognum(), artists, m.Tracks().Artists(), m.Label())
	return m.albumNameCached
}

// searchAlbumtype reports whether the release text refers to itself as
// the given kind of release. word is a pattern: "lp", "e\.?p" or
// "compilation".
func (m *Metaguru) searchAlbumtype(word string) bool {
	text := strings.Join(strings.Split(m.allMediaComments, "\n"), " ")
	albumName := strings.ToLower(m.AlbumName())

	inCatnum := regexp.MustCompile(`(?i)` + word + `\d`)
	wordPat := regexp.MustCompile(`(?i)\b` + word + `(?:\b|\.)`)
	releaseRef := regexp.MustCompile(
		`(?i)\b(?:(?:this|with|present|deliver|new)[\w\s,'-]*?|the|track|full|first) ` + word + `\b`)
	mediaWordPat := regexp.MustCompile(`(?i)(?:vinyl |x|[0-5])` + word + `\b`)

	if mediaWordPat.MatchString(m.onlyMediaComments()) ||
		inCatnum.MatchString(m.Catalognum()) ||
		searchNoDashBefore(wordPat, albumName+" "+m.disctitles()) ||
		inCatnum.MatchString(text) {
		return true
	}
	for _, s := range strings.Split(strings.ToLower(text), ". ") {
		s = strings.TrimSpace(s)
		if releaseRef.MatchString(s) {
			return true
		}
		if searchNoDashBefore(wordPat, s) && albumName != "" && strings.Contains(s, albumName) {
			return true
		}
	}
	return false
}

// searchNoDashBefore matches pat in text, skipping matches directly
// preceded by a dash ("hip-hop" does not mention an LP named "hop").
func searchNoDashBefore(pat *regexp.Regexp, text string) bool {
	for _, loc := range pat.FindAllStringIndex(text, -1) {
		if loc[0] == 0 || text[loc[0]-1] != '-' {
			return true
		}
	}
	return false
}

// IsSingleton reports whether a single-track record is being assembled.
func (m *Metaguru) IsSingleton() bool {
	return m.singleton || m.TrackCount() == 1
}

// IsSingleAlbum reports whether every track is a variant of one title.
func (m *Metaguru) IsSingleAlbum() bool {
	if m.TrackCount() < 2 {
		return false
	}
	titles := make(map[string]bool)
	for _, t := range m.Tracks().List {
		titles[t.TitleWithoutRemix()] = true
	}
	return len(titles) == 1
}

// IsLP reports whether the release is an LP.
func (m *Metaguru) IsLP() bool { return m.searchAlbumtype("lp") }

// IsEP reports whether the release is an EP.
func (m *Metaguru) IsEP() bool {
	return m.searchAlbumtype(`e\.?p`) ||
		(strings.Contains(m.AlbumName(), " / ") &&
			len(m.Tracks().Artists()) == albumname.SplitReleaseArtistCount)
}

// IsComp reports whether the release is a compilation.
func (m *Metaguru) IsComp() bool {
	return m.albumResolver.MentionsCompilation() ||
		m.searchAlbumtype("compilation") ||
		(len(m.Tracks().LeadArtists()) >= VAArtistCount && m.TrackCount() > VAArtistCount)
}

// AlbumType returns the primary album type.
func (m *Metaguru) AlbumType() string {
	switch {
	case m.IsSingleton():
		return model.TypeSingle
	case m.IsLP():
		return model.TypeAlbum
	case m.IsEP():
		return model.TypeEP
	case m.IsSingleAlbum():
		return model.TypeSingle
	case m.IsComp():
		return model.TypeCompilation
	default:
		return model.TypeAlbum
	}
}

// AlbumTypes returns every applicable album type tag, sorted.
func (m *Metaguru) AlbumTypes() []string {
	albumtype := m.AlbumType()
	types := map[string]bool{albumtype: true}

	if m.IsComp() {
		if albumtype == model.TypeEP {
			types[model.TypeCompilation] = true
		} else {
			types[model.TypeAlbum] = true
		}
	}
	if !m.IsSingleton() && m.IsLP() {
		types["lp"] = true
	}
	if m.IsSingleAlbum() {
		types[model.TypeSingle] = true
	}
	if albumtype == model.TypeSingle && m.TrackCount() > 1 {
		types[model.TypeAlbum] = true
	}

	album := strings.ToLower(m.names.OriginalAlbum)
	for _, word := range []string{"remix", "rmx", "edits", "live", "soundtrack"} {
		if strings.Contains(album, word) {
			switch word {
			case "rmx", "edits":
				types["remix"] = true
			default:
				types[word] = true
			}
		}
	}

	validRemixes := 0
	for _, t := range m.tracklist.List {
		if t.Remix != nil && t.Remix.Valid() {
			validRemixes++
		}
	}
	if validRemixes >= 1 && validRemixes >= m.TrackCount()-1 {
		types["remix"] = true
	}

	out := make([]string, 0, len(types))
	for t := range types {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Style extracts the Bandcamp genre tag of the publisher, taken from a
// "https://bandcamp.com/tag/folk" style URL.
func (m *Metaguru) Style() string {
	if m.release.Publisher == nil {
		return ""
	}
	tagURL := m.release.Publisher.Genre
	if tagURL == "" {
		return ""
	}
	style := tagURL[strings.LastIndex(tagURL, "/")+1:]
	if m.cfg.Genre.Capitalize {
		style = capitalize(style)
	}
	return style
}

// Genre filters the release keywords into genres.
func (m *Metaguru) Genre() []string {
	style := strings.ToLower(m.Style())
	var keywords []string
	for _, kw := range m.release.Keywords {
		kw = strings.ToLower(kw)
		if style != "" && kw == style {
			continue
		}
		keywords = append(keywords, kw)
	}

	out := Genres(keywords, m.cfg.Genre, m.Label())
	if m.cfg.Genre.Capitalize {
		for i, g := range out {
			out[i] = capitalize(g)
		}
	}
	sort.Strings(out)
	if max := m.cfg.Genre.Maximum; max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// releaseRecord assembles the album record for one media format.
func (m *Metaguru) releaseRecord(media model.MediaFormat) model.ReleaseRecord {
	m.media = media

	cat := m.Catalognum()
	trackRecs := m.Tracks().ForMedia(media.Name, m.commentsFor(media), m.cfg.IncludeDigitalOnlyTracks)
	for i := range trackRecs {
		// a track-level catalogue number equal to the release's carries
		// no information
		if trackRecs[i].Catalognum == cat {
			trackRecs[i].Catalognum = ""
		}
	}

	mediums := media.MediumCount()
	for _, t := range trackRecs {
		if t.Medium > mediums {
			mediums = t.Medium
		}
	}

	rec := model.ReleaseRecord{
		Album:       m.AlbumName(),
		Artist:      m.Albumartist(),
		AlbumID:     media.ID,
		ArtistID:    m.ArtistID(),
		Label:       m.Label(),
		Catalognum:  cat,
		Country:     m.Country(),
		AlbumType:   m.AlbumType(),
		AlbumTypes:  m.AlbumTypes(),
		AlbumStatus: m.AlbumStatus(),
		VA:          m.VA(),
		Genres:      m.Genre(),
		Style:       m.Style(),
		Media:       media.Name,
		Mediums:     mediums,
		DiscTitle:   media.DiscTitle,
		Comments:    m.commentsFor(media),
		DataSource:  model.DataSource,
		DataURL:     m.AlbumID(),
		Tracks:      trackRecs,
	}
	if date, ok := m.ReleaseDate(); ok {
		rec.Year, rec.Month, rec.Day = date.Year(), int(date.Month()), date.Day()
	}

	rec.ApplyExclusions(m.cfg.Excluded())
	return rec
}

// Albums returns one record per retained media format.
func (m *Metaguru) Albums() []model.ReleaseRecord {
	records := make([]model.ReleaseRecord, 0, len(m.MediaFormats))
	for _, media := range m.MediaFormats {
		records = append(records, m.releaseRecord(media))
	}
	return records
}

// SingletonRecord returns the record of a one-track release. The album
// name is dropped and the track falls back to the catalogue number for a
// title.
func (m *Metaguru) SingletonRecord() model.ReleaseRecord {
	m.singleton = true
	if len(m.MediaFormats) > 0 {
		m.media = m.MediaFormats[0]
	}

	rec := m.releaseRecord(m.media)
	rec.Album = ""
	rec.AlbumID = m.AlbumID()
	if len(rec.Tracks) > 0 {
		rec.Tracks[0].TrackID = m.AlbumID()
		rec.Tracks[0].Medium = 0
		if rec.Tracks[0].Title == "" {
			rec.Tracks[0].Title = m.Catalognum()
		}
	}
	return rec
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// subset reports whether every element of sub appears in super,
// comparing verbatim.
func subset(sub, super []string) bool {
	set := make(map[string]bool, len(super))
	for _, s := range super {
		set[s] = true
	}
	for _, s := range sub {
		if !set[s] {
			return false
		}
	}
	return true
}

// normalizeArtists lowercases, deduplicates and sorts.
func normalizeArtists(artists []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range artists {
		l := strings.ToLower(a)
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
