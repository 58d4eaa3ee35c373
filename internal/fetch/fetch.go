// Package fetch turns Bandcamp URLs and search queries into release
// records, fetching pages concurrently and reporting progress through a
// caller-supplied callback.
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/snejus/beetcamp-sub000/internal/bandcamp"
	"github.com/snejus/beetcamp-sub000/internal/config"
	"github.com/snejus/beetcamp-sub000/internal/http"
	"github.com/snejus/beetcamp-sub000/internal/metadata"
	"github.com/snejus/beetcamp-sub000/internal/model"
)

// ProgressLevel indicates the severity of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent is one progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result pairs the records derived from one release page with the page
// they came from.
type Result struct {
	// URL is the page the records were fetched from.
	URL string

	// ArtworkURL is the cover image of the release, empty when the page
	// carries none.
	ArtworkURL string

	// Records holds one record per retained media format, or the single
	// track record for a track page.
	Records []model.ReleaseRecord
}

// Fetcher fetches and parses release pages.
type Fetcher struct {
	settings   *config.Settings
	client     *http.Client
	onProgress func(ProgressEvent)
}

// New creates a Fetcher. onProgress may be nil.
func New(settings *config.Settings, onProgress func(ProgressEvent)) (*Fetcher, error) {
	client, err := http.NewClient(settings)
	if err != nil {
		return nil, err
	}
	return &Fetcher{
		settings:   settings,
		client:     client,
		onProgress: onProgress,
	}, nil
}

// Release fetches one album or track page and derives its records.
func (f *Fetcher) Release(ctx context.Context, pageURL string) (*Result, error) {
	f.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s", pageURL), Level: LevelVerbose})

	html, err := f.client.GetString(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	release, err := bandcamp.ParseReleasePage(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	guru := metadata.New(release, f.settings)
	var records []model.ReleaseRecord
	if release.IsTrackPage() {
		records = []model.ReleaseRecord{guru.SingletonRecord()}
	} else {
		records = guru.Albums()
	}

	f.progress(ProgressEvent{
		Message: fmt.Sprintf("Parsed %s (%d records)", pageURL, len(records)),
		Level:   LevelInfo,
	})
	return &Result{
		URL:        pageURL,
		ArtworkURL: release.Meta().Image.First(),
		Records:    records,
	}, nil
}

// Releases fetches several pages concurrently, at most the configured
// number in flight. Pages that fail are reported through the progress
// callback and skipped; the context being canceled fails the whole
// batch.
func (f *Fetcher) Releases(ctx context.Context, pageURLs []string) ([]*Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.settings.MaxConcurrentFetches)

	fetched := make([]*Result, len(pageURLs))
	for i, pageURL := range pageURLs {
		g.Go(func() error {
			result, err := f.Release(ctx, pageURL)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				f.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
				return nil
			}
			fetched[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(fetched))
	for _, r := range fetched {
		if r != nil {
			results = append(results, r)
		}
	}
	return results, nil
}

// Search runs a search and returns the results sorted by relevance,
// truncated to the configured maximum. itemType narrows the search the
// way bandcamp.SearchPageURL documents.
func (f *Fetcher) Search(ctx context.Context, query bandcamp.SearchQuery, itemType string) ([]bandcamp.SearchResult, error) {
	var parts []string
	for _, p := range []string{query.Name, query.Artist, query.Label} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	raw := strings.Join(parts, " ")
	if raw == "" {
		return nil, fmt.Errorf("empty search query")
	}

	html, err := f.client.GetString(ctx, bandcamp.SearchPageURL(raw, itemType, 1))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", raw, err)
	}

	results := bandcamp.ParseSearchPage(html, query)
	if limit := f.settings.SearchMax; limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ExpandURL resolves an input URL to release page URLs. Album and track
// URLs pass through unchanged; anything else is treated as an artist or
// label page whose discography is listed on its /music page.
func (f *Fetcher) ExpandURL(ctx context.Context, inputURL string) ([]string, error) {
	parsed, err := url.Parse(inputURL)
	if err != nil {
		return nil, err
	}
	if strings.Contains(parsed.Path, "/album/") || strings.Contains(parsed.Path, "/track/") {
		return []string{inputURL}, nil
	}

	musicURL := fmt.Sprintf("%s://%s/music", parsed.Scheme, parsed.Host)
	html, err := f.client.GetString(ctx, musicURL)
	if err != nil {
		return nil, fmt.Errorf("fetch discography %s: %w", musicURL, err)
	}

	relative, err := bandcamp.ReleaseURLs(html)
	if err != nil {
		return nil, err
	}
	absolute := make([]string, len(relative))
	for i, rel := range relative {
		absolute[i] = fmt.Sprintf("%s://%s%s", parsed.Scheme, parsed.Host, rel)
	}
	f.progress(ProgressEvent{
		Message: fmt.Sprintf("Found %d releases at %s", len(absolute), musicURL),
		Level:   LevelInfo,
	})
	return absolute, nil
}

// Artwork downloads the cover image of a release.
func (f *Fetcher) Artwork(ctx context.Context, artworkURL string) ([]byte, error) {
	return f.client.Get(ctx, artworkURL)
}

func (f *Fetcher) progress(event ProgressEvent) {
	if f.onProgress != nil {
		f.onProgress(event)
	}
}
