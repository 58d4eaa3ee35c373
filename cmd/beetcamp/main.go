package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/snejus/beetcamp-sub000/internal/audio"
	"github.com/snejus/beetcamp-sub000/internal/bandcamp"
	"github.com/snejus/beetcamp-sub000/internal/config"
	"github.com/snejus/beetcamp-sub000/internal/fetch"
)

func main() {
	var (
		urlFlag     = flag.String("url", "", "Bandcamp URL to fetch (album, track, artist or label page)")
		queryFlag   = flag.String("query", "", "Search Bandcamp instead of fetching a URL")
		tracksFlag  = flag.Bool("tracks", false, "With -query, search tracks only")
		tagFlag     = flag.String("tag", "", "Directory of MP3 files to tag with the fetched release")
		mediaFlag   = flag.String("media", "", "With -tag, pick the record of this media format")
		configFlag  = flag.String("config", "", "Path to config file")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if *urlFlag == "" && *queryFlag == "" && flag.NArg() == 0 {
		fmt.Println("beetcamp - Bandcamp release metadata")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  beetcamp -url <URL> [-tag <dir>] [options]")
		fmt.Println("  beetcamp -query <terms> [options]")
		fmt.Println("  beetcamp <URL> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: beetcamp-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fatalf("Error loading config: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	fetcher, err := fetch.New(settings, func(event fetch.ProgressEvent) {
		if event.Level == fetch.LevelVerbose && !*verboseFlag {
			return
		}
		prefix := "   "
		switch event.Level {
		case fetch.LevelError:
			prefix = " E "
		case fetch.LevelWarning:
			prefix = " W "
		case fetch.LevelSuccess:
			prefix = " + "
		case fetch.LevelInfo:
			prefix = " > "
		}
		fmt.Fprintln(os.Stderr, prefix+event.Message)
	})
	if err != nil {
		fatalf("Error: %v", err)
	}

	if *queryFlag != "" {
		itemType := ""
		if *tracksFlag {
			itemType = "t"
		}
		results, err := fetcher.Search(ctx, bandcamp.SearchQuery{Name: *queryFlag}, itemType)
		if err != nil {
			fatalf("Error searching: %v", err)
		}
		printJSON(results)
		return
	}

	inputURL := *urlFlag
	if inputURL == "" {
		inputURL = flag.Arg(0)
	}

	urls, err := fetcher.ExpandURL(ctx, inputURL)
	if err != nil {
		fatalf("Error resolving %s: %v", inputURL, err)
	}

	results, err := fetcher.Releases(ctx, urls)
	if err != nil {
		if ctx.Err() != nil {
			os.Exit(130)
		}
		fatalf("Error fetching: %v", err)
	}
	if len(results) == 0 {
		fatalf("No releases could be fetched from %s", inputURL)
	}

	if *tagFlag != "" {
		tagDirectory(ctx, fetcher, settings, results[0], *tagFlag, *mediaFlag)
		return
	}

	for _, result := range results {
		printJSON(result.Records)
	}
}

// tagDirectory writes the first fetched release into the MP3 files of
// dir, picking the record of the requested media format when given.
func tagDirectory(ctx context.Context, fetcher *fetch.Fetcher, settings *config.Settings, result *fetch.Result, dir, media string) {
	records := result.Records
	record := &records[0]
	if media != "" {
		found := false
		for i := range records {
			if strings.EqualFold(records[i].Media, media) {
				record = &records[i]
				found = true
				break
			}
		}
		if !found {
			fatalf("No %q record for %s", media, result.URL)
		}
	}

	tagger := audio.NewTagger(settings)

	var artwork []byte
	if settings.SaveCoverArtInTags && result.ArtworkURL != "" {
		raw, err := fetcher.Artwork(ctx, result.ArtworkURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, " W Error fetching artwork: %v\n", err)
		} else {
			artwork = tagger.PrepareArtwork(raw)
		}
	}

	if err := tagger.TagDirectory(dir, record, artwork); err != nil {
		fatalf("Error tagging %s: %v", dir, err)
	}
	fmt.Printf("Tagged %d tracks in %s\n", len(record.Tracks), dir)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("Error encoding output: %v", err)
	}
	fmt.Println(string(data))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
