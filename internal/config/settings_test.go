package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.VAName != "Various Artists" || settings.SearchMax != 10 {
		t.Errorf("unexpected defaults: %+v", settings)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"va_name": "VA", "search_max": 3}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.VAName != "VA" || settings.SearchMax != 3 {
		t.Errorf("overrides not applied: %+v", settings)
	}
	// fields absent from the file keep their defaults
	if settings.CommentsSeparator != "\n---\n" {
		t.Errorf("CommentsSeparator = %q", settings.CommentsSeparator)
	}
	if settings.Genre.Mode != "progressive" {
		t.Errorf("Genre.Mode = %q", settings.Genre.Mode)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.json")

	settings := DefaultSettings()
	settings.IncludeDigitalOnlyTracks = true
	settings.ExcludeExtraFields = []string{"comments", "lyrics"}
	settings.Genre.Maximum = 4
	settings.ProxyType = "manual"
	settings.ProxyAddress = "127.0.0.1"
	settings.ProxyPort = 8080

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.IncludeDigitalOnlyTracks || loaded.Genre.Maximum != 4 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.ProxyType != "manual" || loaded.ProxyAddress != "127.0.0.1" || loaded.ProxyPort != 8080 {
		t.Errorf("proxy settings lost: %+v", loaded)
	}

	excluded := loaded.Excluded()
	if !excluded["comments"] || !excluded["lyrics"] || excluded["genre"] {
		t.Errorf("Excluded() = %v", excluded)
	}
}
