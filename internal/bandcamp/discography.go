package bandcamp

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// ErrNoReleases is returned when a page carries no album or track links.
var ErrNoReleases = errors.New("no releases found on page")

// releaseLinkPat matches relative release links on a music listing page.
// Links appear both in plain hrefs and in HTML-escaped JSON blobs.
var releaseLinkPat = regexp.MustCompile(`(/(?:album|track)/[^"&<]+)(?:"|&quot;)`)

var singleAlbumLinkPat = regexp.MustCompile(`href="(/album/[^"]+)"`)

// ReleaseURLs extracts the relative release URLs from a music listing
// page, like /album/my-album or /track/my-track. Callers join them with
// the artist's base URL.
//
// An artist with a single release has no listing page. Bandcamp serves
// the release page itself instead, recognizable by its discography div,
// in which case the single album link is returned.
func ReleaseURLs(html string) ([]string, error) {
	if strings.Contains(html, `div id="discography"`) {
		return singleReleaseURL(html)
	}

	matches := releaseLinkPat.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return nil, ErrNoReleases
	}

	seen := make(map[string]bool, len(matches))
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			urls = append(urls, m[1])
		}
	}
	sort.Strings(urls)
	return urls, nil
}

func singleReleaseURL(html string) ([]string, error) {
	seen := make(map[string]bool)
	var urls []string
	for _, m := range singleAlbumLinkPat.FindAllStringSubmatch(html, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			urls = append(urls, m[1])
		}
	}
	switch len(urls) {
	case 0:
		return nil, ErrNoReleases
	case 1:
		return urls, nil
	default:
		return nil, errors.New("expected a single album link on a redirected page")
	}
}
