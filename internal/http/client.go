// Package http wraps the HTTP plumbing shared by the fetcher: a
// Bandcamp-friendly user agent, a sane timeout and the configured proxy.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/snejus/beetcamp-sub000/internal/config"
)

// Client performs the page and artwork requests.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient builds a client from the proxy settings. ProxyType "none"
// disables proxying, "system" follows the HTTP_PROXY environment and
// "manual" uses the configured address and port.
func NewClient(settings *config.Settings) (*Client, error) {
	transport := &http.Transport{}
	switch settings.ProxyType {
	case "", "none":
	case "system":
		transport.Proxy = http.ProxyFromEnvironment
	case "manual":
		proxyURL, err := url.Parse(fmt.Sprintf("http://%s:%d", settings.ProxyAddress, settings.ProxyPort))
		if err != nil {
			return nil, fmt.Errorf("parse proxy address: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	default:
		return nil, fmt.Errorf("unknown proxy type %q", settings.ProxyType)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   60 * time.Second,
			Transport: transport,
		},
		userAgent: "beetcamp",
	}, nil
}

// Get performs a GET request and returns the response body. Responses
// other than 200 OK are errors.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the body as a string,
// for HTML pages.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
