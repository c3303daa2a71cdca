// Package http provides an HTTP-based implementation of fbref.Fetcher. It is
// a fallback for environments without Chrome: FBref's bot protection usually
// requires a real browser, but archived pages and mirror hosts serve plain
// HTML.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// userAgent mimics a desktop browser. FBref rejects default Go client UAs
// outright.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements fbref.Fetcher at compile time.
var _ fbref.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs using plain HTTP requests. It does not
// execute JavaScript, so comment-wrapped stat tables arrive still inside
// their comment markers; the extraction layer handles that.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Blocked and throttled
// responses are reported with the matching error code so callers can tell a
// bot wall from a missing page.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return "", fbref.Errorf(fbref.EBLOCKED, "HTTP 403 for %s", url)
	case http.StatusTooManyRequests:
		return "", fbref.Errorf(fbref.ERATELIMITED, "HTTP 429 for %s", url)
	case http.StatusNotFound:
		return "", fbref.Errorf(fbref.ENOTFOUND, "HTTP 404 for %s", url)
	default:
		return "", fbref.Errorf(fbref.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
