package fbref

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content and anti-automation challenges.
type Fetcher interface {
	// Fetch navigates to the URL and returns the page HTML, already decoded
	// to text. No guarantee is made about markup validity.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// PageCache stores fetched HTML keyed by source URL so repeated scrapes can
// skip the network.
type PageCache interface {
	// Get returns the cached HTML for a URL, if present and plausible.
	Get(url string) (html string, ok bool)

	// Put stores HTML for a URL.
	Put(url string, html string) error
}

// MatchSource discovers match report URLs for a competition season.
type MatchSource interface {
	Discover(ctx context.Context, competition, season string) ([]string, error)
}
