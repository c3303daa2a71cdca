// Package rod retrieves rendered FBref pages using Chrome browser automation.
// FBref sits behind Cloudflare, so a real browser is required; a plain HTTP
// client gets a challenge page.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	fbref "github.com/raghavtripped/fbref-dashboard"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements fbref.Fetcher at compile time.
var _ fbref.Fetcher = (*Fetcher)(nil)

// userAgent replaces rod's default, which advertises HeadlessChrome.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	fetchTimeout time.Duration
	closed       atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets a per-fetch deadline. Zero means no deadline beyond
// the caller's context.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// NewFetcher creates a new Fetcher backed by a managed Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	return NewFetcherWithManager(nil, opts...)
}

// NewFetcherWithManager creates a Fetcher using the given BrowserManager,
// launching a default one when manager is nil. The Fetcher owns the manager
// either way and closes it on Close.
func NewFetcherWithManager(manager *BrowserManager, opts ...Option) (*Fetcher, error) {
	if manager == nil {
		var err error
		manager, err = NewBrowserManager()
		if err != nil {
			return nil, err
		}
	}

	f := &Fetcher{manager: manager}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", fbref.Errorf(fbref.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.fetchTimeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: userAgent}); err != nil {
		return "", err
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// FBref hides most stat tables inside HTML comments and reveals them
	// with JavaScript after load. A short settle wait lets that happen.
	waitIdle(page, 2*time.Second)

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// waitIdle waits for network quiet, giving up after the timeout. A page with
// long-polling analytics would otherwise block forever.
func waitIdle(page *rod.Page, timeout time.Duration) {
	wait := page.Timeout(timeout).WaitRequestIdle(300*time.Millisecond, nil, nil, nil)
	wait()
}

// LauncherPID returns the PID of the browser launcher process.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}
