// Package scrape provides match scraping orchestration. It coordinates
// discovery of match URLs from schedule pages, paced fetching with retry,
// HTML caching, report extraction, and storage.
package scrape

import (
	"context"
	"time"

	fbref "github.com/raghavtripped/fbref-dashboard"
	"github.com/raghavtripped/fbref-dashboard/bloom"
)

// Scraper orchestrates fetching and parsing of match report pages.
type Scraper struct {
	Fetcher fbref.Fetcher
	Parser  fbref.Parser
	Reports fbref.ReportService
	Cache   fbref.PageCache
	Pacer   *Pacer

	// RetryDelays overrides the fetch backoff schedule; nil uses the default.
	RetryDelays []time.Duration

	// Seen skips URLs already processed this run, across repeated Discover
	// calls. Optional.
	Seen *bloom.Filter
}

// Ensure Scraper implements fbref.MatchSource at compile time.
var _ fbref.MatchSource = (*Scraper)(nil)

// Result holds the outcome of a scrape operation.
type Result struct {
	Saved   int
	Failed  int
	Skipped int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Report    *fbref.MatchReport
	Error     error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// Run fetches, parses, and stores every URL in order. Individual page
// failures are counted and reported through the progress callback but do not
// stop the run; only context cancellation aborts it.
func (s *Scraper) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	notify := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	result := &Result{}
	total := len(urls)
	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if s.Seen != nil && s.Seen.Test(url) {
			result.Skipped++
			notify(ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: total, URL: url})
			continue
		}

		report, err := s.scrapeOne(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.Failed++
			notify(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, URL: url, Error: err})
			continue
		}

		if s.Seen != nil {
			s.Seen.Add(url)
		}
		result.Saved++
		notify(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, URL: url, Report: report})
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return result, nil
}

// scrapeOne fetches, parses, and stores a single match page.
func (s *Scraper) scrapeOne(ctx context.Context, url string) (*fbref.MatchReport, error) {
	html, err := s.fetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	report, err := s.Parser.ParseReport(url, html)
	if err != nil {
		return nil, err
	}

	if s.Reports != nil {
		if _, err := s.Reports.SaveReport(ctx, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// fetchPage returns page HTML from the cache when possible, otherwise waits
// out the polite delay and fetches with retry, caching the result.
func (s *Scraper) fetchPage(ctx context.Context, url string) (string, error) {
	if s.Cache != nil {
		if html, ok := s.Cache.Get(url); ok {
			return html, nil
		}
	}

	if s.Pacer != nil {
		if err := s.Pacer.Wait(ctx); err != nil {
			return "", err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		return "", err
	}

	if s.Cache != nil {
		// Cache failures are not fatal; the page was fetched.
		_ = s.Cache.Put(url, html)
	}

	return html, nil
}
