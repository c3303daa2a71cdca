package main

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"

	fbref "github.com/raghavtripped/fbref-dashboard"
	"github.com/raghavtripped/fbref-dashboard/bloom"
	"github.com/raghavtripped/fbref-dashboard/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 0 && (c.Competition == "" || c.Season == "") {
		fmt.Fprintf(deps.Stderr, "error: give match URLs, or --competition and --season for schedule discovery\n")
		return fbref.Errorf(fbref.EINVALID, "give match URLs, or --competition and --season")
	}

	fetcher, err := deps.NewFetcher()
	if err != nil {
		return err
	}
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher: fetcher,
		Parser:  deps.Parser,
		Reports: deps.Reports,
		Cache:   deps.Cache,
		Pacer:   scrape.NewPacer(rate.Every(time.Duration(c.Delay) * time.Second)),
		Seen:    bloom.NewFilter(10000, 0.01),
	}

	urls := c.URLs
	if len(urls) == 0 {
		fmt.Fprintf(deps.Stdout, "Discovering %s %s...\n", c.Competition, c.Season)
		urls, err = scraper.Discover(deps.Ctx, c.Competition, c.Season)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fbref.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Found %d match URLs\n", len(urls))
	}

	result, err := scraper.Run(deps.Ctx, urls, func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressCompleted:
			r := e.Report
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s %d-%d %s\n",
				e.Completed, e.Total, r.HomeTeam, r.HomeGoals, r.AwayGoals, r.AwayTeam)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %s\n",
				e.Completed, e.Total, e.URL, fbref.ErrorMessage(e.Error))
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "[%d/%d] skipped %s\n", e.Completed, e.Total, e.URL)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d saved, %d failed, %d skipped\n",
		result.Saved, result.Failed, result.Skipped)
	return nil
}
