package main

import (
	"fmt"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Run executes the parse command. It walks the page cache and parses every
// cached match page that is not already stored.
func (c *ParseCmd) Run(deps *Dependencies) error {
	stems, err := deps.Cache.List()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbref.ErrorMessage(err))
		return err
	}

	var parsed, skipped, failed int
	for _, stem := range stems {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}

		url := fmt.Sprintf("https://fbref.com/en/matches/%s/", stem)

		if !c.Force {
			if _, err := deps.Reports.FindReportByMatchID(deps.Ctx, stem); err == nil {
				skipped++
				continue
			}
		}

		html, ok := deps.Cache.Get(url)
		if !ok {
			skipped++
			continue
		}

		report, err := deps.Parser.ParseReport(url, html)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "failed %s: %s\n", stem, fbref.ErrorMessage(err))
			continue
		}

		if _, err := deps.Reports.SaveReport(deps.Ctx, report); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "failed %s: %s\n", stem, fbref.ErrorMessage(err))
			continue
		}

		parsed++
		fmt.Fprintf(deps.Stdout, "parsed %s: %s %d-%d %s\n",
			stem, report.HomeTeam, report.HomeGoals, report.AwayGoals, report.AwayTeam)
	}

	fmt.Fprintf(deps.Stdout, "Done: %d parsed, %d skipped, %d failed\n", parsed, skipped, failed)
	return nil
}
