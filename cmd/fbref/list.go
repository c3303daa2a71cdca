package main

import (
	"fmt"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter fbref.ReportFilter
	if c.Competition != "" {
		filter.Competition = &c.Competition
	}
	if c.Season != "" {
		filter.Season = &c.Season
	}
	if c.Team != "" {
		filter.Team = &c.Team
	}
	if c.Outcome != "" {
		outcome := fbref.Outcome(c.Outcome)
		filter.Outcome = &outcome
	}

	stored, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbref.ErrorMessage(err))
		return err
	}

	if len(stored) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches found. Use 'fbref scrape' to fetch some.")
		return nil
	}

	for _, sr := range stored {
		r := sr.Report
		fmt.Fprintf(deps.Stdout, "%s  %s  %s %d-%d %s  %s\n",
			fbref.MatchID(r.SourceURL), r.Date, r.HomeTeam, r.HomeGoals, r.AwayGoals, r.AwayTeam, r.Competition)
	}

	return nil
}
