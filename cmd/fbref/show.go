package main

import (
	"encoding/json"
	"fmt"
	"sort"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	stored, err := deps.Reports.FindReportByMatchID(deps.Ctx, c.MatchID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbref.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stored)
	}

	r := stored.Report
	fmt.Fprintf(deps.Stdout, "%s %d-%d %s\n", r.HomeTeam, r.HomeGoals, r.AwayGoals, r.AwayTeam)
	if r.HomeXG != nil && r.AwayXG != nil {
		fmt.Fprintf(deps.Stdout, "xG: %.1f - %.1f\n", *r.HomeXG, *r.AwayXG)
	}
	for _, line := range []struct{ label, value string }{
		{"Date", r.Date},
		{"Competition", r.Competition},
		{"Season", r.Season},
		{"Round", r.Round},
		{"Venue", r.Venue},
		{"Referee", r.Referee},
	} {
		if line.value != "" {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", line.label, line.value)
		}
	}
	if r.Attendance != nil {
		fmt.Fprintf(deps.Stdout, "Attendance: %d\n", *r.Attendance)
	}

	if len(r.Stats) > 0 {
		fmt.Fprintln(deps.Stdout)
		keys := make([]string, 0, len(r.Stats))
		for k := range r.Stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", k, r.Stats[k])
		}
	}

	return nil
}
