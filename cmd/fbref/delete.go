package main

import (
	"fmt"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return fbref.Errorf(fbref.EINVALID, "use --force to confirm deletion")
	}

	if c.All {
		if err := deps.Reports.DeleteAllReports(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fbref.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "Deleted all matches")
		return nil
	}

	if c.MatchID == "" {
		fmt.Fprintf(deps.Stderr, "error: give a match ID or --all\n")
		return fbref.Errorf(fbref.EINVALID, "give a match ID or --all")
	}

	stored, err := deps.Reports.FindReportByMatchID(deps.Ctx, c.MatchID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: match %q not found. Use 'fbref list' to see stored matches.\n", c.MatchID)
		return err
	}

	if err := deps.Reports.DeleteReport(deps.Ctx, stored.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s %d-%d %s\n",
		stored.Report.HomeTeam, stored.Report.HomeGoals, stored.Report.AwayGoals, stored.Report.AwayTeam)
	return nil
}
