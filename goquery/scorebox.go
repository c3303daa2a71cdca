package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	fbref "github.com/raghavtripped/fbref-dashboard"
)

var (
	nonDigitRE      = regexp.MustCompile(`[^\d-]`)
	nonDigitDotRE   = regexp.MustCompile(`[^\d.\-]`)
	whitespaceRunRE = regexp.MustCompile(`\s+`)
)

// textOf returns the selection's text with whitespace runs collapsed and
// edges trimmed.
func textOf(sel *goquery.Selection) string {
	return strings.TrimSpace(whitespaceRunRE.ReplaceAllString(sel.Text(), " "))
}

// safeInt parses text as an integer after stripping everything but digits
// and minus signs.
func safeInt(s string, fallback int) int {
	i, err := strconv.Atoi(nonDigitRE.ReplaceAllString(s, ""))
	if err != nil {
		return fallback
	}
	return i
}

// safeFloat parses text as a float after stripping everything but digits,
// dots, and minus signs. Returns nil if nothing numeric remains.
func safeFloat(s string) *float64 {
	f, err := strconv.ParseFloat(nonDigitDotRE.ReplaceAllString(s, ""), 64)
	if err != nil {
		return nil
	}
	return &f
}

// extractScorebox reads team identities, the final score, expected goals,
// and manager/captain names from the scorebox container. A missing scorebox
// is fatal; everything inside it is best-effort.
func extractScorebox(doc *goquery.Document, report *fbref.MatchReport) error {
	scorebox := doc.Find("div.scorebox").First()
	if scorebox.Length() == 0 {
		return fbref.Errorf(fbref.EINVALID, "scorebox container not found")
	}

	homeDiv := doc.Find("#sb_team_0").First()
	awayDiv := doc.Find("#sb_team_1").First()

	if homeDiv.Length() == 0 || awayDiv.Length() == 0 {
		// Older page versions lack the stable team IDs; fall back to the
		// first and last non-metadata direct children of the scorebox.
		teamDivs := scorebox.ChildrenFiltered("div").Not(".scorebox_meta")
		if teamDivs.Length() < 2 {
			return fbref.Errorf(fbref.EINVALID, "scorebox team containers not found")
		}
		homeDiv = teamDivs.First()
		awayDiv = teamDivs.Last()
	}

	report.HomeTeam, report.HomeGoals, report.HomeXG, report.HomeManager, report.HomeCaptain = extractSide(homeDiv)
	report.AwayTeam, report.AwayGoals, report.AwayXG, report.AwayManager, report.AwayCaptain = extractSide(awayDiv)
	report.Outcome = fbref.OutcomeFromGoals(report.HomeGoals, report.AwayGoals)

	return nil
}

// extractSide reads one team's scorebox column.
func extractSide(div *goquery.Selection) (team string, goals int, xg *float64, manager, captain string) {
	team = "Unknown"
	if link := div.Find("strong").First().Find("a").First(); link.Length() > 0 {
		team = textOf(link)
	}

	if score := div.Find("div.score").First(); score.Length() > 0 {
		goals = safeInt(textOf(score), 0)
	}

	if xgEl := div.Find("div.score_xg").First(); xgEl.Length() > 0 {
		xg = safeFloat(textOf(xgEl))
	}

	div.Find("div.datapoint").Each(func(_ int, dp *goquery.Selection) {
		text := textOf(dp)
		switch {
		case strings.Contains(text, "Manager"):
			manager = stripLabel(text, "Manager")
		case strings.Contains(text, "Captain"):
			captain = stripLabel(text, "Captain")
		}
	})

	return team, goals, xg, manager, captain
}

// stripLabel removes a "Label:" or "Label" prefix from datapoint text.
func stripLabel(text, label string) string {
	text = strings.ReplaceAll(text, label+":", "")
	text = strings.ReplaceAll(text, label, "")
	return strings.TrimSpace(text)
}
