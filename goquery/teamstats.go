package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	fbref "github.com/raghavtripped/fbref-dashboard"
)

var (
	ofPatternRE = regexp.MustCompile(`(\d+)\s+of\s+(\d+)`)
	pctRE       = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)
)

// parseTeamStats parses the #team_stats table. Category names appear as
// header-only rows, each followed by a two-column (home, away) data row.
// The current category is threaded through the row iteration and reset after
// each data row; a category with no data row is silently dropped.
func parseTeamStats(doc *goquery.Document) map[string]fbref.Value {
	stats := make(map[string]fbref.Value)
	table := doc.Find("#team_stats").First()
	if table.Length() == 0 {
		return stats
	}

	category := ""
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		th := row.Find("th")
		tds := row.Find("td")

		if th.Length() > 0 && tds.Length() == 0 {
			category = textOf(th.First())
			return
		}
		if tds.Length() < 2 || category == "" {
			return
		}

		home := tds.Eq(0)
		away := tds.Eq(1)
		homeText := textOf(home)
		awayText := textOf(away)
		baseKey := fbref.NormalizeKey(category)

		switch {
		// "N of M" rows (shots on target, saves)
		case strings.Contains(homeText, " of "):
			homeCount, homeTotal := parseOf(homeText)
			awayCount, awayTotal := parseOf(awayText)

			if baseKey == "shots_on_target" {
				// Site-specific naming: the denominator is total shots, not
				// "shots_on_target_total".
				stats["home_shots_on_target"] = homeCount
				stats["away_shots_on_target"] = awayCount
				stats["home_shots_total"] = homeTotal
				stats["away_shots_total"] = awayTotal
			} else {
				stats["home_"+baseKey] = homeCount
				stats["away_"+baseKey] = awayCount
				stats["home_"+baseKey+"_total"] = homeTotal
				stats["away_"+baseKey+"_total"] = awayTotal
			}

			if strings.Contains(homeText, "%") {
				stats["home_"+baseKey+"_pct"] = parsePct(homeText)
				stats["away_"+baseKey+"_pct"] = parsePct(awayText)
			}

		// Cards render as icons, so the tallies come from marker substrings
		// in the cell markup rather than its text.
		case category == "Cards":
			homeYellow, homeRed := countCards(home)
			awayYellow, awayRed := countCards(away)
			stats["home_cards_yellow"] = fbref.IntValue(homeYellow)
			stats["home_cards_red"] = fbref.IntValue(homeRed)
			stats["away_cards_yellow"] = fbref.IntValue(awayYellow)
			stats["away_cards_red"] = fbref.IntValue(awayRed)

		// Plain number or percentage
		default:
			stats["home_"+baseKey] = fbref.ParseNumber(homeText)
			stats["away_"+baseKey] = fbref.ParseNumber(awayText)
		}

		category = ""
	})

	return stats
}

// parseOf extracts the count and denominator from "N of M" cell text.
// Both values are null when the pattern is absent.
func parseOf(text string) (count, total fbref.Value) {
	m := ofPatternRE.FindStringSubmatch(text)
	if m == nil {
		return fbref.Null(), fbref.Null()
	}
	c, _ := strconv.Atoi(m[1])
	t, _ := strconv.Atoi(m[2])
	return fbref.IntValue(c), fbref.IntValue(t)
}

// parsePct extracts a percentage from cell text, null if absent.
func parsePct(text string) fbref.Value {
	m := pctRE.FindStringSubmatch(text)
	if m == nil {
		return fbref.Null()
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return fbref.Null()
	}
	return fbref.FloatValue(f)
}

// countCards tallies card icon markers in the cell's markup. A second
// yellow counts toward the yellow tally; its marker also contains the red
// marker substring, so it counts toward the red tally as well, matching how
// the site renders it.
func countCards(cell *goquery.Selection) (yellow, red int) {
	markup, err := goquery.OuterHtml(cell)
	if err != nil {
		return 0, 0
	}
	yellow = strings.Count(markup, "yellow_card") + strings.Count(markup, "yellow_red_card")
	red = strings.Count(markup, "red_card")
	return yellow, red
}
