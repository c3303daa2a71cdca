package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	fbref "github.com/raghavtripped/fbref-dashboard"
)

// statFamilies is the fixed vocabulary of per-side player table families.
// Goalkeeper tables use their own identifier scheme and the "gk" key.
var statFamilies = []string{"summary", "passing", "defense", "possession", "misc", "shooting"}

// identityColumns are always kept as raw text in player records.
var identityColumns = map[string]bool{
	"player": true,
	"nation": true,
	"pos":    true,
	"age":    true,
}

// parseAllPlayerTables extracts every (side, stat family) player table plus
// the goalkeeper table per side, skipping families that yield no rows.
func parseAllPlayerTables(doc *goquery.Document) fbref.PlayerStats {
	stats := make(fbref.PlayerStats)
	for _, side := range []string{"home", "away"} {
		for _, family := range statFamilies {
			if rows := parsePlayerTable(doc, fmt.Sprintf("stats_%s_%s", side, family)); len(rows) > 0 {
				stats[side+"_"+family] = rows
			}
		}
		if rows := parsePlayerTable(doc, "keeper_stats_"+side); len(rows) > 0 {
			stats[side+"_gk"] = rows
		}
	}
	return stats
}

// parsePlayerTable parses a single player statistics table into one record
// per body row. Column keys come from the last header row (multi-row headers
// keep only the final row); rows marked as repeated headers or section
// spacers are skipped, as are rows with fewer than three cells or without a
// usable player name.
func parsePlayerTable(doc *goquery.Document, tableID string) []fbref.PlayerRecord {
	table := doc.Find("#" + tableID).First()
	if table.Length() == 0 {
		return nil
	}

	thead := table.Find("thead").First()
	if thead.Length() == 0 {
		return nil
	}
	var headers []string
	thead.Find("tr").Last().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, textOf(cell))
	})

	tbody := table.Find("tbody").First()
	if tbody.Length() == 0 {
		return nil
	}

	var players []fbref.PlayerRecord
	tbody.Find("tr").Each(func(_ int, row *goquery.Selection) {
		class := row.AttrOr("class", "")
		if strings.Contains(class, "thead") || strings.Contains(class, "spacer") {
			return
		}

		cells := row.Find("th, td")
		if cells.Length() < 3 {
			return
		}

		player := make(fbref.PlayerRecord)
		cells.Each(func(j int, cell *goquery.Selection) {
			if j >= len(headers) {
				return
			}
			key := fbref.NormalizeKey(headers[j])
			if key == "" {
				key = fmt.Sprintf("col_%d", j)
			}
			val := textOf(cell)
			if identityColumns[key] {
				player[key] = fbref.TextValue(val)
			} else {
				player[key] = fbref.ParseCell(val)
			}
		})

		// Drop separator artifacts and repeated header rows that slipped
		// through the class check.
		if name := player.Player(); name != "" && name != "Player" {
			players = append(players, player)
		}
	})

	return players
}
