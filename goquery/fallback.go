package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	fbref "github.com/raghavtripped/fbref-dashboard"
)

// parseFallbackTables captures any table not owned by the specific parsers,
// keyed by table identifier, preserving raw per-cell data-stat attribute keys.
// Tables without an identifier, tables already claimed, and tables matching
// the player or goalkeeper naming convention are skipped.
func parseFallbackTables(doc *goquery.Document) fbref.ExtraTables {
	claimed := map[string]bool{"team_stats": true, "player_stats": true}

	extra := make(fbref.ExtraTables)
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		id := table.AttrOr("id", "")
		if id == "" || claimed[id] {
			return
		}
		// Player and goalkeeper tables are owned even for stat families the
		// enumerated parsers never requested.
		if strings.Contains(id, "stats_") || strings.Contains(id, "keeper_stats") {
			return
		}

		var rows []map[string]string
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			row := make(map[string]string)
			tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				if stat := cell.AttrOr("data-stat", ""); stat != "" {
					row[stat] = textOf(cell)
				}
			})
			if len(row) > 0 {
				rows = append(rows, row)
			}
		})

		if len(rows) > 0 {
			extra[id] = rows
		}
	})

	return extra
}
