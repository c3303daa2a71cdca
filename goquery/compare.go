package goquery

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	fbref "github.com/raghavtripped/fbref-dashboard"
)

// parseComparisons parses the #team_stats_extra block: a flat run of leaf
// text fragments organized as (home value, label, away value) triplets.
// The scan advances by one fragment on any mismatch to resynchronize against
// ragged input, and the first occurrence of a category wins.
func parseComparisons(doc *goquery.Document) map[string]fbref.Value {
	stats := make(map[string]fbref.Value)
	container := doc.Find("#team_stats_extra").First()
	if container.Length() == 0 {
		return stats
	}

	var leaves []string
	container.Find("div").Each(func(_ int, div *goquery.Selection) {
		if div.ChildrenFiltered("div").Length() > 0 {
			return
		}
		if text := textOf(div); text != "" {
			leaves = append(leaves, text)
		}
	})

	for i := 0; i+2 < len(leaves); {
		homeVal, err := strconv.ParseFloat(leaves[i], 64)
		if err != nil {
			i++
			continue
		}
		label := leaves[i+1]
		awayVal, err := strconv.ParseFloat(leaves[i+2], 64)
		if err != nil {
			i++
			continue
		}
		// A numeric "label" means the window is misaligned.
		if _, err := strconv.ParseFloat(label, 64); err == nil {
			i++
			continue
		}

		key := fbref.NormalizeKey(label)
		if _, ok := stats["home_"+key]; !ok {
			stats["home_"+key] = fbref.FloatValue(homeVal)
			stats["away_"+key] = fbref.FloatValue(awayVal)
		}
		i += 3
	}

	return stats
}
