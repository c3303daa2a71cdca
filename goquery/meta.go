package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	fbref "github.com/raghavtripped/fbref-dashboard"
	"golang.org/x/net/html"
)

var (
	dateHrefRE   = regexp.MustCompile(`/matches/20`)
	compHrefRE   = regexp.MustCompile(`/comps/|/seasons/`)
	kickoffRE    = regexp.MustCompile(`(\d{1,2}:\d{2})`)
	seasonRE     = regexp.MustCompile(`^(\d{4}-\d{4})\s+(.+)`)
	roundRE      = regexp.MustCompile(`(?i)\((Matchweek \d+|Round of \d+|Quarter-finals|Semi-finals|Final)\)`)
	venueRE      = regexp.MustCompile(`Venue:\s*(.+?)(?:Attendance|Officials|$)`)
	attendanceRE = regexp.MustCompile(`Attendance:\s*([\d,]+)`)
	refereeRE    = regexp.MustCompile(`Officials?:\s*([^(·]+)\s*\(Referee\)`)
)

// joinedText returns all text nodes under the selection, each trimmed, joined
// with a single space. Unlike Selection.Text this keeps adjacent inline
// elements separated, which the metadata marker patterns rely on.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// extractMeta parses the scorebox metadata block into date, kickoff time,
// competition, season, round, venue, attendance, and referee. Every rule is
// independently best-effort; a missed pattern simply leaves its field unset.
func extractMeta(doc *goquery.Document, report *fbref.MatchReport) {
	meta := doc.Find("div.scorebox_meta").First()
	if meta.Length() == 0 {
		return
	}
	metaText := joinedText(meta)

	meta.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if href, ok := a.Attr("href"); ok && dateHrefRE.MatchString(href) {
			report.Date = textOf(a)
			return false
		}
		return true
	})

	if timeEl := meta.Find("span.venuetime").First(); timeEl.Length() > 0 {
		report.Time = textOf(timeEl)
	} else if m := kickoffRE.FindStringSubmatch(metaText); m != nil {
		report.Time = m[1]
	}

	meta.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || !compHrefRE.MatchString(href) {
			return true
		}
		full := textOf(a)
		if m := seasonRE.FindStringSubmatch(full); m != nil {
			report.Season = m[1]
			report.Competition = m[2]
		} else {
			report.Competition = full
		}
		return false
	})

	if m := roundRE.FindStringSubmatch(metaText); m != nil {
		report.Round = m[1]
	}

	if m := venueRE.FindStringSubmatch(metaText); m != nil {
		report.Venue = strings.TrimRight(strings.TrimSpace(m[1]), ",")
	}

	if m := attendanceRE.FindStringSubmatch(metaText); m != nil {
		if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			report.Attendance = &n
		}
	}

	if m := refereeRE.FindStringSubmatch(metaText); m != nil {
		report.Referee = strings.TrimSpace(m[1])
	}
}
