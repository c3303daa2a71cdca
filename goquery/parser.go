// Package goquery implements match report extraction on top of the goquery
// HTML query library. FBref hides most stat tables inside HTML comments, so
// the parser strips comment markers before building the document tree and
// then runs a set of best-effort extractors over the revealed elements.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Ensure Parser implements fbref.Parser at compile time.
var _ fbref.Parser = (*Parser)(nil)

// Parser extracts normalized match reports from FBref match pages.
// The zero value is ready to use and safe for concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// commentMarkers strips HTML comment delimiters byte-for-byte so commented
// tables become regular, queryable elements. Not structurally aware; the
// tolerant HTML parser absorbs whatever malformed markup results.
var commentMarkers = strings.NewReplacer("<!--", "", "-->", "")

// ParseReport extracts a MatchReport from raw match page HTML.
func (p *Parser) ParseReport(sourceURL, html string) (*fbref.MatchReport, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(commentMarkers.Replace(html)))
	if err != nil {
		return nil, fbref.Errorf(fbref.EINVALID, "failed to parse HTML: %v", err)
	}

	if err := classifyPage(doc); err != nil {
		return nil, err
	}

	report := &fbref.MatchReport{SourceURL: sourceURL}

	if err := extractScorebox(doc, report); err != nil {
		return nil, err
	}
	extractMeta(doc, report)

	stats := parseTeamStats(doc)
	// Auxiliary comparison values never overwrite keys the table parser set.
	for key, val := range parseComparisons(doc) {
		if _, ok := stats[key]; !ok {
			stats[key] = val
		}
	}
	addCardTotals(stats)
	report.Stats = stats

	report.PlayerStats = parseAllPlayerTables(doc)
	report.ExtraTables = parseFallbackTables(doc)

	return report, nil
}

// classifyPage inspects the page title for fatal page-level conditions that
// abort extraction entirely: a challenge page, a missing page, or a
// rate-limit response.
func classifyPage(doc *goquery.Document) error {
	title := doc.Find("title").First().Text()
	switch {
	case strings.Contains(title, "Just a moment"):
		return fbref.Errorf(fbref.EBLOCKED, "anti-automation challenge page")
	case strings.Contains(title, "Page Not Found"), strings.Contains(title, "404"):
		return fbref.Errorf(fbref.ENOTFOUND, "match page not found")
	case strings.Contains(title, "429"), strings.Contains(title, "Too Many Requests"):
		return fbref.Errorf(fbref.ERATELIMITED, "rate limit response page")
	}
	return nil
}

// addCardTotals derives per-side and combined card totals when both yellow
// and red counts were extracted.
func addCardTotals(stats map[string]fbref.Value) {
	homeYellow, okYellow := stats["home_cards_yellow"]
	homeRed, okRed := stats["home_cards_red"]
	if !okYellow || !okRed {
		return
	}
	homeTotal := homeYellow.Int + homeRed.Int
	awayTotal := stats["away_cards_yellow"].Int + stats["away_cards_red"].Int
	stats["home_cards_total"] = fbref.IntValue(homeTotal)
	stats["away_cards_total"] = fbref.IntValue(awayTotal)
	stats["total_cards"] = fbref.IntValue(homeTotal + awayTotal)
}
