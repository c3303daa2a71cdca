package mock

import (
	fbref "github.com/raghavtripped/fbref-dashboard"
)

var _ fbref.Parser = (*Parser)(nil)

// Parser is a mock implementation of fbref.Parser.
type Parser struct {
	ParseReportFn func(sourceURL, html string) (*fbref.MatchReport, error)
}

func (p *Parser) ParseReport(sourceURL, html string) (*fbref.MatchReport, error) {
	return p.ParseReportFn(sourceURL, html)
}
