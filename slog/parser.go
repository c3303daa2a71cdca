package slog

import (
	"log/slog"
	"time"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Ensure LoggingParser implements fbref.Parser.
var _ fbref.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   fbref.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next fbref.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseReport delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParseReport(sourceURL, html string) (report *fbref.MatchReport, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", sourceURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if report != nil {
			attrs = append(attrs,
				"home", report.HomeTeam,
				"away", report.AwayTeam,
				"stats", len(report.Stats),
			)
		}
		p.logger.Info("parse report", attrs...)
	}(time.Now())
	return p.next.ParseReport(sourceURL, html)
}
