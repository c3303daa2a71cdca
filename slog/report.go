package slog

import (
	"context"
	"log/slog"
	"time"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Ensure LoggingReportService implements fbref.ReportService.
var _ fbref.ReportService = (*LoggingReportService)(nil)

// LoggingReportService wraps a ReportService with debug logging.
type LoggingReportService struct {
	next   fbref.ReportService
	logger *slog.Logger
}

// NewLoggingReportService creates a new LoggingReportService.
func NewLoggingReportService(next fbref.ReportService, logger *slog.Logger) *LoggingReportService {
	return &LoggingReportService{next: next, logger: logger}
}

// SaveReport delegates to the wrapped service and logs the operation.
func (s *LoggingReportService) SaveReport(ctx context.Context, report *fbref.MatchReport) (stored *fbref.StoredReport, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save report",
			"url", report.SourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveReport(ctx, report)
}

// FindReportByMatchID delegates to the wrapped service.
func (s *LoggingReportService) FindReportByMatchID(ctx context.Context, matchID string) (*fbref.StoredReport, error) {
	return s.next.FindReportByMatchID(ctx, matchID)
}

// FindReports delegates to the wrapped service and logs the operation.
func (s *LoggingReportService) FindReports(ctx context.Context, filter fbref.ReportFilter) (reports []*fbref.StoredReport, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find reports",
			"count", len(reports),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindReports(ctx, filter)
}

// DeleteReport delegates to the wrapped service and logs the operation.
func (s *LoggingReportService) DeleteReport(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete report",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteReport(ctx, id)
}

// DeleteAllReports delegates to the wrapped service and logs the operation.
func (s *LoggingReportService) DeleteAllReports(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete all reports",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteAllReports(ctx)
}
