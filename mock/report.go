package mock

import (
	"context"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

var _ fbref.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of fbref.ReportService.
type ReportService struct {
	SaveReportFn          func(ctx context.Context, report *fbref.MatchReport) (*fbref.StoredReport, error)
	FindReportByMatchIDFn func(ctx context.Context, matchID string) (*fbref.StoredReport, error)
	FindReportsFn         func(ctx context.Context, filter fbref.ReportFilter) ([]*fbref.StoredReport, error)
	DeleteReportFn        func(ctx context.Context, id string) error
	DeleteAllReportsFn    func(ctx context.Context) error
}

func (s *ReportService) SaveReport(ctx context.Context, report *fbref.MatchReport) (*fbref.StoredReport, error) {
	return s.SaveReportFn(ctx, report)
}

func (s *ReportService) FindReportByMatchID(ctx context.Context, matchID string) (*fbref.StoredReport, error) {
	return s.FindReportByMatchIDFn(ctx, matchID)
}

func (s *ReportService) FindReports(ctx context.Context, filter fbref.ReportFilter) ([]*fbref.StoredReport, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}

func (s *ReportService) DeleteAllReports(ctx context.Context) error {
	return s.DeleteAllReportsFn(ctx)
}
