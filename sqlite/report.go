package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Compile-time interface verification.
var _ fbref.ReportService = (*ReportService)(nil)

// ReportService implements fbref.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// SaveReport stores a report, replacing any prior record for the same source
// URL. The storage ID of a replaced record is preserved.
func (s *ReportService) SaveReport(ctx context.Context, report *fbref.MatchReport) (*fbref.StoredReport, error) {
	if err := report.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	id := uuid.New().String()
	var existing string
	err = s.db.QueryRowContext(ctx, `SELECT id FROM match_reports WHERE source_url = ?`, report.SourceURL).Scan(&existing)
	switch {
	case err == nil:
		id = existing
	case err != sql.ErrNoRows:
		return nil, err
	}

	fetchedAt := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO match_reports (id, source_url, match_id, home_team, away_team, competition, season, outcome, payload, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			match_id = excluded.match_id,
			home_team = excluded.home_team,
			away_team = excluded.away_team,
			competition = excluded.competition,
			season = excluded.season,
			outcome = excluded.outcome,
			payload = excluded.payload,
			fetched_at = excluded.fetched_at
	`, id, report.SourceURL, fbref.MatchID(report.SourceURL), report.HomeTeam, report.AwayTeam,
		report.Competition, report.Season, string(report.Outcome), string(payload),
		fetchedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return &fbref.StoredReport{ID: id, FetchedAt: fetchedAt, Report: report}, nil
}

// FindReportByMatchID retrieves a report whose match identifier or source
// URL contains the given identifier.
func (s *ReportService) FindReportByMatchID(ctx context.Context, matchID string) (*fbref.StoredReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, payload, fetched_at
		FROM match_reports
		WHERE match_id = ? OR instr(source_url, ?) > 0
		LIMIT 1
	`, matchID, matchID)

	stored, err := scanStoredReport(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fbref.Errorf(fbref.ENOTFOUND, "match %q not found", matchID)
	}
	return stored, err
}

// FindReports retrieves reports matching the filter, most recently fetched
// first.
func (s *ReportService) FindReports(ctx context.Context, filter fbref.ReportFilter) ([]*fbref.StoredReport, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, payload, fetched_at FROM match_reports WHERE 1=1")

	if filter.Competition != nil {
		query.WriteString(" AND competition = ?")
		args = append(args, *filter.Competition)
	}
	if filter.Season != nil {
		query.WriteString(" AND season = ?")
		args = append(args, *filter.Season)
	}
	if filter.Team != nil {
		query.WriteString(" AND (home_team = ? OR away_team = ?)")
		args = append(args, *filter.Team, *filter.Team)
	}
	if filter.Outcome != nil {
		query.WriteString(" AND outcome = ?")
		args = append(args, string(*filter.Outcome))
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*fbref.StoredReport
	for rows.Next() {
		stored, err := scanStoredReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, stored)
	}
	return reports, rows.Err()
}

// DeleteReport permanently removes a report by storage ID.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM match_reports WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fbref.Errorf(fbref.ENOTFOUND, "report %q not found", id)
	}
	return nil
}

// DeleteAllReports removes every stored report.
func (s *ReportService) DeleteAllReports(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM match_reports`)
	return err
}

// scanStoredReport scans one (id, payload, fetched_at) row into a
// StoredReport, decoding the JSON payload.
func scanStoredReport(scan func(...any) error) (*fbref.StoredReport, error) {
	var stored fbref.StoredReport
	var payload, fetchedAt string

	if err := scan(&stored.ID, &payload, &fetchedAt); err != nil {
		return nil, err
	}

	var report fbref.MatchReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("failed to decode report payload: %w", err)
	}
	stored.Report = &report

	t, err := parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	stored.FetchedAt = t

	return &stored, nil
}
