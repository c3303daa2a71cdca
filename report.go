package fbref

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Outcome is the result of a match from the home side's perspective,
// derived deterministically from the two goal counts.
type Outcome string

// Outcome values.
const (
	OutcomeHomeWin Outcome = "HOME_WIN"
	OutcomeAwayWin Outcome = "AWAY_WIN"
	OutcomeDraw    Outcome = "DRAW"
)

// OutcomeFromGoals derives the match outcome from the two goal counts.
func OutcomeFromGoals(homeGoals, awayGoals int) Outcome {
	switch {
	case homeGoals > awayGoals:
		return OutcomeHomeWin
	case awayGoals > homeGoals:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}

// PlayerRecord is one row of a player statistics table. Identity columns
// (player, nation, pos, age) are always text; every other column is numeric
// when the cell parses as a number.
type PlayerRecord map[string]Value

// Player returns the player name, or "" if the record has none.
func (r PlayerRecord) Player() string {
	return r["player"].Text
}

// PlayerStats maps a side × stat family key (e.g. "home_passing", "away_gk")
// to the table's rows in document order.
type PlayerStats map[string][]PlayerRecord

// ExtraTables maps a table identifier to its rows, each row keyed by the raw
// per-cell data-stat attribute. Only tables not claimed by the specific
// parsers appear here.
type ExtraTables map[string][]map[string]string

// MatchReport is the normalized output of parsing one match report page.
// A report is constructed once per extraction and not mutated afterwards.
//
// Two-sided statistics in Stats use matched home_/away_ key pairs; a
// statistic is either present for both sides or absent for both.
type MatchReport struct {
	SourceURL string `json:"url"`

	HomeTeam  string   `json:"home_team"`
	AwayTeam  string   `json:"away_team"`
	HomeGoals int      `json:"home_goals"`
	AwayGoals int      `json:"away_goals"`
	HomeXG    *float64 `json:"home_xg,omitempty"`
	AwayXG    *float64 `json:"away_xg,omitempty"`
	Outcome   Outcome  `json:"outcome"`

	HomeManager string `json:"home_manager,omitempty"`
	AwayManager string `json:"away_manager,omitempty"`
	HomeCaptain string `json:"home_captain,omitempty"`
	AwayCaptain string `json:"away_captain,omitempty"`

	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Competition string `json:"competition,omitempty"`
	Season      string `json:"season,omitempty"`
	Round       string `json:"round,omitempty"`
	Venue       string `json:"venue,omitempty"`
	Attendance  *int   `json:"attendance,omitempty"`
	Referee     string `json:"referee,omitempty"`

	// Stats holds the flat home_/away_ statistics mapping assembled from the
	// team statistics table and the auxiliary comparison block, plus derived
	// card totals.
	Stats map[string]Value `json:"stats,omitempty"`

	PlayerStats PlayerStats `json:"player_stats,omitempty"`
	ExtraTables ExtraTables `json:"extra_tables,omitempty"`
}

// Validate returns an error if the report contains invalid fields.
func (r *MatchReport) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "report source URL required")
	}
	if r.HomeGoals < 0 || r.AwayGoals < 0 {
		return Errorf(EINVALID, "goal counts must be non-negative")
	}
	if r.Outcome != OutcomeFromGoals(r.HomeGoals, r.AwayGoals) {
		return Errorf(EINVALID, "outcome inconsistent with goal counts")
	}
	return nil
}

// Flatten returns the match-level fields as a scalar-only mapping, with the
// player-stats and extra-tables sub-structures removed. Optional fields are
// present only when set; Stats entries carry their underlying scalar (null
// values map to nil).
func (r *MatchReport) Flatten() map[string]any {
	flat := map[string]any{
		"url":        r.SourceURL,
		"home_team":  r.HomeTeam,
		"away_team":  r.AwayTeam,
		"home_goals": r.HomeGoals,
		"away_goals": r.AwayGoals,
		"outcome":    string(r.Outcome),
	}
	if r.HomeXG != nil {
		flat["home_xg"] = *r.HomeXG
	}
	if r.AwayXG != nil {
		flat["away_xg"] = *r.AwayXG
	}
	for key, val := range map[string]string{
		"home_manager": r.HomeManager,
		"away_manager": r.AwayManager,
		"home_captain": r.HomeCaptain,
		"away_captain": r.AwayCaptain,
		"date":         r.Date,
		"time":         r.Time,
		"competition":  r.Competition,
		"season":       r.Season,
		"round":        r.Round,
		"venue":        r.Venue,
		"referee":      r.Referee,
	} {
		if val != "" {
			flat[key] = val
		}
	}
	if r.Attendance != nil {
		flat["attendance"] = *r.Attendance
	}
	for key, val := range r.Stats {
		flat[key] = val.Scalar()
	}
	return flat
}

// MatchID extracts the match identifier segment from a report URL
// (the path element following "/matches/"). Returns "" if the URL has no
// match identifier.
func MatchID(url string) string {
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	for i, p := range parts {
		if p == "matches" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// CoreColumns is the preferred column ordering for tabular export. Columns
// not listed here follow in sorted order.
var CoreColumns = []string{
	"date", "time", "competition", "season", "round",
	"home_team", "away_team", "home_goals", "away_goals", "outcome",
	"home_xg", "away_xg", "referee", "venue", "attendance",
	"home_manager", "away_manager", "home_captain", "away_captain",
	"home_possession", "away_possession",
	"home_shots_total", "away_shots_total",
	"home_shots_on_target", "away_shots_on_target",
	"home_saves", "away_saves",
	"home_fouls", "away_fouls",
	"home_corners", "away_corners",
	"home_crosses", "away_crosses",
	"home_interceptions", "away_interceptions",
	"home_cards_yellow", "away_cards_yellow",
	"home_cards_red", "away_cards_red",
	"home_cards_total", "away_cards_total",
	"total_cards", "url",
}

// OrderColumns returns the core columns present in keys in their fixed
// order, followed by the remaining keys sorted.
func OrderColumns(keys map[string]bool) []string {
	core := make(map[string]bool, len(CoreColumns))
	var ordered []string
	for _, c := range CoreColumns {
		core[c] = true
		if keys[c] {
			ordered = append(ordered, c)
		}
	}

	var extra []string
	for k := range keys {
		if !core[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(ordered, extra...)
}

// StoredReport is a persisted match report together with its storage
// identity. Persistence assigns the ID; the report itself has none.
type StoredReport struct {
	ID        string       `json:"id"`
	FetchedAt time.Time    `json:"fetchedAt"`
	Report    *MatchReport `json:"report"`
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	Competition *string  `json:"competition"`
	Season      *string  `json:"season"`
	Team        *string  `json:"team"`
	Outcome     *Outcome `json:"outcome"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportService represents a service for persisting match reports keyed by
// source URL. Saving a report for an already-stored URL replaces the stored
// record (repeated scrapes enrich in place).
type ReportService interface {
	// SaveReport stores a report, replacing any prior record for the same
	// source URL, and returns the stored record.
	SaveReport(ctx context.Context, report *MatchReport) (*StoredReport, error)

	// FindReportByMatchID retrieves a report whose source URL contains the
	// given match identifier. Returns ENOTFOUND if no report matches.
	FindReportByMatchID(ctx context.Context, matchID string) (*StoredReport, error)

	// FindReports retrieves reports matching the filter, most recently
	// fetched first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*StoredReport, error)

	// DeleteReport permanently removes a report by storage ID.
	// Returns ENOTFOUND if the report does not exist.
	DeleteReport(ctx context.Context, id string) error

	// DeleteAllReports removes every stored report.
	DeleteAllReports(ctx context.Context) error
}
