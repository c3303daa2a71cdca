package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// handleMatchList returns every stored match flattened to scalar fields,
// without player stats. Optional query parameters competition, season, team,
// and outcome narrow the result.
func (s *Server) handleMatchList(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	stored, err := s.Reports.FindReports(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	matches := make([]map[string]any, 0, len(stored))
	for _, sr := range stored {
		row := sr.Report.Flatten()
		row["id"] = sr.ID
		row["fetched_at"] = sr.FetchedAt
		row["has_players"] = len(sr.Report.PlayerStats) > 0
		matches = append(matches, row)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"matches": matches,
		"count":   len(matches),
	})
}

// filterFromQuery builds a ReportFilter from URL query parameters.
func filterFromQuery(r *http.Request) fbref.ReportFilter {
	var filter fbref.ReportFilter
	q := r.URL.Query()
	if v := q.Get("competition"); v != "" {
		filter.Competition = &v
	}
	if v := q.Get("season"); v != "" {
		filter.Season = &v
	}
	if v := q.Get("team"); v != "" {
		filter.Team = &v
	}
	if v := q.Get("outcome"); v != "" {
		outcome := fbref.Outcome(v)
		filter.Outcome = &outcome
	}
	return filter
}

// handleMatchShow returns a single match by FBref match ID, player stats
// included.
func (s *Server) handleMatchShow(w http.ResponseWriter, r *http.Request) {
	stored, err := s.Reports.FindReportByMatchID(r.Context(), chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// handleMatchPlayers returns just the player stat tables for a match.
func (s *Server) handleMatchPlayers(w http.ResponseWriter, r *http.Request) {
	stored, err := s.Reports.FindReportByMatchID(r.Context(), chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, err)
		return
	}
	players := stored.Report.PlayerStats
	if players == nil {
		players = fbref.PlayerStats{}
	}
	writeJSON(w, http.StatusOK, players)
}

// handleMatchDeleteAll removes every stored match.
func (s *Server) handleMatchDeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := s.Reports.DeleteAllReports(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// parseRequest is the body of POST /api/parse.
type parseRequest struct {
	URL  string `json:"url"`
	HTML string `json:"html"`
}

// handleParse extracts a report from manually supplied HTML and stores it.
// Used when a page was saved by hand from a browser.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fbref.Errorf(fbref.EINVALID, "invalid request body: %v", err))
		return
	}
	if req.URL == "" || req.HTML == "" {
		writeError(w, fbref.Errorf(fbref.EINVALID, "url and html are required"))
		return
	}

	report, err := s.Parser.ParseReport(req.URL, req.HTML)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.Reports.SaveReport(r.Context(), report); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"match":  report.Flatten(),
	})
}
