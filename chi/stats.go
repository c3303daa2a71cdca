package chi

import (
	"math"
	"net/http"
	"sort"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// aggregateStats is the response of GET /api/stats.
type aggregateStats struct {
	TotalMatches int            `json:"total_matches"`
	Teams        []string       `json:"teams"`
	Competitions []string       `json:"competitions"`
	Referees     []string       `json:"referees"`
	Outcomes     map[string]int `json:"outcomes"`
	TotalGoals   int            `json:"total_goals"`
	TotalCards   int            `json:"total_cards"`
	AvgGoals     float64        `json:"avg_goals"`
}

// handleStats computes aggregate statistics across all stored matches.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stored, err := s.Reports.FindReports(r.Context(), fbref.ReportFilter{})
	if err != nil {
		writeError(w, err)
		return
	}

	agg := aggregateStats{
		Teams:        []string{},
		Competitions: []string{},
		Referees:     []string{},
		Outcomes: map[string]int{
			string(fbref.OutcomeHomeWin): 0,
			string(fbref.OutcomeAwayWin): 0,
			string(fbref.OutcomeDraw):    0,
		},
	}
	if len(stored) == 0 {
		writeJSON(w, http.StatusOK, agg)
		return
	}

	teams := make(map[string]bool)
	comps := make(map[string]bool)
	refs := make(map[string]bool)

	for _, sr := range stored {
		rep := sr.Report
		teams[rep.HomeTeam] = true
		teams[rep.AwayTeam] = true
		comps[rep.Competition] = true
		refs[rep.Referee] = true
		agg.Outcomes[string(rep.Outcome)]++
		agg.TotalGoals += rep.HomeGoals + rep.AwayGoals
		if total, ok := rep.Stats["total_cards"]; ok {
			agg.TotalCards += total.Int
		}
	}

	agg.TotalMatches = len(stored)
	agg.Teams = sortedNonEmpty(teams)
	agg.Competitions = sortedNonEmpty(comps)
	agg.Referees = sortedNonEmpty(refs)
	agg.AvgGoals = math.Round(float64(agg.TotalGoals)/float64(len(stored))*100) / 100

	writeJSON(w, http.StatusOK, agg)
}

// sortedNonEmpty returns the non-empty keys of set in sorted order.
func sortedNonEmpty(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
