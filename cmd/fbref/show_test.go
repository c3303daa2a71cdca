package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	fbref "github.com/raghavtripped/fbref-dashboard"
	main "github.com/raghavtripped/fbref-dashboard/cmd/fbref"
	"github.com/raghavtripped/fbref-dashboard/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints a readable match summary", func(t *testing.T) {
		t.Parallel()

		sr := storedMatch("id-1", "https://fbref.com/en/matches/abc123/x")
		xg := 1.8
		sr.Report.HomeXG = &xg
		awayXG := 0.6
		sr.Report.AwayXG = &awayXG
		sr.Report.Referee = "Michael Oliver"
		sr.Report.Stats = map[string]fbref.Value{
			"home_possession": fbref.FloatValue(58),
			"away_possession": fbref.FloatValue(42),
		}

		reports := &mock.ReportService{
			FindReportByMatchIDFn: func(_ context.Context, matchID string) (*fbref.StoredReport, error) {
				return sr, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Reports: reports,
		}

		cmd := &main.ShowCmd{MatchID: "abc123"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Arsenal 2-1 Chelsea")
		assert.Contains(t, output, "xG: 1.8 - 0.6")
		assert.Contains(t, output, "Referee: Michael Oliver")
		assert.Contains(t, output, "home_possession")
	})

	t.Run("prints JSON with --json", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportByMatchIDFn: func(_ context.Context, matchID string) (*fbref.StoredReport, error) {
				return storedMatch("id-1", "https://fbref.com/en/matches/abc123/x"), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Reports: reports,
		}

		cmd := &main.ShowCmd{MatchID: "abc123", JSON: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		var decoded fbref.StoredReport
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		assert.Equal(t, "id-1", decoded.ID)
		assert.Equal(t, "Arsenal", decoded.Report.HomeTeam)
	})

	t.Run("unknown match is an error", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportByMatchIDFn: func(_ context.Context, matchID string) (*fbref.StoredReport, error) {
				return nil, fbref.Errorf(fbref.ENOTFOUND, "match not found")
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Reports: reports,
		}

		cmd := &main.ShowCmd{MatchID: "nope99"}
		err := cmd.Run(deps)

		assert.Equal(t, fbref.ENOTFOUND, fbref.ErrorCode(err))
	})
}
