package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fbref "github.com/raghavtripped/fbref-dashboard"
	main "github.com/raghavtripped/fbref-dashboard/cmd/fbref"
	"github.com/raghavtripped/fbref-dashboard/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes CSV to stdout with core columns first", func(t *testing.T) {
		t.Parallel()

		sr := storedMatch("id-1", "https://fbref.com/en/matches/abc123/x")
		sr.Report.Stats = map[string]fbref.Value{
			"home_possession":  fbref.FloatValue(58),
			"away_possession":  fbref.FloatValue(42),
			"home_aerials_won": fbref.IntValue(12),
		}

		reports := &mock.ReportService{
			FindReportsFn: func(_ context.Context, _ fbref.ReportFilter) ([]*fbref.StoredReport, error) {
				return []*fbref.StoredReport{sr}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Reports: reports,
		}

		cmd := &main.ExportCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 2)

		header := strings.Split(lines[0], ",")
		idxPossession := indexOf(header, "home_possession")
		idxExtra := indexOf(header, "home_aerials_won")
		require.GreaterOrEqual(t, idxPossession, 0)
		require.GreaterOrEqual(t, idxExtra, 0)
		assert.Greater(t, idxExtra, idxPossession, "extras follow core columns")
		assert.Contains(t, lines[1], "Arsenal")
	})

	t.Run("writes to a file with --output", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportsFn: func(_ context.Context, _ fbref.ReportFilter) ([]*fbref.StoredReport, error) {
				return []*fbref.StoredReport{
					storedMatch("id-1", "https://fbref.com/en/matches/abc123/x"),
				}, nil
			},
		}

		path := filepath.Join(t.TempDir(), "out.csv")
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Reports: reports,
		}

		cmd := &main.ExportCmd{Output: path}
		err := cmd.Run(deps)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Arsenal")
		assert.Contains(t, stdout.String(), "Exported 1 matches")
	})

	t.Run("empty store is an error", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportsFn: func(_ context.Context, _ fbref.ReportFilter) ([]*fbref.StoredReport, error) {
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Reports: reports,
		}

		cmd := &main.ExportCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, fbref.ENOTFOUND, fbref.ErrorCode(err))
	})
}

func indexOf(haystack []string, needle string) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return -1
}
