package goquery_test

import (
	"testing"

	fbref "github.com/raghavtripped/fbref-dashboard"
	"github.com/raghavtripped/fbref-dashboard/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReport_PlayerTables(t *testing.T) {
	t.Parallel()

	t.Run("reads headers from the last header row and coerces cells", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="stats_home_summary">
<thead>
<tr><th colspan="6">Performance</th></tr>
<tr><th>Player</th><th>#</th><th>Nation</th><th>Age</th><th>Gls</th><th>xG</th></tr>
</thead>
<tbody>
<tr><th>Bukayo Saka</th><td>7</td><td>eng ENG</td><td>22</td><td>2</td><td>1.2</td></tr>
</tbody>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		rows := report.PlayerStats["home_summary"]
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, fbref.TextValue("Bukayo Saka"), row["player"])
		// Empty header falls back to a positional key.
		assert.Equal(t, fbref.IntValue(7), row["col_1"])
		// Identity columns stay text even when numeric.
		assert.Equal(t, fbref.TextValue("eng ENG"), row["nation"])
		assert.Equal(t, fbref.TextValue("22"), row["age"])
		assert.Equal(t, fbref.IntValue(2), row["gls"])
		assert.Equal(t, fbref.FloatValue(1.2), row["xg"])
	})

	t.Run("skips separator rows, short rows, and placeholder names", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="stats_away_passing">
<thead>
<tr><th>Player</th><th>Nation</th><th>Cmp</th><th>Att</th></tr>
</thead>
<tbody>
<tr class="spacer partial_table"><th></th><td></td><td></td><td></td></tr>
<tr class="thead"><th>Player</th><td>Nation</td><td>Cmp</td><td>Att</td></tr>
<tr><th>Player</th><td>Nation</td><td>Cmp</td><td>Att</td></tr>
<tr><th>Short Row</th><td>1</td></tr>
<tr><th>Enzo Fernández</th><td>ar ARG</td><td>61</td><td>70</td></tr>
</tbody>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		rows := report.PlayerStats["away_passing"]
		require.Len(t, rows, 1)
		assert.Equal(t, "Enzo Fernández", rows[0].Player())
		assert.Equal(t, fbref.IntValue(61), rows[0]["cmp"])
	})

	t.Run("goalkeeper tables land under the gk key", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="keeper_stats_home">
<thead>
<tr><th>Player</th><th>Nation</th><th>SoTA</th><th>Saves</th></tr>
</thead>
<tbody>
<tr><th>David Raya</th><td>es ESP</td><td>5</td><td>4</td></tr>
</tbody>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		rows := report.PlayerStats["home_gk"]
		require.Len(t, rows, 1)
		assert.Equal(t, "David Raya", rows[0].Player())
		assert.Equal(t, fbref.IntValue(4), rows[0]["saves"])
	})

	t.Run("families with no rows are omitted", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="stats_home_misc">
<thead><tr><th>Player</th><th>Nation</th><th>Fls</th></tr></thead>
<tbody></tbody>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		assert.NotContains(t, report.PlayerStats, "home_misc")
	})

	t.Run("preserves document row order", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="stats_home_defense">
<thead><tr><th>Player</th><th>Nation</th><th>Tkl</th></tr></thead>
<tbody>
<tr><th>William Saliba</th><td>fr FRA</td><td>3</td></tr>
<tr><th>Gabriel</th><td>br BRA</td><td>5</td></tr>
</tbody>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		rows := report.PlayerStats["home_defense"]
		require.Len(t, rows, 2)
		assert.Equal(t, "William Saliba", rows[0].Player())
		assert.Equal(t, "Gabriel", rows[1].Player())
	})
}
