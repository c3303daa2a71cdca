package goquery_test

import (
	"testing"

	fbref "github.com/raghavtripped/fbref-dashboard"
	"github.com/raghavtripped/fbref-dashboard/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReport_TeamStats(t *testing.T) {
	t.Parallel()

	t.Run("shots on target uses the site-specific key names", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="team_stats">
<tr><th colspan="2">Shots on Target</th></tr>
<tr><td>12 of 34 (35%)</td><td>3 of 10 (30%)</td></tr>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		assert.Equal(t, fbref.IntValue(12), report.Stats["home_shots_on_target"])
		assert.Equal(t, fbref.IntValue(34), report.Stats["home_shots_total"])
		assert.Equal(t, fbref.FloatValue(35), report.Stats["home_shots_on_target_pct"])
		assert.Equal(t, fbref.IntValue(3), report.Stats["away_shots_on_target"])
		assert.Equal(t, fbref.IntValue(10), report.Stats["away_shots_total"])
		assert.Equal(t, fbref.FloatValue(30), report.Stats["away_shots_on_target_pct"])
	})

	t.Run("generic N of M categories keep their own total key", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="team_stats">
<tr><th colspan="2">Saves</th></tr>
<tr><td>2 of 3 (67%)</td><td>5 of 12 (42%)</td></tr>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		assert.Equal(t, fbref.IntValue(2), report.Stats["home_saves"])
		assert.Equal(t, fbref.IntValue(3), report.Stats["home_saves_total"])
		assert.Equal(t, fbref.FloatValue(67), report.Stats["home_saves_pct"])
		assert.Equal(t, fbref.IntValue(5), report.Stats["away_saves"])
		assert.Equal(t, fbref.IntValue(12), report.Stats["away_saves_total"])
		assert.Equal(t, fbref.FloatValue(42), report.Stats["away_saves_pct"])
	})

	t.Run("counts card icon markers regardless of order", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="team_stats">
<tr><th colspan="2">Cards</th></tr>
<tr><td><span class="red_card"></span><span class="yellow_card"></span><span class="yellow_card"></span></td><td></td></tr>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		assert.Equal(t, fbref.IntValue(2), report.Stats["home_cards_yellow"])
		assert.Equal(t, fbref.IntValue(1), report.Stats["home_cards_red"])
		assert.Equal(t, fbref.IntValue(0), report.Stats["away_cards_yellow"])
		assert.Equal(t, fbref.IntValue(0), report.Stats["away_cards_red"])
	})

	t.Run("non-numeric cell yields null rather than failing", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="team_stats">
<tr><th colspan="2">Passing Accuracy</th></tr>
<tr><td>—</td><td>84%</td></tr>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		assert.True(t, report.Stats["home_passing_accuracy"].IsNull())
		assert.Equal(t, fbref.FloatValue(84), report.Stats["away_passing_accuracy"])
	})

	t.Run("category without a following data row is dropped", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="team_stats">
<tr><th colspan="2">Fouls</th></tr>
<tr><th colspan="2">Possession</th></tr>
<tr><td>48%</td><td>52%</td></tr>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		assert.NotContains(t, report.Stats, "home_fouls")
		assert.Equal(t, fbref.FloatValue(48), report.Stats["home_possession"])
	})

	t.Run("data row after a consumed category is ignored", func(t *testing.T) {
		t.Parallel()

		html := page(`<table id="team_stats">
<tr><th colspan="2">Possession</th></tr>
<tr><td>48%</td><td>52%</td></tr>
<tr><td>1</td><td>2</td></tr>
</table>`)

		report, err := goquery.NewParser().ParseReport("https://fbref.com/en/matches/abc123/x", html)

		require.NoError(t, err)
		assert.Len(t, report.Stats, 2)
	})
}
