package scrape_test

import (
	"context"
	"testing"
	"time"

	fbref "github.com/raghavtripped/fbref-dashboard"
	"github.com/raghavtripped/fbref-dashboard/mock"
	"github.com/raghavtripped/fbref-dashboard/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_Discover(t *testing.T) {
	t.Parallel()

	t.Run("builds the schedule URL and extracts match links", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		scraper := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetchedURL = url
					return `<table>
						<td><a href="/en/matches/abc123/Arsenal-Chelsea-August-17-2025-Premier-League">Match Report</a></td>
						<td><a href="/en/matches/def456/Liverpool-Everton-August-18-2025-Premier-League">Match Report</a></td>
					</table>`, nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		urls, err := scraper.Discover(context.Background(), "premier-league", "2024-2025")

		require.NoError(t, err)
		assert.Equal(t, "https://fbref.com/en/comps/9/2024-2025/schedule/2024-2025-Premier-League-Scores-and-Fixtures", fetchedURL)
		assert.Equal(t, []string{
			"https://fbref.com/en/matches/abc123/Arsenal-Chelsea-August-17-2025-Premier-League",
			"https://fbref.com/en/matches/def456/Liverpool-Everton-August-18-2025-Premier-League",
		}, urls)
	})

	t.Run("unknown competition is invalid", func(t *testing.T) {
		t.Parallel()

		scraper := &scrape.Scraper{}
		_, err := scraper.Discover(context.Background(), "sunday-league", "2024-2025")

		assert.Equal(t, fbref.EINVALID, fbref.ErrorCode(err))
	})
}

func TestExtractMatchURLs(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates in first-occurrence order", func(t *testing.T) {
		t.Parallel()

		html := `
			<a href="/en/matches/abc123/Arsenal-Chelsea">one</a>
			<a href="/en/matches/def456/Liverpool-Everton">two</a>
			<a href="/en/matches/abc123/Arsenal-Chelsea">one again</a>
		`
		urls := scrape.ExtractMatchURLs(html)

		assert.Equal(t, []string{
			"https://fbref.com/en/matches/abc123/Arsenal-Chelsea",
			"https://fbref.com/en/matches/def456/Liverpool-Everton",
		}, urls)
	})

	t.Run("ignores non-match links", func(t *testing.T) {
		t.Parallel()

		html := `
			<a href="/en/squads/18bb7c10/Arsenal-Stats">squad</a>
			<a href="/en/comps/9/Premier-League-Stats">comp</a>
		`
		assert.Empty(t, scrape.ExtractMatchURLs(html))
	})
}

func TestCompetitions(t *testing.T) {
	t.Parallel()

	slugs := scrape.Competitions()
	assert.Contains(t, slugs, "premier-league")
	assert.Contains(t, slugs, "champions-league")
	assert.IsNonDecreasing(t, slugs)
}
