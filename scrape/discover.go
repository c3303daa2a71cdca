package scrape

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// competitionIDs maps competition slugs to FBref numeric competition IDs.
var competitionIDs = map[string]int{
	"premier-league":   9,
	"la-liga":          12,
	"serie-a":          11,
	"bundesliga":       20,
	"ligue-1":          13,
	"champions-league": 8,
	"mls":              22,
}

// matchURLPathRE matches match report paths on a schedule page.
var matchURLPathRE = regexp.MustCompile(`/en/matches/[a-f0-9]+/[A-Za-z0-9\-]+`)

// Competitions returns the known competition slugs in sorted order.
func Competitions() []string {
	slugs := make([]string, 0, len(competitionIDs))
	for slug := range competitionIDs {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Discover fetches the schedule page for a competition season and returns
// all match report URLs found on it, in document order, deduplicated.
func (s *Scraper) Discover(ctx context.Context, competition, season string) ([]string, error) {
	id, ok := competitionIDs[competition]
	if !ok {
		return nil, fbref.Errorf(fbref.EINVALID, "unknown competition %q (known: %s)",
			competition, strings.Join(Competitions(), ", "))
	}

	name := titleSlug(competition)
	scheduleURL := fmt.Sprintf("https://fbref.com/en/comps/%d/%s/schedule/%s-%s-Scores-and-Fixtures",
		id, season, season, name)

	html, err := s.fetchPage(ctx, scheduleURL)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule %s: %w", scheduleURL, err)
	}

	return ExtractMatchURLs(html), nil
}

// ExtractMatchURLs extracts all match report URLs from schedule page HTML,
// deduplicated in first-occurrence order.
func ExtractMatchURLs(html string) []string {
	seen := make(map[string]bool)
	var urls []string
	for _, path := range matchURLPathRE.FindAllString(html, -1) {
		if seen[path] {
			continue
		}
		seen[path] = true
		urls = append(urls, "https://fbref.com"+path)
	}
	return urls
}

// titleSlug converts a competition slug to its URL title form,
// e.g. "premier-league" -> "Premier-League".
func titleSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "-")
}
