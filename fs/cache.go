// Package fs provides an on-disk HTML cache so repeated scrapes skip the
// network. Pages are stored one file per match, named by match identifier.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Ensure Cache implements fbref.PageCache at compile time.
var _ fbref.PageCache = (*Cache)(nil)

// minPageSize is the smallest cached page considered plausible; anything
// shorter is a truncated or error response.
const minPageSize = 1000

// Cache stores fetched HTML under a base directory, keyed by the match
// identifier segment of the URL (hashed when the URL has none).
type Cache struct {
	dir string
}

// NewCache creates a Cache rooted at dir. The directory is created on the
// first Put.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// path returns the cache file path for a URL.
func (c *Cache) path(url string) string {
	if id := fbref.MatchID(url); id != "" {
		return filepath.Join(c.dir, id+".html")
	}
	return filepath.Join(c.dir, fmt.Sprintf("%016x.html", xxhash.Sum64String(url)))
}

// Get returns the cached HTML for a URL if present and plausible: long
// enough to be a real page and carrying either match or schedule markers.
func (c *Cache) Get(url string) (string, bool) {
	data, err := os.ReadFile(c.path(url))
	if err != nil {
		return "", false
	}
	html := string(data)
	if len(html) < minPageSize {
		return "", false
	}
	if !strings.Contains(html, "scorebox") && !strings.Contains(html, "sched") {
		return "", false
	}
	return html, true
}

// Put stores HTML for a URL.
func (c *Cache) Put(url string, html string) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(c.path(url), []byte(html), 0644)
}

// List returns the match identifiers of all cached pages.
func (c *Cache) List() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".html") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".html"))
	}
	return ids, nil
}
