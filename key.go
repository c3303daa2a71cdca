package fbref

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRE = regexp.MustCompile(`[^a-z0-9]+`)
	edgeRE     = regexp.MustCompile(`^_+|_+$`)
)

// NormalizeKey converts a statistic label to a snake_case key: ASCII
// lowercase, runs of non-alphanumeric characters collapsed to a single
// underscore, leading and trailing underscores stripped. The operation is
// idempotent.
func NormalizeKey(label string) string {
	key := nonAlnumRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(label)), "_")
	return edgeRE.ReplaceAllString(key, "")
}
