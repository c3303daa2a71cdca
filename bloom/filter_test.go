package bloom_test

import (
	"fmt"
	"testing"

	"github.com/raghavtripped/fbref-dashboard/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	url := "https://fbref.com/en/matches/abc123/Arsenal-Chelsea"
	assert.False(t, f.Test(url))

	f.Add(url)
	assert.True(t, f.Test(url))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.01)

	urls := make([]string, 500)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://fbref.com/en/matches/%06x/Match-%d", i, i)
		f.Add(urls[i])
	}

	for _, url := range urls {
		assert.True(t, f.Test(url))
	}
}
