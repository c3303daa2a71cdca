package main_test

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	fbref "github.com/raghavtripped/fbref-dashboard"
	main "github.com/raghavtripped/fbref-dashboard/cmd/fbref"
	"github.com/raghavtripped/fbref-dashboard/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a bytes.Buffer written by the serve goroutine and read
// by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("serves the API until the context is canceled", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			FindReportsFn: func(_ context.Context, _ fbref.ReportFilter) ([]*fbref.StoredReport, error) {
				return nil, nil
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		stdout := &syncBuffer{}
		deps := &main.Dependencies{
			Ctx:     ctx,
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Reports: reports,
			Parser:  &mock.Parser{},
		}

		cmd := &main.ServeCmd{Addr: "127.0.0.1:0"}
		done := make(chan error, 1)
		go func() { done <- cmd.Run(deps) }()

		// Wait for the server to announce its address.
		var base string
		require.Eventually(t, func() bool {
			out := stdout.String()
			if i := strings.Index(out, "http://"); i >= 0 {
				base = strings.TrimSpace(strings.SplitN(out[i:], "\n", 2)[0])
				return strings.Contains(base, ":")
			}
			return false
		}, 2*time.Second, 10*time.Millisecond)

		resp, err := http.Get(base + "/api/matches")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("serve did not shut down after cancellation")
		}
	})
}
