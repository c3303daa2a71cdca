package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/raghavtripped/fbref-dashboard/cmd/fbref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMain returns a Main wired to a throwaway database and cache dir.
func testMain(t *testing.T) *main.Main {
	t.Helper()
	dir := t.TempDir()
	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "fbref.db")
	m.CacheDir = filepath.Join(dir, "cache")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no command prints help and errors", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help runs without opening the database", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "scrape")
		assert.Contains(t, stdout.String(), "serve")
	})

	t.Run("list works end to end against an empty database", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"list"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matches")
	})

	t.Run("unknown command is an error", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		err := m.Run(context.Background(), []string{"frobnicate"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})
}
