package main

import (
	"context"
	"io"
	"log/slog"

	fbref "github.com/raghavtripped/fbref-dashboard"
	"github.com/raghavtripped/fbref-dashboard/fs"
	"github.com/raghavtripped/fbref-dashboard/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB      *sqlite.DB
	Reports fbref.ReportService
	Parser  fbref.Parser
	Cache   *fs.Cache

	// NewFetcher constructs the browser fetcher. Wired only for commands
	// that fetch pages, so the rest work without Chrome.
	NewFetcher func() (fbref.Fetcher, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape match reports from FBref"`
	Parse  ParseCmd  `cmd:"" help:"Parse cached match pages into the database"`
	List   ListCmd   `cmd:"" help:"List stored matches"`
	Show   ShowCmd   `cmd:"" help:"Show a stored match report"`
	Export ExportCmd `cmd:"" help:"Export stored matches as CSV"`
	Serve  ServeCmd  `cmd:"" help:"Serve the dashboard API"`
	Delete DeleteCmd `cmd:"" help:"Delete stored matches"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" optional:"" help:"Match report URLs to scrape"`
	Competition string   `short:"c" help:"Competition slug for schedule discovery (e.g. premier-league)"`
	Season      string   `short:"s" help:"Season for schedule discovery (e.g. 2024-2025)"`
	Delay       int      `default:"45" help:"Seconds between page fetches"`
	Headful     bool     `help:"Run the browser with a visible window"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Force bool `short:"f" help:"Re-parse pages that are already stored"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Competition string `short:"c" help:"Filter by competition"`
	Season      string `short:"s" help:"Filter by season"`
	Team        string `short:"t" help:"Filter by team (either side)"`
	Outcome     string `short:"o" help:"Filter by outcome (HOME_WIN, AWAY_WIN, DRAW)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	MatchID string `arg:"" help:"FBref match ID (the hex segment of the match URL)"`
	JSON    bool   `help:"Print the full report as JSON"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `short:"o" help:"Output file (default stdout)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" help:"Bind address"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	MatchID string `arg:"" optional:"" help:"FBref match ID to delete"`
	All     bool   `help:"Delete every stored match"`
	Force   bool   `help:"Confirm deletion"`
}
