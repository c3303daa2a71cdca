package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	fbref "github.com/raghavtripped/fbref-dashboard"
	"github.com/raghavtripped/fbref-dashboard/fs"
	"github.com/raghavtripped/fbref-dashboard/goquery"
	"github.com/raghavtripped/fbref-dashboard/rod"
	fbslog "github.com/raghavtripped/fbref-dashboard/slog"
	"github.com/raghavtripped/fbref-dashboard/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Directory for cached page HTML.
	CacheDir string

	// SQLite database used by the report service.
	DB *sqlite.DB

	// Report service for end-to-end testing.
	ReportService fbref.ReportService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		CacheDir: defaultCacheDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A .env file can supply FBREF_DB and FBREF_CACHE_DIR; absence is fine.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fbref"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fbref --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FBREF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ReportService = sqlite.NewReportService(m.DB)
	deps.DB = m.DB
	deps.Reports = m.ReportService
	deps.Parser = goquery.NewParser()
	deps.Cache = fs.NewCache(m.CacheDir)

	// Only the scrape command needs a browser; everything else should work
	// without Chrome installed.
	if cmd == "scrape" {
		deps.NewFetcher = func() (fbref.Fetcher, error) {
			var opts []rod.ManagerOption
			if cli.Scrape.Headful {
				opts = append(opts, rod.WithHeadful())
			}
			manager, err := rod.NewBrowserManager(opts...)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return nil, fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher, err := rod.NewFetcherWithManager(manager)
			if err != nil {
				return nil, err
			}
			return fbslog.NewLoggingFetcher(fetcher, logger), nil
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("FBREF_DB"); path != "" {
		return path
	}
	dir := dataDir()
	return filepath.Join(dir, "fbref.db")
}

func defaultCacheDir() string {
	if path := os.Getenv("FBREF_CACHE_DIR"); path != "" {
		return path
	}
	return filepath.Join(dataDir(), "cache")
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".fbref")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
