package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/eatulrajput/campusgpt"
	"github.com/eatulrajput/campusgpt/crawl"
	"github.com/eatulrajput/campusgpt/goquery"
	campushttp "github.com/eatulrajput/campusgpt/http"
	"github.com/eatulrajput/campusgpt/pdf"
	"github.com/eatulrajput/campusgpt/robots"
	campusslog "github.com/eatulrajput/campusgpt/slog"
	"github.com/eatulrajput/campusgpt/sqlite"
	"github.com/eatulrajput/campusgpt/tfidf"
)

func main() {
	ctx := context.Background()

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

	// Request-scoped database connection (API reads, index rebuilds).
	DB *sqlite.DB

	// Dedicated connection owned by the background crawl job.
	CrawlDB *sqlite.DB

	// Services for end-to-end testing.
	PageService campusgpt.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.CrawlDB != nil {
		if err := m.CrawlDB.Close(); err != nil {
			return err
		}
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("campusgpt"),
		kong.Description("Crawl a campus website and search its pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'campusgpt --help' to see available commands")
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

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CAMPUSGPT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.PageService = sqlite.NewPageService(m.DB)
	deps.Pages = m.PageService
	deps.Index = campusslog.NewLoggingSearchIndex(tfidf.NewIndex(m.PageService), logger)

	// The crawl job runs in its own goroutine with its own connection so
	// that a long crawl never contends with request-scoped reads.
	if cmd == "serve" || cmd == "crawl" {
		m.CrawlDB = sqlite.NewDB(m.DBPath)
		if err := m.CrawlDB.Open(); err != nil {
			return fmt.Errorf("failed to open crawl database at %q: %w", m.DBPath, err)
		}

		deps.Crawler = &crawl.Engine{
			Pages:    sqlite.NewPageService(m.CrawlDB),
			Fetcher:  campusslog.NewLoggingFetcher(campushttp.NewFetcher(), logger),
			HTML:     goquery.NewExtractor(),
			PDF:      pdf.NewExtractor(),
			Links:    goquery.NewLinkExtractor(),
			Robots:   robots.NewPolicy(campusgpt.UserAgent),
			Sitemaps: campushttp.NewSitemapService(nil),
			Logger:   logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CAMPUSGPT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "campusgpt.db"
	}
	dir := filepath.Join(home, ".campusgpt")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "campusgpt.db")
}
