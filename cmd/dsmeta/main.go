package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dsmeta"
	"github.com/fwojciec/dsmeta/crawl"
	"github.com/fwojciec/dsmeta/gemini"
	"github.com/fwojciec/dsmeta/goquery"
	"github.com/fwojciec/dsmeta/htmltomarkdown"
	dshttp "github.com/fwojciec/dsmeta/http"
	"github.com/fwojciec/dsmeta/license"
	"github.com/fwojciec/dsmeta/metadata"
	"github.com/fwojciec/dsmeta/place"
	"github.com/fwojciec/dsmeta/rod"
	dsslog "github.com/fwojciec/dsmeta/slog"
	"github.com/fwojciec/dsmeta/sqlite"
	"github.com/fwojciec/dsmeta/temporal"
	"github.com/fwojciec/dsmeta/trafilatura"
	"google.golang.org/genai"
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

	// SQLite database used by the history service.
	DB *sqlite.DB

	// Services for end-to-end testing.
	MetadataService dsmeta.MetadataService
	HistoryService  dsmeta.ExtractionHistory
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dsmeta"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dsmeta --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DSMETA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.HistoryService = sqlite.NewHistoryService(m.DB)
	deps.DB = m.DB
	deps.History = m.HistoryService

	if cmd == "extract" {
		service, closeFn, err := m.buildMetadataService(ctx, &cli.Extract, stderr)
		if err != nil {
			return err
		}
		if closeFn != nil {
			defer closeFn()
		}
		m.MetadataService = service
		deps.Metadata = service
	}

	return kongCtx.Run(deps)
}

// buildMetadataService wires the extraction pipeline for one run. The
// returned close function shuts down the fetcher.
func (m *Main) buildMetadataService(ctx context.Context, cmd *ExtractCmd, stderr io.Writer) (dsmeta.MetadataService, func() error, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	var fetcher dsmeta.Fetcher
	var closeFn func() error
	if cmd.Browser {
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
		closeFn = rodFetcher.Close
	} else {
		fetcher = dshttp.NewFetcher()
	}

	var remote dsmeta.RemoteExtractor = gemini.NewExtractor(client)

	if cmd.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = dsslog.NewLoggingFetcher(fetcher, logger)
		remote = dsslog.NewLoggingRemoteExtractor(remote, logger)
	}

	scorer := goquery.NewScorer()
	analyzer := trafilatura.NewAnalyzer(htmltomarkdown.NewConverter())
	limiter := crawl.NewDomainLimiter(1.0)

	crawler := &crawl.Site{
		Fetcher:  fetcher,
		Analyzer: analyzer,
		Scorer:   scorer,
		Limiter:  limiter,
	}

	return &metadata.Orchestrator{
		License: &license.Resolver{
			Fetcher:  fetcher,
			Analyzer: analyzer,
			Remote:   remote,
			Scorer:   scorer,
			Sitemaps: dshttp.NewSitemapSource(nil),
			Limiter:  limiter,
		},
		Place:    &place.Extractor{Crawler: crawler, Remote: remote},
		Temporal: &temporal.Extractor{Crawler: crawler, Remote: remote},
	}, closeFn, nil
}

func defaultDBPath() string {
	if path := os.Getenv("DSMETA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "dsmeta.db"
	}
	dir := filepath.Join(home, ".dsmeta")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "dsmeta.db")
}
