package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/clean"
	"github.com/fwojciec/jobtailor/gemini"
	"github.com/fwojciec/jobtailor/goquery"
	"github.com/fwojciec/jobtailor/htmltomarkdown"
	jthttp "github.com/fwojciec/jobtailor/http"
	"github.com/fwojciec/jobtailor/readability"
	"github.com/fwojciec/jobtailor/rod"
	"github.com/fwojciec/jobtailor/scrape"
	jtslog "github.com/fwojciec/jobtailor/slog"
	"github.com/fwojciec/jobtailor/sqlite"
	"github.com/fwojciec/jobtailor/trafilatura"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	JobService   jobtailor.JobService
	BatchService jobtailor.BatchService
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
		kong.Name("jobtailor"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobtailor --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// First word of the kong command ("scrape <urls>" -> "scrape");
	// global flags like --debug may precede the command in args.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set JOBTAILOR_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.JobService = sqlite.NewJobService(m.DB)
	m.BatchService = sqlite.NewBatchService(m.DB)
	deps.DB = m.DB
	deps.Jobs = m.JobService
	deps.Batches = m.BatchService

	// Debug mode wraps services with logging decorators writing to stderr.
	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if cmd == "scrape" || cmd == "discover" {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to set up browser: %w", err)
		}
		defer browser.Close()

		var browserFetcher jobtailor.Fetcher = browser
		httpFetcher := jthttp.NewFetcher()
		detector := goquery.NewDetector()
		var extractor jobtailor.JobExtractor = goquery.NewExtractor(goquery.DefaultRegistry(),
			goquery.WithContentFallbacks(htmltomarkdown.NewConverter(),
				trafilatura.NewExtractor(), readability.NewExtractor()))

		if logger != nil {
			browserFetcher = rod.NewLoggingFetcher(browser, logger)
			extractor = jtslog.NewLoggingExtractor(extractor, detector, logger)
		}

		if cmd == "scrape" {
			fetcher := &scrape.RoutingFetcher{
				HTTP:     httpFetcher,
				Browser:  browserFetcher,
				Detector: detector,
			}
			var cleaner jobtailor.Cleaner
			if !cli.Scrape.NoClean {
				cleaner = clean.NewCleaner()
				if logger != nil {
					cleaner = jtslog.NewLoggingCleaner(cleaner, logger)
				}
			}
			deps.Scraper = &scrape.Scraper{
				Fetcher:     fetcher,
				Extractor:   extractor,
				Cleaner:     cleaner,
				RateLimiter: scrape.NewDomainLimiter(cli.Scrape.Rate),
			}
		}

		if cmd == "discover" {
			var sitemaps jobtailor.SitemapService = jthttp.NewSitemapService(nil)
			if logger != nil {
				sitemaps = jtslog.NewLoggingSitemapService(sitemaps, logger)
			}
			deps.Discoverer = &scrape.Discoverer{
				HTTPFetcher:    httpFetcher,
				BrowserFetcher: browserFetcher,
				Detector:       detector,
				Extractor:      extractor,
				Links:          goquery.NewLinkExtractor(),
				Sitemaps:       sitemaps,
				RateLimiter:    scrape.NewDomainLimiter(1.0),
				MaxPages:       cli.Discover.MaxPages,
			}
		}
	}

	if cmd == "tailor" || cmd == "keywords" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Tailorer = gemini.NewTailorer(client)

		if cmd == "tailor" {
			tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			deps.TokenCounter = tokenCounter
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting prompts before sending them.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("JOBTAILOR_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobtailor.db"
	}
	dir := filepath.Join(home, ".jobtailor")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jobtailor.db")
}
