package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobtailor/clean"
	"github.com/fwojciec/jobtailor/goquery"
	"github.com/fwojciec/jobtailor/htmltomarkdown"
	jthttp "github.com/fwojciec/jobtailor/http"
	"github.com/fwojciec/jobtailor/readability"
	"github.com/fwojciec/jobtailor/rod"
	"github.com/fwojciec/jobtailor/scrape"
	"github.com/fwojciec/jobtailor/trafilatura"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobprobe"),
		kong.Description("Fetch and extract a single job posting for debugging"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.HTTP && cli.Browser {
		return fmt.Errorf("--http and --browser are mutually exclusive")
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	httpFetcher := jthttp.NewFetcher(jthttp.WithTimeout(timeout))

	switch {
	case cli.HTTP:
		deps.Fetcher = httpFetcher
	default:
		browser, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --http")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()

		if cli.Browser {
			deps.Fetcher = browser
		} else {
			deps.Fetcher = &scrape.RoutingFetcher{
				HTTP:     httpFetcher,
				Browser:  browser,
				Detector: goquery.NewDetector(),
			}
		}
	}

	deps.Extractor = goquery.NewExtractor(goquery.DefaultRegistry(),
		goquery.WithContentFallbacks(htmltomarkdown.NewConverter(),
			trafilatura.NewExtractor(), readability.NewExtractor()))

	if !cli.NoClean {
		deps.Cleaner = clean.NewCleaner()
	}

	cmd := &ProbeCmd{
		URL:  cli.URL,
		JSON: cli.JSON,
		Raw:  cli.Raw,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	HTTP    bool          `help:"Force the plain HTTP fetcher"`
	Browser bool          `help:"Force the headless browser fetcher"`
	NoClean bool          `help:"Skip description cleaning"`
	JSON    bool          `short:"j" help:"Print the extracted record as JSON"`
	Raw     bool          `help:"Print the raw fetched HTML and exit"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	URL     string        `arg:"" required:"" help:"Job posting URL to probe"`
}
