// Package rod provides a Fetcher backed by headless Chrome, for job boards
// that render postings client-side.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/jobtailor"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements jobtailor.Fetcher at compile time.
var _ jobtailor.Fetcher = (*Fetcher)(nil)

// Defaults for fetch behavior.
const (
	// DefaultFetchTimeout bounds a single fetch, including browser launch,
	// navigation, and rendering.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultRenderDelay is how long to wait after page load for
	// client-side rendering to settle before capturing HTML. Boards like
	// LinkedIn and Workday populate the posting well after the load event.
	DefaultRenderDelay = 2 * time.Second

	// DefaultUserAgent is a desktop Chrome user agent. Some boards serve
	// an empty shell or a block page to headless user agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Every Fetch launches a fresh browser and tears it down when done: no
// cookies, storage, or session state carries over between postings, and one
// crashed page never poisons the next fetch. Fetcher is safe for concurrent
// use by multiple goroutines.
type Fetcher struct {
	timeout     time.Duration
	renderDelay time.Duration
	userAgent   string
	closed      atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRenderDelay sets how long to wait after page load before capturing
// HTML. Defaults to DefaultRenderDelay.
func WithRenderDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderDelay = d
	}
}

// WithUserAgent sets the user agent presented to target sites.
// Defaults to DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher. No browser is launched until Fetch is
// called. Close must be called when the Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		renderDelay: DefaultRenderDelay,
		userAgent:   DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch launches a browser, navigates to the URL, waits for rendering, and
// returns the rendered HTML. The browser is always torn down before Fetch
// returns, on success and on every error path.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", jobtailor.Errorf(jobtailor.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return "", jobtailor.Errorf(jobtailor.EUNAVAILABLE, "launching browser: %v", err)
	}
	defer lnchr.Kill()

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return "", jobtailor.Errorf(jobtailor.EUNAVAILABLE, "connecting to browser: %v", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent: f.userAgent,
	}); err != nil {
		return "", err
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Let client-side rendering settle.
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(f.renderDelay):
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}
	return html, nil
}

// Close marks the Fetcher closed. Subsequent Fetch calls return EINVALID.
// Close is safe to call multiple times. There is no long-lived browser to
// tear down; each Fetch cleans up its own.
func (f *Fetcher) Close() error {
	f.closed.Store(true)
	return nil
}
