package scrape

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

// Ensure RoutingFetcher implements jobtailor.Fetcher.
var _ jobtailor.Fetcher = (*RoutingFetcher)(nil)

// RoutingFetcher picks between plain HTTP and browser fetching per URL.
// Known boards route by their rendering requirements; unknown sites go to
// the browser, which handles both server- and client-rendered pages.
type RoutingFetcher struct {
	HTTP     jobtailor.Fetcher
	Browser  jobtailor.Fetcher
	Detector jobtailor.BoardDetector
}

// Fetch delegates to the fetcher appropriate for the URL's board.
func (f *RoutingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.pick(url).Fetch(ctx, url)
}

func (f *RoutingFetcher) pick(url string) jobtailor.Fetcher {
	if f.HTTP == nil {
		return f.Browser
	}
	if f.Browser == nil {
		return f.HTTP
	}
	if f.Detector != nil {
		if board, _ := f.Detector.Detect(url); board != jobtailor.BoardUnknown && !boardRequiresJS[board] {
			return f.HTTP
		}
	}
	return f.Browser
}

// Close closes both underlying fetchers.
func (f *RoutingFetcher) Close() error {
	var firstErr error
	for _, fetcher := range []jobtailor.Fetcher{f.HTTP, f.Browser} {
		if fetcher == nil {
			continue
		}
		if err := fetcher.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
