package scrape

import (
	"context"
	"net/url"
	"regexp"
	"time"

	"github.com/fwojciec/jobtailor"
)

// Frontier configuration for discovery crawls.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// maxDiscoveryPages limits the number of pages fetched during a
	// discovery crawl to prevent runaway crawls on large career sites.
	maxDiscoveryPages = 50
)

// postingURLRes match URL shapes that individual job postings use on the
// known boards and on conventional careers sites. Listing and category
// pages do not match.
var postingURLRes = []*regexp.Regexp{
	regexp.MustCompile(`linkedin\.com/jobs/view/\d+`),
	regexp.MustCompile(`indeed\.com/viewjob`),
	regexp.MustCompile(`greenhouse\.io/[^/]+/jobs/\d+`),
	regexp.MustCompile(`jobs\.lever\.co/[^/]+/[0-9a-f-]{8,}`),
	regexp.MustCompile(`myworkdayjobs\.com/.+/job/`),
	regexp.MustCompile(`ashbyhq\.com/[^/]+/[0-9a-f-]{8,}`),
	regexp.MustCompile(`/(?:careers|jobs|positions|openings)/[^/]+/?$`),
}

// IsPostingURL reports whether a URL looks like an individual job posting
// rather than a listing or category page.
func IsPostingURL(rawURL string) bool {
	for _, re := range postingURLRes {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// Discoverer finds individual job posting URLs on a careers site.
// It tries the site's sitemap first and falls back to a bounded crawl of
// the careers pages when no sitemap is available.
type Discoverer struct {
	HTTPFetcher    jobtailor.Fetcher
	BrowserFetcher jobtailor.Fetcher
	Detector       jobtailor.BoardDetector
	Extractor      jobtailor.JobExtractor
	Links          jobtailor.LinkExtractor
	Sitemaps       jobtailor.SitemapService
	RateLimiter    jobtailor.DomainLimiter
	RetryDelays    []time.Duration
	MaxPages       int
}

// DiscoverJobURLs returns the posting URLs reachable from careersURL.
// The optional filter further restricts which URLs are returned.
func (d *Discoverer) DiscoverJobURLs(ctx context.Context, careersURL string, filter *jobtailor.URLFilter) ([]string, error) {
	if d.Sitemaps != nil {
		urls, err := d.Sitemaps.DiscoverURLs(ctx, careersURL, filter)
		if err == nil {
			var postings []string
			for _, u := range urls {
				if IsPostingURL(u) {
					postings = append(postings, u)
				}
			}
			if len(postings) > 0 {
				return postings, nil
			}
		}
	}

	return d.crawlForPostings(ctx, careersURL, filter)
}

// crawlForPostings walks the careers site from careersURL, following links
// in priority order until the page budget is exhausted or the frontier
// empties. Posting URLs are collected without being fetched; only listing
// and navigation pages are fetched for their links.
func (d *Discoverer) crawlForPostings(ctx context.Context, careersURL string, filter *jobtailor.URLFilter) ([]string, error) {
	source, err := url.Parse(careersURL)
	if err != nil {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "invalid careers URL: %v", err)
	}

	fetcher := d.probeFetcher(ctx, careersURL)

	maxPages := d.MaxPages
	if maxPages <= 0 {
		maxPages = maxDiscoveryPages
	}
	delays := d.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(jobtailor.DiscoveredLink{
		URL:      careersURL,
		Priority: jobtailor.PriorityNavigation,
	})

	var postings []string
	fetched := 0

	for {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}

		// Posting URLs are results, not crawl targets.
		if IsPostingURL(link.URL) {
			if filter.Match(link.URL) {
				postings = append(postings, link.URL)
			}
			continue
		}

		if fetched >= maxPages {
			continue
		}
		fetched++

		if d.RateLimiter != nil {
			if err := d.RateLimiter.Wait(ctx, source.Host); err != nil {
				break
			}
		}

		html, err := FetchWithRetryDelays(ctx, link.URL, fetcher.Fetch, nil, delays)
		if err != nil {
			continue
		}

		links, err := d.Links.ExtractLinks(html, link.URL)
		if err != nil {
			continue
		}
		for _, discovered := range links {
			discoveredURL, err := url.Parse(discovered.URL)
			if err != nil {
				continue
			}
			if discoveredURL.Host != source.Host {
				continue
			}
			if IsPostingURL(discovered.URL) {
				discovered.Priority = jobtailor.PriorityPosting
			}
			frontier.Push(discovered)
		}
	}

	return postings, nil
}

// boardRequiresJS records which known boards render postings client-side.
// Greenhouse and Lever serve full HTML; the rest need a browser.
var boardRequiresJS = map[jobtailor.Board]bool{
	jobtailor.BoardLinkedIn:   true,
	jobtailor.BoardIndeed:     true,
	jobtailor.BoardGreenhouse: false,
	jobtailor.BoardLever:      false,
	jobtailor.BoardWorkday:    true,
	jobtailor.BoardAshby:      true,
}

// probeFetcher chooses between plain HTTP and browser fetching for a site.
//
// Logic:
//  1. Known board: use the board's rendering requirements.
//  2. Unknown site: fetch once with each and compare extracted content.
//  3. Either fetcher missing or failing: use the other.
func (d *Discoverer) probeFetcher(ctx context.Context, probeURL string) jobtailor.Fetcher {
	if d.HTTPFetcher == nil {
		return d.BrowserFetcher
	}
	if d.BrowserFetcher == nil {
		return d.HTTPFetcher
	}

	if d.Detector != nil {
		if board, _ := d.Detector.Detect(probeURL); board != jobtailor.BoardUnknown {
			if boardRequiresJS[board] {
				return d.BrowserFetcher
			}
			return d.HTTPFetcher
		}
	}

	httpHTML, httpErr := d.HTTPFetcher.Fetch(ctx, probeURL)
	if httpErr != nil {
		return d.BrowserFetcher
	}
	if d.Extractor == nil {
		return d.HTTPFetcher
	}

	browserHTML, browserErr := d.BrowserFetcher.Fetch(ctx, probeURL)
	if browserErr != nil {
		return d.HTTPFetcher
	}

	if ContentDiffers(probeURL, httpHTML, browserHTML, d.Extractor) {
		return d.BrowserFetcher
	}
	return d.HTTPFetcher
}
