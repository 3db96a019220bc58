package jobtailor

import (
	"context"
	"regexp"
)

// SitemapService discovers job posting URLs from career site sitemaps.
type SitemapService interface {
	// DiscoverURLs finds job-related URLs from the sitemap of the site
	// hosting careersURL. Sitemaps are located through robots.txt with a
	// fallback to conventional root paths; sitemap indexes are resolved
	// recursively.
	//
	// The filter can be used to further include/exclude URLs by pattern.
	// If filter is nil, all job-related URLs are returned.
	DiscoverURLs(ctx context.Context, careersURL string, filter *URLFilter) ([]string, error)
}

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	// If include patterns exist, URL must match at least one
	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check exclude patterns
	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}

// LinkPriority represents crawl priority during discovery (higher = sooner).
type LinkPriority int

// Link priority levels for discovery ordering. Posting links jump the queue
// ahead of listing pagination, which in turn beats general navigation.
const (
	PriorityIgnore     LinkPriority = 0
	PriorityFooter     LinkPriority = 20
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
	PriorityListing    LinkPriority = 110
	PriorityPosting    LinkPriority = 120
)

// DiscoveredLink represents a URL found during discovery, with priority
// metadata.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
	Source   string // "nav", "content", "footer", "listing"
}

// LinkExtractor extracts prioritized links from HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns discovered links with priority.
	// The baseURL is used to resolve relative URLs.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)
}

// URLFrontier manages a discovery crawl queue with deduplication.
type URLFrontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link DiscoveredLink) bool

	// Pop returns the next URL by priority.
	// Returns false if the frontier is empty.
	Pop() (DiscoveredLink, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting. Scraping is sequential,
// so the limiter is the politeness mechanism toward target sites rather
// than a concurrency guard.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
