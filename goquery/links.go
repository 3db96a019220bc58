package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobtailor"
)

// Ensure LinkExtractor implements jobtailor.LinkExtractor at compile time.
var _ jobtailor.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts same-host links from careers/listing pages for
// job-URL discovery. Links found inside listing containers outrank plain
// content links, which outrank navigation and footer links.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (e *LinkExtractor) ExtractLinks(rawHTML string, baseURL string) ([]jobtailor.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "failed to parse HTML: %v", err)
	}

	// Track seen URLs with their index in the result slice for O(1) updates
	seen := make(map[string]int)
	var links []jobtailor.DiscoveredLink

	extract := func(selector string, priority jobtailor.LinkPriority, source string) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}

			// Skip non-HTTP links (javascript:, mailto:, etc.)
			if isNonHTTPLink(href) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}

			// Filter external links (exact host match)
			if !isSameHost(base, resolved) {
				return
			}

			link := jobtailor.DiscoveredLink{
				URL:      resolved,
				Priority: priority,
				Text:     strings.TrimSpace(sel.Text()),
				Source:   source,
			}

			if idx, ok := seen[resolved]; ok {
				if priority > links[idx].Priority {
					links[idx] = link
				}
			} else {
				seen[resolved] = len(links)
				links = append(links, link)
			}
		})
	}

	// Listing containers used by common career pages and ATS boards.
	listingSelectors := ".opening a[href], .posting a[href], .job-listing a[href], " +
		".jobs-list a[href], [data-testid*=\"job\"] a[href], li.job a[href]"
	extract(listingSelectors, jobtailor.PriorityListing, "listing")

	contentSelectors := "main a[href], article a[href], .content a[href], #content a[href]"
	extract(contentSelectors, jobtailor.PriorityContent, "content")

	navSelectors := "nav a[href], [role=\"navigation\"] a[href], .nav a[href], .menu a[href]"
	extract(navSelectors, jobtailor.PriorityNavigation, "nav")

	footerSelectors := "footer a[href], .footer a[href]"
	extract(footerSelectors, jobtailor.PriorityFooter, "footer")

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
// Fragments are stripped from the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
// This uses exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
