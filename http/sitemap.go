package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/jobtailor"
)

// Ensure SitemapService implements jobtailor.SitemapService.
var _ jobtailor.SitemapService = (*SitemapService)(nil)

// maxSitemapFetches bounds how many sitemap documents a single discovery
// request downloads. Large company sites publish one sitemap per section
// (products, blog, careers); the budget keeps a walk of such an index from
// turning into a full-site download.
const maxSitemapFetches = 30

// jobSitemapHints mark sitemap index entries likely to list job postings,
// such as sitemap-jobs.xml or careers-sitemap.xml.
var jobSitemapHints = []string{"job", "career", "position", "opening", "vacan"}

// jobPathSegments are URL path segments under which job postings live.
var jobPathSegments = map[string]bool{
	"job":       true,
	"jobs":      true,
	"career":    true,
	"careers":   true,
	"position":  true,
	"positions": true,
	"opening":   true,
	"openings":  true,
	"vacancies": true,
	"roles":     true,
}

// SitemapService discovers job posting URLs from career site sitemaps.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	return &SitemapService{client: orDefault(client)}
}

func orDefault(client *http.Client) *http.Client {
	if client == nil {
		return http.DefaultClient
	}
	return client
}

// DiscoverURLs finds job-related URLs from the sitemap of the site hosting
// careersURL. Sitemaps are located through robots.txt with a fallback to
// the conventional root paths. Returns an empty slice (not nil) when the
// site has no sitemap or no job-related URLs.
//
// When careersURL has a non-root path (https://acme.com/careers/), URLs
// under that path are returned along with URLs under recognized job path
// segments elsewhere on the site. Postings frequently live under a sibling
// path such as /jobs/ while the careers landing page does not.
func (s *SitemapService) DiscoverURLs(ctx context.Context, careersURL string, filter *jobtailor.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(careersURL)
	if err != nil {
		return nil, fmt.Errorf("invalid careers URL: %w", err)
	}

	siteRoot := *base
	siteRoot.Path = ""

	sitemaps, err := s.locateSitemaps(ctx, &siteRoot)
	if err != nil {
		return nil, err
	}
	if len(sitemaps) == 0 {
		return []string{}, nil
	}

	walk := &sitemapWalk{svc: s, seen: make(map[string]bool), budget: maxSitemapFetches}
	seenURLs := make(map[string]bool)
	var all []string
	for _, sitemapURL := range sitemaps {
		urls, err := walk.visit(ctx, sitemapURL)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if !seenURLs[u] {
				seenURLs[u] = true
				all = append(all, u)
			}
		}
	}

	result := selectJobURLs(all, base.Path)
	if filter != nil {
		filtered := result[:0]
		for _, u := range result {
			if filter.Match(u) {
				filtered = append(filtered, u)
			}
		}
		result = filtered
	}
	if result == nil {
		result = []string{}
	}
	return result, nil
}

// selectJobURLs keeps URLs under the careers path prefix or under a known
// job path segment. With a root prefix only the segment check applies.
func selectJobURLs(urls []string, prefix string) []string {
	if prefix == "/" {
		prefix = ""
	}
	var selected []string
	for _, u := range urls {
		if hasJobPath(u) || (prefix != "" && underPathPrefix(u, prefix)) {
			selected = append(selected, u)
		}
	}
	return selected
}

// hasJobPath reports whether a URL looks job-related from its host or its
// path segments. Hosts like jobs.lever.co and acme.wd5.myworkdayjobs.com
// match on the host check.
func hasJobPath(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	if strings.Contains(host, "job") || strings.Contains(host, "career") {
		return true
	}
	for _, segment := range strings.Split(strings.ToLower(parsed.Path), "/") {
		if jobPathSegments[segment] {
			return true
		}
	}
	return false
}

// underPathPrefix checks whether a URL's path sits under prefix, respecting
// segment boundaries: /careers matches /careers/intro but not /careers-old.
func underPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(parsed.Path, prefix)
}

// locateSitemaps finds sitemap URLs from robots.txt Sitemap directives,
// falling back to /sitemap.xml and /sitemap_index.xml.
func (s *SitemapService) locateSitemaps(ctx context.Context, siteRoot *url.URL) ([]string, error) {
	robotsURL := siteRoot.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.sitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	for _, path := range []string{"/sitemap.xml", "/sitemap_index.xml"} {
		candidate := siteRoot.ResolveReference(&url.URL{Path: path})
		exists, err := s.urlExists(ctx, candidate.String())
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if exists {
			return []string{candidate.String()}, nil
		}
	}

	return nil, nil
}

// sitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) sitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			continue
		}
		if sitemapURL := strings.TrimSpace(line[len("sitemap:"):]); sitemapURL != "" {
			sitemaps = append(sitemaps, sitemapURL)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// sitemapWalk tracks visited sitemaps and the remaining fetch budget
// across one DiscoverURLs call.
type sitemapWalk struct {
	svc    *SitemapService
	seen   map[string]bool
	budget int
}

// visit fetches and parses a sitemap, handling both urlset and
// sitemapindex documents. Revisits and over-budget fetches yield nothing.
func (w *sitemapWalk) visit(ctx context.Context, sitemapURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w.seen[sitemapURL] || w.budget <= 0 {
		return nil, nil
	}
	w.seen[sitemapURL] = true
	w.budget--

	body, err := w.svc.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		return w.visitIndex(ctx, root)
	}
	return parseURLSet(root), nil
}

// visitIndex walks a <sitemapindex>, visiting job-hinted child sitemaps
// first. When the hinted children yield URLs the remaining children are
// skipped; the jobs sitemap on a large site is the one that matters.
// A child that fails to fetch or parse is skipped rather than failing
// the whole walk.
func (w *sitemapWalk) visitIndex(ctx context.Context, root *etree.Element) ([]string, error) {
	var hinted, rest []string
	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		childURL := strings.TrimSpace(loc.Text())
		if childURL == "" {
			continue
		}
		if likelyJobSitemap(childURL) {
			hinted = append(hinted, childURL)
		} else {
			rest = append(rest, childURL)
		}
	}

	var all []string
	for _, group := range [][]string{hinted, rest} {
		for _, childURL := range group {
			urls, err := w.visit(ctx, childURL)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				continue
			}
			all = append(all, urls...)
		}
		if len(all) > 0 {
			break
		}
	}
	return all, nil
}

// likelyJobSitemap reports whether a sitemap URL hints at job content.
func likelyJobSitemap(sitemapURL string) bool {
	lower := strings.ToLower(sitemapURL)
	for _, hint := range jobSitemapHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// parseURLSet extracts URLs from a <urlset> element.
func parseURLSet(root *etree.Element) []string {
	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

// urlExists checks if a URL returns 200 OK.
func (s *SitemapService) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
