// Package goquery provides the site-aware job posting extractor. It applies
// board-specific CSS selector chains where the URL identifies a known job
// board, and layered generic strategies everywhere else.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobtailor"
	"golang.org/x/net/html"
)

// Ensure Extractor implements jobtailor.JobExtractor at compile time.
var _ jobtailor.JobExtractor = (*Extractor)(nil)

// genericMinDescriptionLen is the minimum text length for a generic content
// container to be accepted as a description. Shorter matches are almost
// always navigation, not content.
const genericMinDescriptionLen = 500

// genericContainers are tried, in order, when no board-specific description
// selector matches.
var genericContainers = []string{
	"article", "main", `[role="main"]`,
	".content", "#content", ".main-content",
	".job-details", ".position-details",
	`[data-testid*="description"]`, `[data-testid*="job"]`,
}

var (
	titleSuffixRe   = regexp.MustCompile(`[|\-–—][^|\-–—]*$`)
	greenhouseURLRe = regexp.MustCompile(`greenhouse\.io/([^/?#]+)`)
	leverURLRe      = regexp.MustCompile(`jobs\.lever\.co/([^/?#]+)`)

	// Company mention patterns, tried against page text. Case-sensitive:
	// the capital letter anchors the company name.
	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`at\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+\||\s+-|\s+—|\s*\n|$)`),
		regexp.MustCompile(`Join\s+([A-Z][A-Za-z0-9\s&]+)`),
		regexp.MustCompile(`About\s+([A-Z][A-Za-z0-9\s&]+)`),
	}
)

// Extractor locates job title, company, and raw description within
// arbitrary job-board HTML. Candidate strategies are layered fallback
// chains: any one failing or matching nothing advances to the next, so no
// single brittle selector can abort extraction.
type Extractor struct {
	detector  jobtailor.BoardDetector
	registry  *Registry
	fallbacks []jobtailor.ContentExtractor
	converter jobtailor.Converter
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithContentFallbacks adds generic main-content extractors tried, in
// order, after the generic container queries and before the raw body
// fallback. A Converter must also be configured for their HTML output to be
// usable as text.
func WithContentFallbacks(converter jobtailor.Converter, extractors ...jobtailor.ContentExtractor) ExtractorOption {
	return func(e *Extractor) {
		e.converter = converter
		e.fallbacks = extractors
	}
}

// NewExtractor creates an Extractor using the given selector registry.
func NewExtractor(registry *Registry, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		detector: NewDetector(),
		registry: registry,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract locates the job fields in the page. It never fails: missing
// signals degrade to sentinel defaults and the result is never nil.
func (e *Extractor) Extract(pageURL, rawHTML string) *jobtailor.Extraction {
	board, domain := e.detector.Detect(pageURL)

	result := &jobtailor.Extraction{
		Title:   jobtailor.UnknownTitle,
		Company: jobtailor.UnknownCompany,
		Domain:  domain,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return result
	}

	selectors := e.registry.Get(board)

	description := ""
	if selectors != nil {
		description = trySelectorChain(doc, selectors.Description)
	}
	if description == "" {
		description = e.genericDescription(doc, rawHTML)
	}
	result.Description = description

	title := ""
	if selectors != nil {
		title = trySelectorChain(doc, selectors.Title)
	}
	if title == "" {
		title = genericTitle(doc)
	}
	if title != "" {
		result.Title = title
	}

	company := ""
	if selectors != nil {
		company = trySelectorChain(doc, selectors.Company)
	}
	if company == "" {
		company = genericCompany(doc, pageURL, domain)
	}
	if company != "" {
		result.Company = company
	}

	return result
}

// trySelectorChain returns the first selector's non-empty joined text.
// Text from all matching elements is joined with single spaces.
func trySelectorChain(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		text := try(func() string {
			var parts []string
			doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
				if t := collapseSpace(sel.Text()); t != "" {
					parts = append(parts, t)
				}
			})
			return strings.Join(parts, " ")
		})
		if text != "" {
			return text
		}
	}
	return ""
}

// genericDescription runs the layered description fallbacks: common content
// containers, then the configured content extractors, then the document
// body with chrome elements removed.
func (e *Extractor) genericDescription(doc *goquery.Document, rawHTML string) string {
	for _, container := range genericContainers {
		text := try(func() string {
			sel := doc.Find(container)
			if sel.Length() == 0 {
				return ""
			}
			return nodeText(sel.First())
		})
		if len(text) > genericMinDescriptionLen {
			return text
		}
	}

	// Readability-style main content extraction. Only usable with a
	// converter to flatten the extracted HTML into text.
	if e.converter != nil {
		for _, extractor := range e.fallbacks {
			text := try(func() string {
				content, err := extractor.Extract(rawHTML)
				if err != nil || content == nil || content.HTML == "" {
					return ""
				}
				markdown, err := e.converter.Convert(content.HTML)
				if err != nil {
					return ""
				}
				return strings.TrimSpace(markdown)
			})
			if len(text) > genericMinDescriptionLen {
				return text
			}
		}
	}

	// Last resort: full body text minus obvious chrome.
	return try(func() string {
		body := doc.Find("body")
		if body.Length() == 0 {
			return nodeText(doc.Selection)
		}
		body.Find("header, footer, nav, aside, script, style").Remove()
		return nodeText(body)
	})
}

// genericTitle tries the first heading, then og:title, then the <title>
// tag with the trailing site-name suffix (after the last pipe or dash)
// stripped.
func genericTitle(doc *goquery.Document) string {
	if title := try(func() string {
		return collapseSpace(doc.Find("h1").First().Text())
	}); title != "" {
		return title
	}

	if title := try(func() string {
		content, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
		return strings.TrimSpace(content)
	}); title != "" {
		return title
	}

	return try(func() string {
		title := collapseSpace(doc.Find("title").First().Text())
		if title == "" {
			return ""
		}
		return strings.TrimSpace(titleSuffixRe.ReplaceAllString(title, ""))
	})
}

// genericCompany tries an employer meta tag, URL-embedded company slugs for
// boards that carry them, company mention patterns in the page text, and
// finally the domain's first label.
func genericCompany(doc *goquery.Document, pageURL, domain string) string {
	if company := try(func() string {
		content, _ := doc.Find(`meta[name="employer"]`).First().Attr("content")
		return strings.TrimSpace(content)
	}); company != "" {
		return company
	}

	for _, re := range []*regexp.Regexp{greenhouseURLRe, leverURLRe} {
		if m := re.FindStringSubmatch(pageURL); m != nil {
			return titleCase(strings.ReplaceAll(m[1], "-", " "))
		}
	}

	if company := try(func() string {
		text := doc.Text()
		for _, re := range companyPatterns {
			if m := re.FindStringSubmatch(text); m != nil {
				return strings.TrimSpace(m[1])
			}
		}
		return ""
	}); company != "" {
		return company
	}

	if label, _, ok := strings.Cut(domain, "."); ok && label != "" {
		return titleCase(strings.ReplaceAll(label, "-", " "))
	}
	return ""
}

// try runs a candidate strategy, converting any panic into an empty result
// so the caller advances to the next candidate. Extraction must survive
// every malformed page and invalid selector.
func try(fn func() string) (result string) {
	defer func() {
		if recover() != nil {
			result = ""
		}
	}()
	return fn()
}

// nodeText extracts text content with newline separators between text
// nodes, skipping script and style elements. This mirrors how block-level
// structure reads once tags are gone.
func nodeText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range sel.Nodes {
		walk(node)
	}
	return strings.Join(parts, "\n")
}

// collapseSpace trims and collapses internal whitespace runs to single
// spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
