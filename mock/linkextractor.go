package mock

import "github.com/fwojciec/jobtailor"

var _ jobtailor.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of jobtailor.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]jobtailor.DiscoveredLink, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]jobtailor.DiscoveredLink, error) {
	return e.ExtractLinksFn(html, baseURL)
}
