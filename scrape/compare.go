package scrape

import "github.com/fwojciec/jobtailor"

// ContentDiffers compares descriptions extracted from HTTP-fetched HTML vs
// browser-fetched HTML for the same URL. Returns true if the browser
// rendering yields a significantly longer description (>50%), suggesting the
// posting is client-side rendered and needs a real browser to scrape.
func ContentDiffers(pageURL, httpHTML, browserHTML string, extractor jobtailor.JobExtractor) bool {
	httpLen := len(extractor.Extract(pageURL, httpHTML).Description)
	browserLen := len(extractor.Extract(pageURL, browserHTML).Description)

	// Handle empty HTTP content
	if httpLen == 0 && browserLen > 0 {
		return true
	}

	// Check if browser content is >50% longer
	threshold := float64(httpLen) * 1.5
	return float64(browserLen) > threshold
}
