package mock

import "github.com/fwojciec/jobtailor"

var _ jobtailor.JobExtractor = (*JobExtractor)(nil)

// JobExtractor is a mock implementation of jobtailor.JobExtractor.
type JobExtractor struct {
	ExtractFn func(pageURL, html string) *jobtailor.Extraction
}

func (e *JobExtractor) Extract(pageURL, html string) *jobtailor.Extraction {
	return e.ExtractFn(pageURL, html)
}

var _ jobtailor.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of jobtailor.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*jobtailor.Content, error)
}

func (e *ContentExtractor) Extract(html string) (*jobtailor.Content, error) {
	return e.ExtractFn(html)
}

var _ jobtailor.BoardDetector = (*BoardDetector)(nil)

// BoardDetector is a mock implementation of jobtailor.BoardDetector.
type BoardDetector struct {
	DetectFn func(pageURL string) (jobtailor.Board, string)
}

func (d *BoardDetector) Detect(pageURL string) (jobtailor.Board, string) {
	return d.DetectFn(pageURL)
}
