// Package readability adapts go-readability as a generic main-content
// extractor, used as a second opinion behind trafilatura.
package readability

import (
	"strings"

	"github.com/fwojciec/jobtailor"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements jobtailor.ContentExtractor at compile time.
var _ jobtailor.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*jobtailor.Content, error) {
	if rawHTML == "" {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &jobtailor.Content{
		Title: article.Title,
		HTML:  article.Content,
	}, nil
}
