// Package slog provides logging decorators for jobtailor services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobtailor"
)

// Ensure LoggingExtractor implements jobtailor.JobExtractor.
var _ jobtailor.JobExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a JobExtractor with debug logging for board
// classification.
type LoggingExtractor struct {
	next     jobtailor.JobExtractor
	detector jobtailor.BoardDetector
	logger   *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next jobtailor.JobExtractor, detector jobtailor.BoardDetector, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, detector: detector, logger: logger}
}

// Extract classifies the URL's board, logs it, and delegates to the
// wrapped extractor.
func (e *LoggingExtractor) Extract(pageURL, html string) *jobtailor.Extraction {
	begin := time.Now()
	board, domain := e.detector.Detect(pageURL)
	boardName := string(board)
	if board == jobtailor.BoardUnknown {
		boardName = "(generic)"
	}
	extraction := e.next.Extract(pageURL, html)
	e.logger.Info("extraction",
		"board", boardName,
		"domain", domain,
		"title", extraction.Title,
		"bytes", len(extraction.Description),
		"duration", time.Since(begin),
	)
	return extraction
}
