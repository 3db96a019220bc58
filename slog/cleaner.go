package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobtailor"
)

// Ensure LoggingCleaner implements jobtailor.Cleaner.
var _ jobtailor.Cleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a Cleaner with debug logging.
type LoggingCleaner struct {
	next   jobtailor.Cleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next jobtailor.Cleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs the reduction.
func (c *LoggingCleaner) Clean(text string) *jobtailor.CleaningResult {
	begin := time.Now()
	result := c.next.Clean(text)
	c.logger.Info("clean",
		"original", result.OriginalLength,
		"cleaned", result.CleanedLength,
		"reduction", result.ReductionPercent,
		"quality", string(result.QualityScore),
		"sections", len(result.Sections),
		"duration", time.Since(begin),
	)
	return result
}
