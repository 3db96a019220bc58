package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/mock"
	jtslog "github.com/fwojciec/jobtailor/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs detected board with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.JobExtractor{
			ExtractFn: func(pageURL, html string) *jobtailor.Extraction {
				return &jobtailor.Extraction{
					Title:       "Senior Engineer",
					Company:     "Acme Corp",
					Description: "Build distributed systems.",
					Domain:      "greenhouse.io",
				}
			},
		}
		detector := &mock.BoardDetector{
			DetectFn: func(pageURL string) (jobtailor.Board, string) {
				return jobtailor.BoardGreenhouse, "greenhouse.io"
			},
		}

		extractor := jtslog.NewLoggingExtractor(inner, detector, logger)
		extraction := extractor.Extract("https://boards.greenhouse.io/acme/jobs/1", "<html></html>")

		require.NotNil(t, extraction)
		assert.Equal(t, "Senior Engineer", extraction.Title)
		output := buf.String()
		assert.Contains(t, output, "extraction")
		assert.Contains(t, output, "board=greenhouse.io")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs generic label for unknown boards", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.JobExtractor{
			ExtractFn: func(pageURL, html string) *jobtailor.Extraction {
				return &jobtailor.Extraction{Title: jobtailor.UnknownTitle}
			},
		}
		detector := &mock.BoardDetector{
			DetectFn: func(pageURL string) (jobtailor.Board, string) {
				return jobtailor.BoardUnknown, "acme.com"
			},
		}

		extractor := jtslog.NewLoggingExtractor(inner, detector, logger)
		extractor.Extract("https://acme.com/careers/engineer", "<html></html>")

		output := buf.String()
		assert.Contains(t, output, "board=(generic)")
		assert.Contains(t, output, "domain=acme.com")
	})
}
