package scrape_test

import (
	"testing"

	"github.com/fwojciec/jobtailor/scrape"
	"github.com/stretchr/testify/assert"
)

func TestComputeHash(t *testing.T) {
	t.Parallel()

	t.Run("same content yields same hash", func(t *testing.T) {
		t.Parallel()

		a := scrape.ComputeHash("We are hiring a backend engineer.")
		b := scrape.ComputeHash("We are hiring a backend engineer.")

		assert.Equal(t, a, b)
		assert.NotEmpty(t, a)
	})

	t.Run("different content yields different hashes", func(t *testing.T) {
		t.Parallel()

		a := scrape.ComputeHash("backend engineer")
		b := scrape.ComputeHash("frontend engineer")

		assert.NotEqual(t, a, b)
	})
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{"short URL unchanged", "https://a.com/j/1", 40, "https://a.com/j/1"},
		{"long URL keeps the end", "https://boards.greenhouse.io/acme/jobs/4567890", 20, "...acme/jobs/4567890"},
		{"zero length", "https://a.com", 0, ""},
		{"negative length", "https://a.com", -1, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := scrape.TruncateURL(tt.url, tt.maxLen)
			assert.LessOrEqual(t, len(got), max(tt.maxLen, 0))
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", scrape.FormatBytes(512))
	assert.Equal(t, "1.5 KB", scrape.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", scrape.FormatBytes(2*1024*1024))
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~999 tokens", scrape.FormatTokens(999))
	assert.Equal(t, "~2k tokens", scrape.FormatTokens(1500))
}
