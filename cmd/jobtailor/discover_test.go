package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jobtailor"
	main "github.com/fwojciec/jobtailor/cmd/jobtailor"
	"github.com/fwojciec/jobtailor/mock"
	"github.com/fwojciec/jobtailor/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints posting URLs from sitemap", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, _ *jobtailor.URLFilter) ([]string, error) {
				assert.Equal(t, "https://acme.com/careers", baseURL)
				return []string{
					"https://boards.greenhouse.io/acme/jobs/123",
					"https://acme.com/careers",
					"https://boards.greenhouse.io/acme/jobs/456",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Discoverer: &scrape.Discoverer{Sitemaps: sitemaps},
		}

		cmd := &main.DiscoverCmd{URL: "https://acme.com/careers"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://boards.greenhouse.io/acme/jobs/123")
		assert.Contains(t, stdout.String(), "https://boards.greenhouse.io/acme/jobs/456")
		assert.NotContains(t, stdout.String(), "https://acme.com/careers\n")
		assert.Empty(t, stderr.String())
	})

	t.Run("passes compiled filter to sitemap service", func(t *testing.T) {
		t.Parallel()

		var receivedFilter *jobtailor.URLFilter
		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, filter *jobtailor.URLFilter) ([]string, error) {
				receivedFilter = filter
				return []string{"https://boards.greenhouse.io/acme/jobs/123"}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Discoverer: &scrape.Discoverer{Sitemaps: sitemaps},
		}

		cmd := &main.DiscoverCmd{
			URL:    "https://acme.com/careers",
			Filter: []string{"engineering", "remote"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, receivedFilter)
		require.Len(t, receivedFilter.Include, 2)
		assert.Equal(t, "engineering", receivedFilter.Include[0].String())
		assert.Equal(t, "remote", receivedFilter.Include[1].String())
	})

	t.Run("invalid filter pattern returns error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DiscoverCmd{
			URL:    "https://acme.com/careers",
			Filter: []string{"[invalid"},
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "[invalid")
	})

	t.Run("reports when nothing is found", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Discoverer: &scrape.Discoverer{
				Sitemaps: &mock.SitemapService{
					DiscoverURLsFn: func(_ context.Context, _ string, _ *jobtailor.URLFilter) ([]string, error) {
						return nil, nil
					},
				},
				HTTPFetcher: &mock.Fetcher{
					FetchFn: func(_ context.Context, _ string) (string, error) {
						return "", jobtailor.Errorf(jobtailor.EUNAVAILABLE, "unreachable")
					},
				},
				Links:       &mock.LinkExtractor{},
				RetryDelays: []time.Duration{0},
			},
		}

		cmd := &main.DiscoverCmd{URL: "https://acme.com/careers"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No job posting URLs found")
	})
}
