package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns immediately on success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "<html>ok</html>", nil
		}

		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://acme.com/jobs/1", fetch, nil, testRetryDelays())

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until a fetch succeeds", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", jobtailor.Errorf(jobtailor.EUNAVAILABLE, "transient")
			}
			return "<html>ok</html>", nil
		}

		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://acme.com/jobs/1", fetch, nil, testRetryDelays())

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error after exhausting retries", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", jobtailor.Errorf(jobtailor.EUNAVAILABLE, "down")
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://acme.com/jobs/1", fetch, nil, testRetryDelays())

		require.Error(t, err)
		assert.Equal(t, jobtailor.EUNAVAILABLE, jobtailor.ErrorCode(err))
		assert.Equal(t, 4, calls, "1 initial + 3 retries")
	})

	t.Run("logs each retry attempt", func(t *testing.T) {
		t.Parallel()

		var logged int
		logger := func(format string, args ...any) {
			logged++
		}
		fetch := func(ctx context.Context, url string) (string, error) {
			return "", jobtailor.Errorf(jobtailor.EUNAVAILABLE, "down")
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://acme.com/jobs/1", fetch, logger, testRetryDelays())

		require.Error(t, err)
		assert.Equal(t, 3, logged)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", jobtailor.Errorf(jobtailor.EUNAVAILABLE, "down")
		}

		_, err := scrape.FetchWithRetryDelays(ctx, "https://acme.com/jobs/1", fetch, nil, []time.Duration{time.Minute})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
