package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jobtailor"
	main "github.com/fwojciec/jobtailor/cmd/jobtailor"
	"github.com/fwojciec/jobtailor/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists batches", func(t *testing.T) {
		t.Parallel()

		batches := &mock.BatchService{
			FindBatchesFn: func(_ context.Context, _ jobtailor.BatchFilter) ([]*jobtailor.Batch, error) {
				return []*jobtailor.Batch{
					{
						ID:        "batch-1",
						CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
						Config:    jobtailor.ScrapeConfig{TotalURLs: 5},
					},
					{
						ID:        "batch-2",
						CreatedAt: time.Date(2026, 3, 13, 17, 0, 0, 0, time.UTC),
						Config:    jobtailor.ScrapeConfig{TotalURLs: 12},
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Batches: batches,
		}

		cmd := &main.BatchesCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "batch-1")
		assert.Contains(t, stdout.String(), "2026-03-14 09:30")
		assert.Contains(t, stdout.String(), "5 URLs")
		assert.Contains(t, stdout.String(), "batch-2")
		assert.Empty(t, stderr.String())
	})

	t.Run("suggests scrape when no batches exist", func(t *testing.T) {
		t.Parallel()

		batches := &mock.BatchService{
			FindBatchesFn: func(_ context.Context, _ jobtailor.BatchFilter) ([]*jobtailor.Batch, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Batches: batches,
		}

		cmd := &main.BatchesCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No batches found")
		assert.Contains(t, stdout.String(), "jobtailor scrape")
	})

	t.Run("returns error when lookup fails", func(t *testing.T) {
		t.Parallel()

		batches := &mock.BatchService{
			FindBatchesFn: func(_ context.Context, _ jobtailor.BatchFilter) ([]*jobtailor.Batch, error) {
				return nil, jobtailor.Errorf(jobtailor.EINTERNAL, "database locked")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Batches: batches,
		}

		cmd := &main.BatchesCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
