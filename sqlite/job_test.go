package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBatch(t *testing.T, db *sqlite.DB) *jobtailor.Batch {
	t.Helper()
	svc := sqlite.NewBatchService(db)
	batch := testBatch(1)
	require.NoError(t, svc.CreateBatch(context.Background(), batch))
	return batch
}

func TestJobService_CreateJob(t *testing.T) {
	t.Parallel()

	t.Run("creates job with generated ID, hash, and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		job := &jobtailor.JobPosting{
			BatchID:     batch.ID,
			URL:         "https://jobs.lever.co/initech/abc-123",
			Title:       "Platform Engineer",
			Company:     "Initech",
			Description: longDescription(),
		}

		err := svc.CreateJob(ctx, job)
		require.NoError(t, err)

		assert.NotEmpty(t, job.ID, "ID should be generated")
		assert.NotEmpty(t, job.ContentHash, "ContentHash should be generated")
		assert.False(t, job.ScrapedAt.IsZero(), "ScrapedAt should be set")
	})

	t.Run("preserves a precomputed content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		job := &jobtailor.JobPosting{
			BatchID:     batch.ID,
			URL:         "https://jobs.lever.co/initech/abc-123",
			Description: longDescription(),
			ContentHash: "cafebabe00000000",
		}

		require.NoError(t, svc.CreateJob(ctx, job))

		found, err := svc.FindJobByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, "cafebabe00000000", found.ContentHash)
	})

	t.Run("returns error for invalid job", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		err := svc.CreateJob(ctx, &jobtailor.JobPosting{}) // missing URL
		require.Error(t, err)
		assert.Equal(t, jobtailor.EINVALID, jobtailor.ErrorCode(err))
	})
}

func TestJobService_FindJobByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips sections and cleaning stats", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		job := &jobtailor.JobPosting{
			BatchID:     batch.ID,
			URL:         "https://boards.greenhouse.io/acme/jobs/4567890",
			Domain:      "boards.greenhouse.io",
			Title:       "Senior Engineer",
			Company:     "Acme Corp",
			Description: longDescription(),
			Sections: map[string]string{
				jobtailor.SectionRequirements:     "5+ years of Go experience.",
				jobtailor.SectionResponsibilities: "",
			},
			Cleaning: &jobtailor.CleaningStats{
				OriginalLength:   2000,
				CleanedLength:    1200,
				ReductionPercent: 40,
				QualityScore:     jobtailor.QualityGood,
				HasKeySections:   true,
			},
		}
		require.NoError(t, svc.CreateJob(ctx, job))

		found, err := svc.FindJobByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, job.URL, found.URL)
		assert.Equal(t, job.Domain, found.Domain)
		assert.Equal(t, job.Title, found.Title)
		assert.Equal(t, job.Company, found.Company)
		assert.Equal(t, job.Description, found.Description)
		assert.Equal(t, job.Sections, found.Sections)
		require.NotNil(t, found.Cleaning)
		assert.Equal(t, *job.Cleaning, *found.Cleaning)
	})

	t.Run("leaves sections and cleaning nil when absent", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		job := &jobtailor.JobPosting{
			BatchID:     batch.ID,
			URL:         "https://jobs.lever.co/initech/abc-123",
			Error:       "fetch failed: HTTP 404",
			Description: "Failed to scrape: fetch failed: HTTP 404",
		}
		require.NoError(t, svc.CreateJob(ctx, job))

		found, err := svc.FindJobByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Sections)
		assert.Nil(t, found.Cleaning)
		assert.Equal(t, "fetch failed: HTTP 404", found.Error)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		_, err := svc.FindJobByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, jobtailor.ENOTFOUND, jobtailor.ErrorCode(err))
	})
}

func TestJobService_FindJobs(t *testing.T) {
	t.Parallel()

	t.Run("filters by batch ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewJobService(db)
		batchSvc := sqlite.NewBatchService(db)
		ctx := context.Background()

		b1 := testBatch(2)
		b2 := testBatch(1)
		require.NoError(t, batchSvc.CreateBatch(ctx, b1))
		require.NoError(t, batchSvc.CreateBatch(ctx, b2))

		jobs, err := svc.FindJobs(ctx, jobtailor.JobFilter{BatchID: &b1.ID})
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		for _, job := range jobs {
			assert.Equal(t, b1.ID, job.BatchID)
		}
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		url := "https://boards.greenhouse.io/acme/jobs/999"
		require.NoError(t, svc.CreateJob(ctx, &jobtailor.JobPosting{
			BatchID: batch.ID, URL: url, Description: longDescription(),
		}))

		jobs, err := svc.FindJobs(ctx, jobtailor.JobFilter{URL: &url})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, url, jobs[0].URL)
	})

	t.Run("filters by quality score", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		for i, q := range []jobtailor.Quality{jobtailor.QualityPoor, jobtailor.QualityExcellent} {
			require.NoError(t, svc.CreateJob(ctx, &jobtailor.JobPosting{
				BatchID:     batch.ID,
				URL:         fmt.Sprintf("https://boards.greenhouse.io/acme/jobs/%d", i),
				Description: longDescription(),
				Cleaning:    &jobtailor.CleaningStats{QualityScore: q},
			}))
		}

		quality := jobtailor.QualityExcellent
		jobs, err := svc.FindJobs(ctx, jobtailor.JobFilter{Quality: &quality})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, jobtailor.QualityExcellent, jobs[0].Cleaning.QualityScore)
	})

	t.Run("orders by position", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		for i, pos := range []int{3, 1, 2} {
			require.NoError(t, svc.CreateJob(ctx, &jobtailor.JobPosting{
				BatchID:     batch.ID,
				URL:         fmt.Sprintf("https://boards.greenhouse.io/acme/jobs/%d", i),
				Description: longDescription(),
				Position:    pos,
			}))
		}

		jobs, err := svc.FindJobs(ctx, jobtailor.JobFilter{BatchID: &batch.ID})
		require.NoError(t, err)
		require.Len(t, jobs, 4) // includes the batch's seed job at position 0
		for i := 1; i < len(jobs); i++ {
			assert.LessOrEqual(t, jobs[i-1].Position, jobs[i].Position)
		}
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewJobService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, svc.CreateJob(ctx, &jobtailor.JobPosting{
				BatchID:     batch.ID,
				URL:         fmt.Sprintf("https://boards.greenhouse.io/acme/jobs/%d", i),
				Description: longDescription(),
				Position:    i + 1,
			}))
		}

		jobs, err := svc.FindJobs(ctx, jobtailor.JobFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})
}

func TestJobService_DeleteJobsByBatch(t *testing.T) {
	t.Parallel()

	t.Run("deletes all jobs for a batch", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewJobService(db)
		batchSvc := sqlite.NewBatchService(db)
		ctx := context.Background()

		b1 := testBatch(3)
		b2 := testBatch(1)
		require.NoError(t, batchSvc.CreateBatch(ctx, b1))
		require.NoError(t, batchSvc.CreateBatch(ctx, b2))

		require.NoError(t, svc.DeleteJobsByBatch(ctx, b1.ID))

		jobs, err := svc.FindJobs(ctx, jobtailor.JobFilter{BatchID: &b1.ID})
		require.NoError(t, err)
		assert.Empty(t, jobs)

		jobs, err = svc.FindJobs(ctx, jobtailor.JobFilter{BatchID: &b2.ID})
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})
}
