package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/jobtailor"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jobtailor.BatchService = (*BatchService)(nil)

// BatchService implements jobtailor.BatchService using SQLite.
type BatchService struct {
	db   *DB
	jobs *JobService
}

// NewBatchService creates a new BatchService.
func NewBatchService(db *DB) *BatchService {
	return &BatchService{db: db, jobs: NewJobService(db)}
}

// CreateBatch persists a batch and all of its jobs. Job positions are
// assigned from slice order.
func (s *BatchService) CreateBatch(ctx context.Context, batch *jobtailor.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	batch.ID = uuid.New().String()
	batch.CreatedAt = time.Now().UTC()
	if batch.Version == "" {
		batch.Version = jobtailor.BatchVersion
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO batches (id, version, cleaning_enabled, total_urls, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, batch.ID, batch.Version, batch.Config.CleaningEnabled, batch.Config.TotalURLs,
		batch.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, job := range batch.Jobs {
		job.BatchID = batch.ID
		job.Position = i
		if err := s.jobs.CreateJob(ctx, job); err != nil {
			return err
		}
	}

	return nil
}

// FindBatchByID retrieves a batch by ID, including its jobs in position
// order. Statistics are recomputed from the stored jobs.
func (s *BatchService) FindBatchByID(ctx context.Context, id string) (*jobtailor.Batch, error) {
	batch, err := s.findBatchRow(ctx, id)
	if err != nil {
		return nil, err
	}

	batch.Jobs, err = s.jobs.FindJobs(ctx, jobtailor.JobFilter{BatchID: &id})
	if err != nil {
		return nil, err
	}
	batch.Statistics = jobtailor.ComputeStatistics(batch.Jobs)

	return batch, nil
}

// FindBatches retrieves batches matching the filter, newest first. Jobs and
// statistics are not populated; use FindBatchByID for the full record.
func (s *BatchService) FindBatches(ctx context.Context, filter jobtailor.BatchFilter) ([]*jobtailor.Batch, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, version, cleaning_enabled, total_urls, created_at FROM batches WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY created_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []*jobtailor.Batch
	for rows.Next() {
		var batch jobtailor.Batch
		var createdAt string

		if err := rows.Scan(&batch.ID, &batch.Version, &batch.Config.CleaningEnabled,
			&batch.Config.TotalURLs, &createdAt); err != nil {
			return nil, err
		}

		batch.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		batches = append(batches, &batch)
	}

	return batches, rows.Err()
}

// DeleteBatch permanently removes a batch. Associated jobs are removed by
// the batch_id foreign key cascade.
func (s *BatchService) DeleteBatch(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM batches WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return jobtailor.Errorf(jobtailor.ENOTFOUND, "batch not found")
	}

	return nil
}

// findBatchRow retrieves a batch row without jobs.
func (s *BatchService) findBatchRow(ctx context.Context, id string) (*jobtailor.Batch, error) {
	var batch jobtailor.Batch
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, version, cleaning_enabled, total_urls, created_at
		FROM batches
		WHERE id = ?
	`, id).Scan(&batch.ID, &batch.Version, &batch.Config.CleaningEnabled,
		&batch.Config.TotalURLs, &createdAt)

	if err == sql.ErrNoRows {
		return nil, jobtailor.Errorf(jobtailor.ENOTFOUND, "batch not found")
	}
	if err != nil {
		return nil, err
	}

	batch.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &batch, nil
}
