package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobtailor"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jobtailor.JobService = (*JobService)(nil)

// JobService implements jobtailor.JobService using SQLite.
type JobService struct {
	db *DB
}

// NewJobService creates a new JobService.
func NewJobService(db *DB) *JobService {
	return &JobService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// marshalSections serializes a sections map to JSON text.
// An empty or nil map serializes to the empty string.
func marshalSections(sections map[string]string) (string, error) {
	if len(sections) == 0 {
		return "", nil
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return "", fmt.Errorf("failed to marshal sections: %w", err)
	}
	return string(data), nil
}

// unmarshalSections deserializes JSON text into a sections map.
// The empty string deserializes to nil.
func unmarshalSections(text string) (map[string]string, error) {
	if text == "" {
		return nil, nil
	}
	var sections map[string]string
	if err := json.Unmarshal([]byte(text), &sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sections: %w", err)
	}
	return sections, nil
}

// marshalCleaning serializes cleaning stats to JSON text.
// Nil stats serialize to the empty string.
func marshalCleaning(stats *jobtailor.CleaningStats) (string, error) {
	if stats == nil {
		return "", nil
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cleaning stats: %w", err)
	}
	return string(data), nil
}

// unmarshalCleaning deserializes JSON text into cleaning stats.
// The empty string deserializes to nil.
func unmarshalCleaning(text string) (*jobtailor.CleaningStats, error) {
	if text == "" {
		return nil, nil
	}
	var stats jobtailor.CleaningStats
	if err := json.Unmarshal([]byte(text), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cleaning stats: %w", err)
	}
	return &stats, nil
}

// qualityColumn returns the quality score for the denormalized quality
// column, used for SQL-level filtering.
func qualityColumn(job *jobtailor.JobPosting) string {
	if job.Cleaning == nil {
		return ""
	}
	return string(job.Cleaning.QualityScore)
}

// CreateJob persists a job posting under its batch.
func (s *JobService) CreateJob(ctx context.Context, job *jobtailor.JobPosting) error {
	if err := job.Validate(); err != nil {
		return err
	}

	job.ID = uuid.New().String()
	if job.ScrapedAt.IsZero() {
		job.ScrapedAt = time.Now().UTC()
	}
	if job.ContentHash == "" {
		job.ContentHash = hashContent(job.Description)
	}

	sections, err := marshalSections(job.Sections)
	if err != nil {
		return err
	}
	cleaning, err := marshalCleaning(job.Cleaning)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, batch_id, url, domain, title, company, description, sections, cleaning, quality, error, content_hash, position, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, job.ID, job.BatchID, job.URL, job.Domain, job.Title, job.Company, job.Description,
		sections, cleaning, qualityColumn(job), job.Error, job.ContentHash,
		job.Position, job.ScrapedAt.Format(time.RFC3339))

	return err
}

// FindJobByID retrieves a job by ID.
func (s *JobService) FindJobByID(ctx context.Context, id string) (*jobtailor.JobPosting, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, batch_id, url, domain, title, company, description, sections, cleaning, error, content_hash, position, scraped_at
		FROM jobs
		WHERE id = ?
	`, id)

	job, err := scanJob(row.Scan)
	if err == sql.ErrNoRows {
		return nil, jobtailor.Errorf(jobtailor.ENOTFOUND, "job not found")
	}
	if err != nil {
		return nil, err
	}

	return job, nil
}

// FindJobs retrieves jobs matching the filter, ordered by position.
func (s *JobService) FindJobs(ctx context.Context, filter jobtailor.JobFilter) ([]*jobtailor.JobPosting, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, batch_id, url, domain, title, company, description, sections, cleaning, error, content_hash, position, scraped_at FROM jobs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.BatchID != nil {
		query.WriteString(" AND batch_id = ?")
		args = append(args, *filter.BatchID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Quality != nil {
		query.WriteString(" AND quality = ?")
		args = append(args, string(*filter.Quality))
	}

	query.WriteString(" ORDER BY position ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*jobtailor.JobPosting
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// DeleteJobsByBatch removes all jobs for a batch.
func (s *JobService) DeleteJobsByBatch(ctx context.Context, batchID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM jobs WHERE batch_id = ?", batchID)
	return err
}

// scanJob reads one job row via the given scan function.
func scanJob(scan func(dest ...any) error) (*jobtailor.JobPosting, error) {
	var job jobtailor.JobPosting
	var sections, cleaning, scrapedAt string

	if err := scan(&job.ID, &job.BatchID, &job.URL, &job.Domain, &job.Title, &job.Company,
		&job.Description, &sections, &cleaning, &job.Error, &job.ContentHash,
		&job.Position, &scrapedAt); err != nil {
		return nil, err
	}

	var err error
	job.Sections, err = unmarshalSections(sections)
	if err != nil {
		return nil, err
	}
	job.Cleaning, err = unmarshalCleaning(cleaning)
	if err != nil {
		return nil, err
	}
	job.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}

	return &job, nil
}
