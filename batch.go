package jobtailor

import (
	"context"
	"time"
)

// BatchVersion identifies the batch artifact format.
const BatchVersion = "2.0"

// Batch is the consolidated result of scraping an ordered list of URLs.
// Jobs preserves 1:1 positional correspondence with the input URL list.
type Batch struct {
	Version    string        `json:"version"`
	Config     ScrapeConfig  `json:"scraping_config"`
	Statistics Statistics    `json:"statistics"`
	Jobs       []*JobPosting `json:"jobs"`

	// Storage fields, populated by the sqlite batch store. Not part of the
	// batch artifact.
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// ScrapeConfig records how a batch was produced.
type ScrapeConfig struct {
	CleaningEnabled bool `json:"cleaning_enabled"`
	TotalURLs       int  `json:"total_urls"`
}

// Statistics aggregates per-batch scrape outcomes.
type Statistics struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`

	// ShortDescriptions counts records that did not fail outright but whose
	// description is at or below MinDescriptionLength. These are warnings:
	// very short text is usually an extraction failure, not a short posting.
	ShortDescriptions int `json:"short_descriptions"`

	// ByQuality is a histogram of quality scores over the successful set.
	ByQuality map[Quality]int `json:"by_quality"`
}

// ComputeStatistics derives batch statistics from a job list.
func ComputeStatistics(jobs []*JobPosting) Statistics {
	stats := Statistics{
		Total: len(jobs),
		ByQuality: map[Quality]int{
			QualityExcellent: 0,
			QualityGood:      0,
			QualityFair:      0,
			QualityPoor:      0,
		},
	}
	for _, job := range jobs {
		switch {
		case job.Error != "":
			stats.Failed++
		case job.Succeeded():
			stats.Successful++
			if job.Cleaning != nil {
				stats.ByQuality[job.Cleaning.QualityScore]++
			}
		default:
			stats.ShortDescriptions++
		}
	}
	return stats
}

// Validate returns an error if the batch contains invalid fields.
func (b *Batch) Validate() error {
	if len(b.Jobs) == 0 {
		return Errorf(EINVALID, "batch requires at least one job")
	}
	return nil
}

// BatchService represents a service for managing stored batches.
type BatchService interface {
	// CreateBatch persists a batch and all of its jobs.
	CreateBatch(ctx context.Context, batch *Batch) error

	// FindBatchByID retrieves a batch, including its jobs, by ID.
	// Returns ENOTFOUND if the batch does not exist.
	FindBatchByID(ctx context.Context, id string) (*Batch, error)

	// FindBatches retrieves batches matching the filter, without jobs.
	FindBatches(ctx context.Context, filter BatchFilter) ([]*Batch, error)

	// DeleteBatch permanently removes a batch and all associated jobs.
	// Returns ENOTFOUND if the batch does not exist.
	DeleteBatch(ctx context.Context, id string) error
}

// BatchFilter represents a filter for FindBatches.
type BatchFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// BatchWriter persists a batch as a durable artifact (a JSON file). The
// written form is the handoff contract to the tailoring orchestrator.
type BatchWriter interface {
	WriteBatch(ctx context.Context, batch *Batch) error
}
