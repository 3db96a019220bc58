package jobtailor

import (
	"context"
	"time"
)

// Sentinel values used when extraction cannot resolve a field. Absence of a
// title or company is routine, not exceptional, so it is modeled as data.
const (
	UnknownTitle   = "Unknown Position"
	UnknownCompany = "Unknown Company"
)

// Canonical section names detected in cleaned job descriptions.
// A key is present in JobPosting.Sections only when the section was found.
const (
	SectionRoleOverview     = "role_overview"
	SectionResponsibilities = "responsibilities"
	SectionRequirements     = "requirements"
	SectionBenefits         = "benefits"
	SectionCompanyInfo      = "company_info"
)

// Quality is an ordinal quality category for a cleaned description.
type Quality string

// Quality tiers, worst to best.
const (
	QualityPoor      Quality = "poor"
	QualityFair      Quality = "fair"
	QualityGood      Quality = "good"
	QualityExcellent Quality = "excellent"
)

// Rank returns the ordinal position of the quality tier (poor=0 .. excellent=3).
func (q Quality) Rank() int {
	switch q {
	case QualityExcellent:
		return 3
	case QualityGood:
		return 2
	case QualityFair:
		return 1
	default:
		return 0
	}
}

// JobPosting represents one scraped job listing.
//
// The JSON field names are the batch artifact contract consumed by the
// tailoring orchestrator, hence snake_case rather than this module's usual
// camelCase.
type JobPosting struct {
	URL         string            `json:"url"`
	Domain      string            `json:"domain,omitempty"`
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	Description string            `json:"description"`
	Sections    map[string]string `json:"sections,omitempty"`
	Cleaning    *CleaningStats    `json:"cleaning_metadata,omitempty"`

	// Error carries the failure diagnostic for records that could not be
	// scraped. When set, Description holds a human-readable failure message
	// instead of job content.
	Error string `json:"error,omitempty"`

	// Storage fields, populated by the sqlite job store. Not part of the
	// batch artifact.
	ID          string    `json:"-"`
	BatchID     string    `json:"-"`
	Position    int       `json:"-"`
	ContentHash string    `json:"-"`
	ScrapedAt   time.Time `json:"-"`
}

// CleaningStats summarizes what the cleaner did to a description.
type CleaningStats struct {
	OriginalLength   int     `json:"original_length"`
	CleanedLength    int     `json:"cleaned_length"`
	ReductionPercent float64 `json:"reduction_percent"`
	QualityScore     Quality `json:"quality_score"`
	HasKeySections   bool    `json:"has_key_sections"`
}

// Validate returns an error if the job posting contains invalid fields.
func (j *JobPosting) Validate() error {
	if j.URL == "" {
		return Errorf(EINVALID, "job URL required")
	}
	return nil
}

// Succeeded reports whether the posting counts as a successful scrape:
// no error and a description long enough to be actual job content.
// Shorter descriptions usually mean extraction failed quietly.
func (j *JobPosting) Succeeded() bool {
	return j.Error == "" && len(j.Description) > MinDescriptionLength
}

// MinDescriptionLength is the minimum description length, in bytes, for a
// scrape to count as successful. Matches the tailoring orchestrator's input
// guard, which rejects shorter descriptions.
const MinDescriptionLength = 100

// JobService represents a service for managing stored job postings.
type JobService interface {
	// CreateJob persists a job posting under its batch.
	CreateJob(ctx context.Context, job *JobPosting) error

	// FindJobByID retrieves a job by ID.
	// Returns ENOTFOUND if the job does not exist.
	FindJobByID(ctx context.Context, id string) (*JobPosting, error)

	// FindJobs retrieves jobs matching the filter, ordered by position.
	FindJobs(ctx context.Context, filter JobFilter) ([]*JobPosting, error)

	// DeleteJobsByBatch removes all jobs for a batch.
	DeleteJobsByBatch(ctx context.Context, batchID string) error
}

// JobFilter represents a filter for FindJobs.
type JobFilter struct {
	ID      *string  `json:"id"`
	BatchID *string  `json:"batchId"`
	URL     *string  `json:"url"`
	Quality *Quality `json:"quality"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
