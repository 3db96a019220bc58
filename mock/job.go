package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.JobService = (*JobService)(nil)

// JobService is a mock implementation of jobtailor.JobService.
type JobService struct {
	CreateJobFn         func(ctx context.Context, job *jobtailor.JobPosting) error
	FindJobByIDFn       func(ctx context.Context, id string) (*jobtailor.JobPosting, error)
	FindJobsFn          func(ctx context.Context, filter jobtailor.JobFilter) ([]*jobtailor.JobPosting, error)
	DeleteJobsByBatchFn func(ctx context.Context, batchID string) error
}

func (s *JobService) CreateJob(ctx context.Context, job *jobtailor.JobPosting) error {
	return s.CreateJobFn(ctx, job)
}

func (s *JobService) FindJobByID(ctx context.Context, id string) (*jobtailor.JobPosting, error) {
	return s.FindJobByIDFn(ctx, id)
}

func (s *JobService) FindJobs(ctx context.Context, filter jobtailor.JobFilter) ([]*jobtailor.JobPosting, error) {
	return s.FindJobsFn(ctx, filter)
}

func (s *JobService) DeleteJobsByBatch(ctx context.Context, batchID string) error {
	return s.DeleteJobsByBatchFn(ctx, batchID)
}
