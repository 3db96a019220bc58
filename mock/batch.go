package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.BatchService = (*BatchService)(nil)

// BatchService is a mock implementation of jobtailor.BatchService.
type BatchService struct {
	CreateBatchFn   func(ctx context.Context, batch *jobtailor.Batch) error
	FindBatchByIDFn func(ctx context.Context, id string) (*jobtailor.Batch, error)
	FindBatchesFn   func(ctx context.Context, filter jobtailor.BatchFilter) ([]*jobtailor.Batch, error)
	DeleteBatchFn   func(ctx context.Context, id string) error
}

func (s *BatchService) CreateBatch(ctx context.Context, batch *jobtailor.Batch) error {
	return s.CreateBatchFn(ctx, batch)
}

func (s *BatchService) FindBatchByID(ctx context.Context, id string) (*jobtailor.Batch, error) {
	return s.FindBatchByIDFn(ctx, id)
}

func (s *BatchService) FindBatches(ctx context.Context, filter jobtailor.BatchFilter) ([]*jobtailor.Batch, error) {
	return s.FindBatchesFn(ctx, filter)
}

func (s *BatchService) DeleteBatch(ctx context.Context, id string) error {
	return s.DeleteBatchFn(ctx, id)
}

var _ jobtailor.BatchWriter = (*BatchWriter)(nil)

// BatchWriter is a mock implementation of jobtailor.BatchWriter.
type BatchWriter struct {
	WriteBatchFn func(ctx context.Context, batch *jobtailor.Batch) error
}

func (w *BatchWriter) WriteBatch(ctx context.Context, batch *jobtailor.Batch) error {
	return w.WriteBatchFn(ctx, batch)
}
