package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.Tailorer = (*Tailorer)(nil)

// Tailorer is a mock implementation of jobtailor.Tailorer.
type Tailorer struct {
	TailorResumeFn    func(ctx context.Context, resume *jobtailor.Resume, job *jobtailor.JobPosting) (string, error)
	ExtractKeywordsFn func(ctx context.Context, description string) ([]string, error)
}

func (t *Tailorer) TailorResume(ctx context.Context, resume *jobtailor.Resume, job *jobtailor.JobPosting) (string, error) {
	return t.TailorResumeFn(ctx, resume, job)
}

func (t *Tailorer) ExtractKeywords(ctx context.Context, description string) ([]string, error) {
	return t.ExtractKeywordsFn(ctx, description)
}

var _ jobtailor.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of jobtailor.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (c *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return c.CountTokensFn(ctx, text)
}
