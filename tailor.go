package jobtailor

import "context"

// Tailorer rewrites a résumé for a specific job posting using an LLM.
type Tailorer interface {
	// TailorResume returns the tailored résumé text for the job.
	// Returns EINVALID if the job's description still looks like a raw URL
	// or is shorter than MinDescriptionLength. Such records mean scraping
	// failed and tailoring would hallucinate against an empty posting.
	TailorResume(ctx context.Context, resume *Resume, job *JobPosting) (string, error)

	// ExtractKeywords returns the most important skills and qualifications
	// mentioned in a job description.
	ExtractKeywords(ctx context.Context, description string) ([]string, error)
}

// TailorResult is the outcome of tailoring one job in a batch.
type TailorResult struct {
	Job      *JobPosting
	Tailored string
	Err      error
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
