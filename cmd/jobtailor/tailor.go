package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/fs"
	"github.com/fwojciec/jobtailor/scrape"
	"golang.org/x/sync/errgroup"
)

// Run executes the tailor command.
func (c *TailorCmd) Run(deps *Dependencies) error {
	text, err := os.ReadFile(c.ResumeFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read resume file %q: %v\n", c.ResumeFile, err)
		return err
	}
	resume := jobtailor.ParseResume(string(text))

	batch, err := deps.Batches.FindBatchByID(deps.Ctx, c.BatchID)
	if err != nil {
		if jobtailor.ErrorCode(err) == jobtailor.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: batch %q not found. Use 'jobtailor batches' to see available batches.\n", c.BatchID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		}
		return err
	}

	if deps.TokenCounter != nil {
		if tokens, err := deps.TokenCounter.CountTokens(deps.Ctx, string(text)); err == nil {
			fmt.Fprintf(deps.Stdout, "Tailoring %d jobs against a %s resume\n",
				len(batch.Jobs), scrape.FormatTokens(tokens))
		}
	}

	// Tailor concurrently but report in batch order. Per-job failures are
	// recorded in the result slot, never propagated through the group.
	results := make([]jobtailor.TailorResult, len(batch.Jobs))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, job := range batch.Jobs {
		g.Go(func() error {
			results[i].Job = job
			if job.Error != "" {
				results[i].Err = jobtailor.Errorf(jobtailor.EINVALID, "scrape failed: %s", job.Error)
				return nil
			}
			tailored, err := deps.Tailorer.TailorResume(ctx, resume, job)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Tailored = tailored
			return nil
		})
	}
	_ = g.Wait()

	var written, failed int
	for i, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  skip %s at %s: %s\n",
				result.Job.Title, result.Job.Company, jobtailor.ErrorMessage(result.Err))
			continue
		}
		path, err := fs.WriteTailored(c.OutputDir, i+1, result.Job, result.Tailored)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  error writing %s at %s: %s\n",
				result.Job.Title, result.Job.Company, jobtailor.ErrorMessage(err))
			continue
		}
		written++
		fmt.Fprintf(deps.Stdout, "  %s\n", path)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d tailored resumes to %s (%d skipped)\n", written, c.OutputDir, failed)
	if written == 0 {
		return jobtailor.Errorf(jobtailor.EINTERNAL, "no resumes tailored")
	}
	return nil
}
