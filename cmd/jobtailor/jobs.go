package main

import (
	"fmt"

	"github.com/fwojciec/jobtailor"
)

// Run executes the jobs command.
func (c *JobsCmd) Run(deps *Dependencies) error {
	jobs, err := deps.Jobs.FindJobs(deps.Ctx, jobtailor.JobFilter{BatchID: &c.BatchID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: batch %q has no jobs. Use 'jobtailor batches' to see available batches.\n", c.BatchID)
		return jobtailor.Errorf(jobtailor.ENOTFOUND, "batch %q has no jobs", c.BatchID)
	}

	if c.Full {
		for _, job := range jobs {
			fmt.Fprintf(deps.Stdout, "=== %s at %s ===\n%s\n%s\n\n", job.Title, job.Company, job.URL, job.Description)
		}
		return nil
	}

	// Print summary listing
	fmt.Fprintf(deps.Stdout, "Jobs in batch %s (%d total):\n\n", c.BatchID, len(jobs))
	for _, job := range jobs {
		status := "ok"
		switch {
		case job.Error != "":
			status = "failed"
		case job.Cleaning != nil:
			status = string(job.Cleaning.QualityScore)
		}
		fmt.Fprintf(deps.Stdout, "  %d. [%s] %s at %s\n     %s  %s\n",
			job.Position+1, status, job.Title, job.Company, job.ID, job.URL)
	}

	return nil
}
