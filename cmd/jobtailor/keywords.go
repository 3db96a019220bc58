package main

import (
	"fmt"

	"github.com/fwojciec/jobtailor"
)

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	job, err := deps.Jobs.FindJobByID(deps.Ctx, c.JobID)
	if err != nil {
		if jobtailor.ErrorCode(err) == jobtailor.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: job %q not found. Use 'jobtailor jobs <batch-id>' to see job IDs.\n", c.JobID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		}
		return err
	}

	keywords, err := deps.Tailorer.ExtractKeywords(deps.Ctx, job.Description)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Keywords for %s at %s:\n", job.Title, job.Company)
	for _, kw := range keywords {
		fmt.Fprintf(deps.Stdout, "  %s\n", kw)
	}
	return nil
}
