package main

import (
	"fmt"

	"github.com/fwojciec/jobtailor"
)

// Run executes the batches command.
func (c *BatchesCmd) Run(deps *Dependencies) error {
	batches, err := deps.Batches.FindBatches(deps.Ctx, jobtailor.BatchFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	if len(batches) == 0 {
		fmt.Fprintln(deps.Stdout, "No batches found. Use 'jobtailor scrape' to create one.")
		return nil
	}

	for _, b := range batches {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d URLs\n",
			b.ID, b.CreatedAt.Format("2006-01-02 15:04"), b.Config.TotalURLs)
	}

	return nil
}
