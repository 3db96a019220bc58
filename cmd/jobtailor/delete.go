package main

import (
	"fmt"

	"github.com/fwojciec/jobtailor"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return jobtailor.Errorf(jobtailor.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Batches.DeleteBatch(deps.Ctx, c.BatchID); err != nil {
		if jobtailor.ErrorCode(err) == jobtailor.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: batch %q not found. Use 'jobtailor batches' to see available batches.\n", c.BatchID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted batch %q\n", c.BatchID)
	return nil
}
