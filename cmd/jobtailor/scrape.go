package main

import (
	"fmt"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/fs"
	"github.com/fwojciec/jobtailor/scrape"
)

// Run executes the scrape command. URLs can be given as arguments,
// read from a file, or both; file URLs follow the arguments.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.File != "" {
		fromFile, err := fs.ReadURLFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
			return err
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		err := jobtailor.Errorf(jobtailor.EINVALID, "no URLs given")
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: Pass URLs as arguments or use --file.")
		return err
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d URLs\n", event.Total)
		case scrape.ProgressCompleted:
			line := fmt.Sprintf("  [%d/%d] %s", event.Completed, event.Total, scrape.TruncateURL(event.URL, 60))
			if event.Quality != "" {
				line += fmt.Sprintf(" (%s)", event.Quality)
			}
			fmt.Fprintln(deps.Stdout, line)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] failed %s: %v\n",
				event.Completed, event.Total, scrape.TruncateURL(event.URL, 60), event.Error)
		case scrape.ProgressFinished:
			// Summary printed after the batch is persisted
		}
	}

	batch, err := deps.Scraper.ScrapeBatch(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	if err := deps.Batches.CreateBatch(deps.Ctx, batch); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	writer := fs.NewBatchWriter(c.Output)
	if err := writer.WriteBatch(deps.Ctx, batch); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	stats := batch.Statistics
	fmt.Fprintf(deps.Stdout, "Saved batch %s: %d ok, %d short, %d failed -> %s\n",
		batch.ID, stats.Successful, stats.ShortDescriptions, stats.Failed, c.Output)
	return nil
}
