package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fwojciec/jobtailor"
)

// Dependencies holds all services for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   jobtailor.Fetcher
	Extractor jobtailor.JobExtractor
	Cleaner   jobtailor.Cleaner
}

// ProbeCmd fetches and extracts a single job posting URL.
type ProbeCmd struct {
	URL  string
	JSON bool
	Raw  bool
}

// Run executes the probe.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	if c.Raw {
		fmt.Fprintln(deps.Stdout, html)
		return nil
	}

	extraction := deps.Extractor.Extract(c.URL, html)

	job := &jobtailor.JobPosting{
		URL:         c.URL,
		Title:       extraction.Title,
		Company:     extraction.Company,
		Domain:      extraction.Domain,
		Description: extraction.Description,
	}

	if deps.Cleaner != nil && extraction.Description != "" {
		result := deps.Cleaner.Clean(extraction.Description)
		job.Description = result.CleanedText
		job.Sections = result.Sections
		job.Cleaning = result.Stats()
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(job)
	}

	fmt.Fprintf(deps.Stdout, "Title:   %s\n", job.Title)
	fmt.Fprintf(deps.Stdout, "Company: %s\n", job.Company)
	fmt.Fprintf(deps.Stdout, "Domain:  %s\n", job.Domain)
	if job.Cleaning != nil {
		fmt.Fprintf(deps.Stdout, "Quality: %s (%d -> %d chars, %.0f%% reduced)\n",
			job.Cleaning.QualityScore, job.Cleaning.OriginalLength,
			job.Cleaning.CleanedLength, job.Cleaning.ReductionPercent)
	}
	if len(job.Sections) > 0 {
		names := make([]string, 0, len(job.Sections))
		for name := range job.Sections {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(deps.Stdout, "Sections:")
		for _, name := range names {
			fmt.Fprintf(deps.Stdout, " %s", name)
		}
		fmt.Fprintln(deps.Stdout)
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", job.Description)

	if !job.Succeeded() {
		fmt.Fprintln(deps.Stderr, "warning: description is too short to count as a successful scrape")
	}

	return nil
}
