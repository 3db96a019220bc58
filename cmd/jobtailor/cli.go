package main

import (
	"context"
	"io"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/scrape"
	"github.com/fwojciec/jobtailor/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	DB           *sqlite.DB
	Jobs         jobtailor.JobService
	Batches      jobtailor.BatchService
	Scraper      *scrape.Scraper
	Discoverer   *scrape.Discoverer
	Tailorer     jobtailor.Tailorer
	TokenCounter jobtailor.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log scraping progress to stderr"`

	Scrape   ScrapeCmd   `cmd:"" help:"Scrape job postings into a batch"`
	Discover DiscoverCmd `cmd:"" help:"Discover job posting URLs on a careers site"`
	Batches  BatchesCmd  `cmd:"" help:"List stored batches"`
	Jobs     JobsCmd     `cmd:"" help:"List jobs in a batch"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a batch and its jobs"`
	Tailor   TailorCmd   `cmd:"" help:"Tailor a resume for every job in a batch"`
	Keywords KeywordsCmd `cmd:"" help:"Extract keywords from a stored job's description"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs    []string `arg:"" optional:"" help:"Job posting URLs"`
	File    string   `short:"f" help:"Newline-delimited file of job posting URLs"`
	Output  string   `short:"o" default:"jobs_scraped.json" help:"Batch artifact output path"`
	NoClean bool     `help:"Skip description cleaning"`
	Rate    float64  `default:"1.0" help:"Requests per second per domain"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL      string   `arg:"" help:"Careers or job-board URL"`
	Filter   []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	MaxPages int      `default:"50" help:"Crawl page budget when no sitemap exists"`
}

// BatchesCmd is the "batches" subcommand.
type BatchesCmd struct{}

// JobsCmd is the "jobs" subcommand.
type JobsCmd struct {
	BatchID string `arg:"" help:"Batch ID"`
	Full    bool   `help:"Show full job descriptions"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	BatchID string `arg:"" help:"Batch ID"`
	Force   bool   `help:"Confirm deletion"`
}

// TailorCmd is the "tailor" subcommand.
type TailorCmd struct {
	ResumeFile  string `arg:"" help:"Plain-text resume file"`
	BatchID     string `arg:"" help:"Batch ID to tailor against"`
	OutputDir   string `short:"o" default:"tailored" help:"Directory for tailored resume files"`
	Concurrency int    `short:"c" default:"3" help:"Concurrent tailoring limit"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct {
	JobID string `arg:"" help:"Job ID"`
}
