// Package scrape provides job scraping orchestration.
// It coordinates fetching, extraction, and cleaning of job postings into
// ordered batches, and discovery of posting URLs from careers sites.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/jobtailor"
)

// Scraper orchestrates the scraping of job posting URLs into a batch.
type Scraper struct {
	Fetcher     jobtailor.Fetcher
	Extractor   jobtailor.JobExtractor
	Cleaner     jobtailor.Cleaner
	RateLimiter jobtailor.DomainLimiter
	RetryDelays []time.Duration
}

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Quality   jobtailor.Quality
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// ScrapeBatch scrapes the URLs in order and returns the consolidated batch.
// URLs are processed sequentially. One URL failing never aborts the run: the
// failure is recorded in that URL's slot and processing moves to the next
// URL, so the returned batch always holds one job per input URL, in input
// order.
//
// Cancelling the context stops fetching; URLs not yet processed are recorded
// as failed so the positional contract still holds.
func (s *Scraper) ScrapeBatch(ctx context.Context, urls []string, progress ProgressFunc) (*jobtailor.Batch, error) {
	if len(urls) == 0 {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "no URLs to scrape")
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	jobs := make([]*jobtailor.JobPosting, total)
	for i, jobURL := range urls {
		job := s.scrapeOne(ctx, jobURL)
		job.Position = i
		jobs[i] = job

		if progress != nil {
			event := ProgressEvent{
				Completed: i + 1,
				Total:     total,
				URL:       jobURL,
			}
			if job.Error != "" {
				event.Type = ProgressFailed
				event.Error = jobtailor.Errorf(jobtailor.EINTERNAL, "%s", job.Error)
			} else {
				event.Type = ProgressCompleted
				if job.Cleaning != nil {
					event.Quality = job.Cleaning.QualityScore
				}
			}
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	batch := &jobtailor.Batch{
		Version: jobtailor.BatchVersion,
		Config: jobtailor.ScrapeConfig{
			CleaningEnabled: s.Cleaner != nil,
			TotalURLs:       total,
		},
		Statistics: jobtailor.ComputeStatistics(jobs),
		Jobs:       jobs,
		CreatedAt:  time.Now(),
	}
	return batch, nil
}

// scrapeOne processes a single URL. It never returns nil: any failure is
// recorded on the job itself.
func (s *Scraper) scrapeOne(ctx context.Context, jobURL string) *jobtailor.JobPosting {
	job := &jobtailor.JobPosting{
		URL:       jobURL,
		Title:     jobtailor.UnknownTitle,
		Company:   jobtailor.UnknownCompany,
		ScrapedAt: time.Now(),
	}

	parsed, err := url.Parse(jobURL)
	if err != nil {
		return s.fail(job, err)
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			return s.fail(job, err)
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, jobURL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		return s.fail(job, err)
	}

	extraction := s.Extractor.Extract(jobURL, html)
	job.Title = extraction.Title
	job.Company = extraction.Company
	job.Domain = extraction.Domain
	job.Description = extraction.Description

	if s.Cleaner != nil && extraction.Description != "" {
		result := s.Cleaner.Clean(extraction.Description)
		job.Description = result.CleanedText
		job.Sections = result.Sections
		job.Cleaning = result.Stats()
	}

	job.ContentHash = ComputeHash(job.Description)
	return job
}

// fail records a scrape failure on the job. The description carries a
// human-readable diagnostic in place of job content, matching what the
// batch artifact consumers expect for failed records.
func (s *Scraper) fail(job *jobtailor.JobPosting, err error) *jobtailor.JobPosting {
	job.Error = err.Error()
	job.Description = fmt.Sprintf("Failed to scrape: %v", err)
	return job
}
