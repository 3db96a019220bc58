// Package jobtailor provides a CLI-based résumé tailoring pipeline.
// It scrapes job postings from job-board URLs, cleans the extracted
// descriptions of UI noise, stores scrape batches, and uses an LLM to
// tailor a candidate's résumé to individual postings.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package jobtailor
