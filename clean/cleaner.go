// Package clean turns raw extracted job description text into clean,
// section-annotated content suitable for LLM consumption. Cleaning is
// strictly subtractive: UI-noise spans are deleted, whitespace is
// normalized, and nothing is ever added.
package clean

import (
	"math"
	"strings"

	"github.com/fwojciec/jobtailor"
)

// Ensure Cleaner implements jobtailor.Cleaner at compile time.
var _ jobtailor.Cleaner = (*Cleaner)(nil)

// Cleaner removes UI noise from scraped job descriptions and segments the
// remainder into canonical sections. The pattern tables are compiled once at
// package init; Cleaner carries no mutable state and is safe for concurrent
// use.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean applies the cleaning stages in order: UI-noise removal, whitespace
// normalization, line filtering, section extraction, and quality scoring.
// It is deterministic and side-effect-free.
func (c *Cleaner) Clean(text string) *jobtailor.CleaningResult {
	if text == "" {
		return &jobtailor.CleaningResult{
			Sections:     map[string]string{},
			QualityScore: jobtailor.QualityPoor,
		}
	}

	originalLength := len(text)

	// Stage 1: delete UI-noise spans.
	cleaned := text
	for _, re := range uiPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	// Stage 2: normalize whitespace.
	cleaned = tripleNewlineRe.ReplaceAllString(cleaned, "\n\n")
	cleaned = spaceRunRe.ReplaceAllString(cleaned, " ")

	// Stage 3: drop lines that are blank, too short, or bare UI labels.
	cleaned = filterLines(cleaned)

	// Stage 4: segment into sections.
	sections := extractSections(cleaned)

	// Stage 5: metrics and quality.
	cleanedLength := len(cleaned)
	var reduction float64
	if originalLength > 0 {
		reduction = float64(originalLength-cleanedLength) / float64(originalLength) * 100
		reduction = math.Round(reduction*10) / 10
	}

	return &jobtailor.CleaningResult{
		CleanedText:      cleaned,
		OriginalLength:   originalLength,
		CleanedLength:    cleanedLength,
		ReductionPercent: reduction,
		Sections:         sections,
		QualityScore:     scoreQuality(cleanedLength, sections),
	}
}

// filterLines splits text into lines and drops blanks, lines shorter than
// 3 characters, and lines that are exactly a known UI label.
func filterLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) < 3 {
			continue
		}
		if _, ok := uiLabels[strings.ToLower(line)]; ok {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// extractSections scans lines in order against the ordered header table.
// A header line opens a section and is consumed; following non-header lines
// accumulate into it. An opened section is always recorded, even when all of
// its content was stripped as noise, so the empty string is a meaningful
// value: the header was present, the body was boilerplate.
func extractSections(text string) map[string]string {
	sections := map[string]string{}

	var current string
	var content []string
	opened := false

	flush := func() {
		if opened {
			sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if name, ok := matchSectionHeader(line); ok {
			flush()
			current = name
			content = nil
			opened = true
			continue
		}

		if opened {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

func matchSectionHeader(line string) (string, bool) {
	for _, rule := range sectionRules {
		if rule.re.MatchString(line) {
			return rule.name, true
		}
	}
	return "", false
}

// scoreQuality maps cleaned length and detected sections onto the quality
// tiers. The exact thresholds are the contract.
func scoreQuality(cleanedLength int, sections map[string]string) jobtailor.Quality {
	score := 0

	switch {
	case cleanedLength > 1000:
		score += 2
	case cleanedLength > 500:
		score++
	}

	score += len(sections)

	_, hasReq := sections[jobtailor.SectionRequirements]
	_, hasResp := sections[jobtailor.SectionResponsibilities]
	if hasReq || hasResp {
		score += 2
	}

	switch {
	case score >= 5:
		return jobtailor.QualityExcellent
	case score >= 3:
		return jobtailor.QualityGood
	case score >= 1:
		return jobtailor.QualityFair
	default:
		return jobtailor.QualityPoor
	}
}
