package goquery

// NewLeverSelectors returns the selector chains for Lever-hosted boards
// (jobs.lever.co). Lever postings use h2 rather than h1 for the headline.
func NewLeverSelectors() *SiteSelectors {
	return &SiteSelectors{
		name: "lever",
		Description: []string{
			".job-description",
			".posting-description",
			`[data-qa="job-description"]`,
		},
		Title: []string{
			".posting-headline",
			"h2",
			".job-title",
		},
		Company: []string{
			".main-header-title",
		},
	}
}
