package goquery

// NewAshbySelectors returns the selector chains for Ashby-hosted boards
// (jobs.ashbyhq.com).
func NewAshbySelectors() *SiteSelectors {
	return &SiteSelectors{
		name: "ashby",
		Description: []string{
			".job-description",
			`[data-testid="job-description"]`,
			".description",
		},
		Title: []string{
			"h1",
			".job-title",
		},
		Company: []string{
			".company-name",
		},
	}
}
