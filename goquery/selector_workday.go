package goquery

// NewWorkdaySelectors returns the selector chains for Workday-hosted boards
// (myworkdayjobs.com tenants). Workday renders everything client side, so
// these only match on fully rendered HTML.
func NewWorkdaySelectors() *SiteSelectors {
	return &SiteSelectors{
		name: "workday",
		Description: []string{
			".job-description",
			`[data-automation-id="jobDescription"]`,
			".wd-JobDescription",
		},
		Title: []string{
			"h1",
			`[data-automation-id="jobPostingHeader"]`,
		},
		Company: []string{
			".company-name",
		},
	}
}
