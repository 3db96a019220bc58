package goquery

// NewIndeedSelectors returns the selector chains for Indeed job pages.
// #jobDescriptionText has been stable for years; the data-testid variants
// cover the newer React frontend.
func NewIndeedSelectors() *SiteSelectors {
	return &SiteSelectors{
		name: "indeed",
		Description: []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
			`[data-testid="jobDescriptionText"]`,
		},
		Title: []string{
			".jobsearch-JobInfoHeader-title",
			"h1",
			`[data-testid="jobsearch-JobInfoHeader-title"]`,
		},
		Company: []string{
			".jobsearch-JobInfoHeader-companyName",
			`[data-testid="jobsearch-JobInfoHeader-companyName"]`,
		},
	}
}
