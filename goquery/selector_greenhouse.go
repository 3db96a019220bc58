package goquery

// NewGreenhouseSelectors returns the selector chains for Greenhouse-hosted
// boards (boards.greenhouse.io and embedded career pages).
func NewGreenhouseSelectors() *SiteSelectors {
	return &SiteSelectors{
		name: "greenhouse",
		Description: []string{
			".job-description",
			"#content",
			".app-body",
		},
		Title: []string{
			".app-title",
			"h1",
			".job-title",
		},
		Company: []string{
			".company-name",
			".header-company-name",
		},
	}
}
