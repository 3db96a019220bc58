package goquery

// NewLinkedInSelectors returns the selector chains for LinkedIn job pages.
// LinkedIn serves two distinct DOMs: the logged-out public posting
// (.description__text, .topcard__*) and the logged-in jobs UI
// (.jobs-description__content, .job-details-*). Both are covered, logged-in
// variants first since they carry the richer markup.
func NewLinkedInSelectors() *SiteSelectors {
	return &SiteSelectors{
		name: "linkedin",
		Description: []string{
			".description__text",
			".jobs-description__content",
			`[data-test-id="job-description"]`,
			".job-details-jobs-unified-description__content",
		},
		Title: []string{
			".job-details-jobs-unified-top-card__job-title",
			"h1",
			".topcard__title",
		},
		Company: []string{
			".job-details-jobs-unified-top-card__company-name",
			".topcard__org-name-link",
		},
	}
}
