package jobtailor

// Content holds generic main-content extraction output from an HTML page.
type Content struct {
	// Title is the page title extracted from metadata.
	Title string

	// HTML is the main content with boilerplate (nav, footer, sidebar,
	// cookie banners) removed.
	HTML string
}

// ContentExtractor extracts main content from HTML pages, removing
// boilerplate. Implementations serve as generic fallbacks in the
// description extraction chain when no site-specific selector matches.
type ContentExtractor interface {
	Extract(html string) (*Content, error)
}

// Converter converts HTML to Markdown-flavored text.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a ContentExtractor).
	Convert(html string) (string, error)
}
