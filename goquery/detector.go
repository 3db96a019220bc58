package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/jobtailor"
)

// Ensure Detector implements jobtailor.BoardDetector at compile time.
var _ jobtailor.BoardDetector = (*Detector)(nil)

// knownBoards lists the job boards with site-specific selector support,
// keyed by the registrable domains they serve postings from. Matching is by
// host substring, so subdomains like boards.greenhouse.io classify
// correctly. Workday lists two domains: the marketing site lives on
// workday.com but tenant postings live on company.wd5.myworkdayjobs.com.
var knownBoards = []struct {
	board   jobtailor.Board
	domains []string
}{
	{jobtailor.BoardLinkedIn, []string{"linkedin.com"}},
	{jobtailor.BoardIndeed, []string{"indeed.com"}},
	{jobtailor.BoardGreenhouse, []string{"greenhouse.io"}},
	{jobtailor.BoardLever, []string{"lever.co"}},
	{jobtailor.BoardWorkday, []string{"workday.com", "myworkdayjobs.com"}},
	{jobtailor.BoardAshby, []string{"ashbyhq.com"}},
}

// Detector classifies job posting URLs against the known boards.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the board a URL belongs to and the matched registrable
// domain. Unknown hosts return BoardUnknown with the host stripped of "www.".
func (d *Detector) Detect(pageURL string) (jobtailor.Board, string) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return jobtailor.BoardUnknown, ""
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")

	for _, known := range knownBoards {
		for _, domain := range known.domains {
			if strings.Contains(host, domain) {
				return known.board, domain
			}
		}
	}

	return jobtailor.BoardUnknown, host
}
