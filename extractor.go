package jobtailor

// Board identifies a known job board. The value is the board's registrable
// domain, which doubles as the Domain classification on scraped postings.
type Board string

// Known job boards with site-specific extraction support.
const (
	BoardUnknown    Board = ""
	BoardLinkedIn   Board = "linkedin.com"
	BoardIndeed     Board = "indeed.com"
	BoardGreenhouse Board = "greenhouse.io"
	BoardLever      Board = "lever.co"
	BoardWorkday    Board = "workday.com"
	BoardAshby      Board = "ashbyhq.com"
)

// Extraction holds the fields located within a job posting page.
// Description is raw extracted text, before cleaning.
type Extraction struct {
	Title       string
	Company     string
	Description string
	Domain      string
}

// JobExtractor locates the title, company, and description within arbitrary
// job-board HTML.
//
// Extraction is best-effort and never fails: a missing signal degrades to
// the sentinel defaults (UnknownTitle, UnknownCompany, empty description),
// and a fault in any one candidate strategy advances to the next. The
// returned Extraction is never nil.
type JobExtractor interface {
	Extract(pageURL, html string) *Extraction
}

// BoardDetector classifies URLs against the known job boards.
type BoardDetector interface {
	// Detect returns the board a URL belongs to, plus the domain used as
	// the Domain value on postings: the matched registrable domain for a
	// known board, otherwise the bare host stripped of "www.". Boards
	// hosted on more than one domain (Workday postings live on
	// myworkdayjobs.com) report the domain that matched.
	Detect(pageURL string) (Board, string)
}
