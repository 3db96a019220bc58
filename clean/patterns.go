package clean

import (
	"regexp"
	"strings"
)

// uiPatterns is the fixed, ordered list of UI-noise expressions removed from
// raw descriptions. Order matters: multi-line spans (cookie/report banners)
// are removed before the short label patterns that could otherwise split
// them. All patterns are case-insensitive.
var uiPatterns = compileAll([]string{
	// Auth and account chrome
	`Sign in to start saving`,
	`Forgot your password\??`,
	`Don'?t have an account\??`,
	`Register with`,
	`Email address`,
	`Password`,
	`Log in`,
	`Sign up`,
	// Search and recommendation chrome
	`Search jobs?`,
	`Begin typing for results?`,
	`Related job searches[\s\S]*?jobs`,
	`Do you want to receive recommendations[\s\S]*?unsubscribe anytime`,
	`By creating an email alert[\s\S]*?Privacy Policy`,
	// Apply / save / share boilerplate
	`Apply on company site`,
	`Apply\s+Now`,
	`(?m)Apply\s*$`,
	`Save\s+(?:this\s+)?job`,
	`Share this job`,
	`Be careful[\s\S]*?report this job`,
	`Report this job`,
	`Email to yourself[\s\S]*?Send to another email`,
	// Posting metadata
	`Posted \d+ days? ago`,
	`\d+d?\s*ago\s*,?\s*`,
	`\d+ applicants?`,
	// Compensation and employment-type labels (only meaningful as isolated
	// boilerplate; substantive sentences rarely match these exact shapes)
	`\$[\d,]+\s*[-–]\s*\$?[\d,]+.*?(?:a year|per year|annually)`,
	`Full[\s-]?time`,
	`Part[\s-]?time`,
	`Permanent\s*,?\s*`,
	// Generic experience-years boilerplate
	`\d+\+?\s*years?\s*(?:of\s*)?experience`,
})

// uiLabels is the closed set of one-word UI labels dropped during line
// filtering when a line consists of nothing else.
var uiLabels = map[string]struct{}{
	"search": {},
	"apply":  {},
	"save":   {},
	"share":  {},
	"report": {},
	"back":   {},
	"next":   {},
	"submit": {},
}

// sectionRule maps a header expression to its canonical section name.
type sectionRule struct {
	re   *regexp.Regexp
	name string
}

// sectionRules is the fixed, ordered header table. The first rule matching a
// line wins, so role_overview patterns are checked before the more generic
// requirement/benefit forms.
var sectionRules = []sectionRule{
	{regexp.MustCompile(`(?i)About\s+(?:the\s+)?Role|Job Description|Position Overview`), "role_overview"},
	{regexp.MustCompile(`(?i)(?:Key\s+)?Responsibilit(?:y|ies)|What You['’]ll Do|Duties`), "responsibilities"},
	{regexp.MustCompile(`(?i)Requirements?|Qualifications?|What You['’]ll Bring|Skills?\s*(?:&|and)\s*Experience`), "requirements"},
	{regexp.MustCompile(`(?i)(?:What['’]s\s+)?(?:on\s+)?Offer|Benefits?|Perks?|Compensation`), "benefits"},
	{regexp.MustCompile(`(?i)About\s+(?:the\s+)?Company|Who We Are`), "company_info"},
}

var (
	tripleNewlineRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
	spaceRunRe      = regexp.MustCompile(`[ \t]+`)
)

func compileAll(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if !strings.HasPrefix(p, "(?") {
			p = "(?i)" + p
		} else if strings.HasPrefix(p, "(?m)") {
			p = "(?im)" + strings.TrimPrefix(p, "(?m)")
		}
		res = append(res, regexp.MustCompile(p))
	}
	return res
}
