package jobtailor

import (
	"regexp"
	"strings"
)

// Resume represents a parsed candidate résumé. The parser consumes plain
// text; extracting text from PDF/DOCX bytes is an external concern.
type Resume struct {
	RawText  string              `json:"rawText"`
	Contact  ContactInfo         `json:"contactInfo"`
	Sections map[string][]string `json:"sections"`
}

// ContactInfo holds contact details found near the top of a résumé.
type ContactInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// Résumé section keywords. A short line containing one of these (case
// insensitive) opens the corresponding section.
var resumeSectionKeywords = []struct {
	name     string
	keywords []string
}{
	{"summary", []string{"summary", "objective", "profile", "about"}},
	{"experience", []string{"experience", "employment", "work history"}},
	{"education", []string{"education", "academic"}},
	{"skills", []string{"skills", "core competencies", "expertise", "technologies"}},
	{"certifications", []string{"certifications", "certificates", "licenses", "accreditations"}},
	{"projects", []string{"projects", "portfolio"}},
}

// maxSectionHeaderLen bounds how long a line can be and still be treated as
// a section header. Longer lines mentioning a keyword are content.
const maxSectionHeaderLen = 48

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4}`)
)

// ParseResume structures plain résumé text into contact info and sections.
// It is a pure function: same input, same output.
func ParseResume(text string) *Resume {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return &Resume{
		RawText:  text,
		Contact:  extractContactInfo(lines),
		Sections: identifyResumeSections(lines),
	}
}

// extractContactInfo scans the first few lines for contact details.
func extractContactInfo(lines []string) ContactInfo {
	var info ContactInfo

	head := lines
	if len(head) > 10 {
		head = head[:10]
	}

	for _, line := range head {
		if info.Email == "" {
			info.Email = emailRe.FindString(line)
		}
		if info.Phone == "" {
			info.Phone = phoneRe.FindString(line)
		}
		lower := strings.ToLower(line)
		if info.LinkedIn == "" && strings.Contains(lower, "linkedin") {
			info.LinkedIn = line
		}
		if info.Portfolio == "" {
			for _, marker := range []string{"github", "portfolio", "website"} {
				if strings.Contains(lower, marker) {
					info.Portfolio = line
					break
				}
			}
		}
	}

	// The name is usually the first short line that isn't contact data.
	nameCandidates := lines
	if len(nameCandidates) > 5 {
		nameCandidates = nameCandidates[:5]
	}
	for _, line := range nameCandidates {
		lower := strings.ToLower(line)
		if strings.ContainsAny(line, "@") || strings.Contains(lower, "http") ||
			strings.Contains(lower, "phone") || strings.Contains(lower, "email") ||
			strings.Contains(lower, "linkedin") {
			continue
		}
		if len(strings.Fields(line)) <= 4 && phoneRe.FindString(line) == "" {
			info.Name = line
			break
		}
	}

	return info
}

// identifyResumeSections groups résumé lines under common section names.
func identifyResumeSections(lines []string) map[string][]string {
	sections := make(map[string][]string)

	var currentSection string
	var currentContent []string

	flush := func() {
		if currentSection != "" && len(currentContent) > 0 {
			sections[currentSection] = currentContent
		}
	}

	for _, line := range lines {
		name, ok := matchSectionHeader(line)
		if ok {
			flush()
			currentSection = name
			currentContent = nil
			continue
		}
		if currentSection != "" {
			currentContent = append(currentContent, line)
		}
	}
	flush()

	return sections
}

func matchSectionHeader(line string) (string, bool) {
	if len(line) > maxSectionHeaderLen {
		return "", false
	}
	lower := strings.ToLower(line)
	for _, section := range resumeSectionKeywords {
		for _, keyword := range section.keywords {
			if strings.Contains(lower, keyword) {
				return section.name, true
			}
		}
	}
	return "", false
}
