package jobtailor

import (
	"sort"
	"strings"
)

// FormatResume formats a parsed résumé for inclusion in an LLM prompt.
// Contact fields come first, then sections in a stable order.
func FormatResume(resume *Resume) string {
	var b strings.Builder

	writeField := func(label, value string) {
		if value != "" {
			b.WriteString(label)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString("\n")
		}
	}
	writeField("NAME", resume.Contact.Name)
	writeField("EMAIL", resume.Contact.Email)
	writeField("PHONE", resume.Contact.Phone)
	writeField("LINKEDIN", resume.Contact.LinkedIn)
	writeField("PORTFOLIO", resume.Contact.Portfolio)

	if len(resume.Sections) == 0 {
		b.WriteString("\nRAW RESUME TEXT:\n")
		b.WriteString(resume.RawText)
		return b.String()
	}

	names := make([]string, 0, len(resume.Sections))
	for name := range resume.Sections {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return resumeSectionRank(names[i]) < resumeSectionRank(names[j])
	})

	for _, name := range names {
		content := resume.Sections[name]
		if len(content) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(strings.ToUpper(name))
		b.WriteString(":\n")
		for _, line := range content {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// resumeSectionRank orders sections the way they appear on a conventional
// résumé, so the prompt reads naturally.
func resumeSectionRank(name string) int {
	for i, section := range resumeSectionKeywords {
		if section.name == name {
			return i
		}
	}
	return len(resumeSectionKeywords)
}
