package jobtailor_test

import (
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Smith
jane.smith@example.com | (555) 123-4567
linkedin.com/in/janesmith
github.com/janesmith

Summary
Backend engineer with 8 years building distributed systems.

Experience
Acme Corp | Senior Engineer | 2019 - Present
Built the billing pipeline.

Education
BSc Computer Science, State University

Technical Skills
Go, Python, PostgreSQL
`

func TestParseResume_ContactInfo(t *testing.T) {
	t.Parallel()

	resume := jobtailor.ParseResume(sampleResume)

	assert.Equal(t, "Jane Smith", resume.Contact.Name)
	assert.Equal(t, "jane.smith@example.com", resume.Contact.Email)
	assert.Equal(t, "(555) 123-4567", resume.Contact.Phone)
	assert.Equal(t, "linkedin.com/in/janesmith", resume.Contact.LinkedIn)
	assert.Equal(t, "github.com/janesmith", resume.Contact.Portfolio)
}

func TestParseResume_Sections(t *testing.T) {
	t.Parallel()

	resume := jobtailor.ParseResume(sampleResume)

	require.Contains(t, resume.Sections, "summary")
	assert.Equal(t, []string{"Backend engineer with 8 years building distributed systems."}, resume.Sections["summary"])

	require.Contains(t, resume.Sections, "experience")
	assert.Len(t, resume.Sections["experience"], 2)

	require.Contains(t, resume.Sections, "education")
	require.Contains(t, resume.Sections, "skills")
	assert.Equal(t, []string{"Go, Python, PostgreSQL"}, resume.Sections["skills"])
}

func TestParseResume_LongLineMentioningKeywordIsContent(t *testing.T) {
	t.Parallel()

	text := "Experience\n" +
		"Led a team of twelve engineers and gained extensive experience shipping large distributed systems.\n"

	resume := jobtailor.ParseResume(text)

	require.Contains(t, resume.Sections, "experience")
	assert.Len(t, resume.Sections["experience"], 1)
}

func TestParseResume_EmptyInput(t *testing.T) {
	t.Parallel()

	resume := jobtailor.ParseResume("")

	assert.Empty(t, resume.Contact.Name)
	assert.Empty(t, resume.Sections)
}

func TestParseResume_Deterministic(t *testing.T) {
	t.Parallel()

	a := jobtailor.ParseResume(sampleResume)
	b := jobtailor.ParseResume(sampleResume)

	assert.Equal(t, a, b)
}
