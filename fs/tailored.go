package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/jobtailor"
)

// maxCompanyLen bounds the company slug in tailored output filenames.
const maxCompanyLen = 20

// TailoredFilename builds the output filename for one tailored résumé,
// e.g. resume_03_Acme_Corp.txt for the third job in a batch.
func TailoredFilename(index int, job *jobtailor.JobPosting) string {
	company := job.Company
	if company == "" {
		company = jobtailor.UnknownCompany
	}
	if len(company) > maxCompanyLen {
		company = company[:maxCompanyLen]
	}
	return fmt.Sprintf("resume_%02d_%s.txt", index, slugify(company))
}

// slugify replaces filesystem-hostile characters with underscores.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// WriteTailored writes one tailored résumé into dir using the conventional
// filename for its batch index. Returns the written path.
func WriteTailored(dir string, index int, job *jobtailor.JobPosting, tailored string) (string, error) {
	if tailored == "" {
		return "", jobtailor.Errorf(jobtailor.EINVALID, "tailored text required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, TailoredFilename(index, job))
	if err := os.WriteFile(path, []byte(tailored), 0644); err != nil {
		return "", err
	}
	return path, nil
}
