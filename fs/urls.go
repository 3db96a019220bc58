package fs

import (
	"bufio"
	"os"
	"strings"

	"github.com/fwojciec/jobtailor"
)

// ReadURLFile reads a newline-delimited URL list. Blank lines and lines
// starting with # are skipped; surrounding whitespace is trimmed.
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, jobtailor.Errorf(jobtailor.ENOTFOUND, "URL file %q not found", path)
		}
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(urls) == 0 {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "URL file %q contains no URLs", path)
	}

	return urls, nil
}
