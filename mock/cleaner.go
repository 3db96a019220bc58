package mock

import "github.com/fwojciec/jobtailor"

var _ jobtailor.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of jobtailor.Cleaner.
type Cleaner struct {
	CleanFn func(text string) *jobtailor.CleaningResult
}

func (c *Cleaner) Clean(text string) *jobtailor.CleaningResult {
	return c.CleanFn(text)
}
