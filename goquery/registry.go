package goquery

import "github.com/fwojciec/jobtailor"

// SiteSelectors holds the ordered CSS selector chains for one job board.
// Within each chain, earlier selectors are preferred: boards A/B-test and
// version their DOM, so every entry is a fallback for the ones before it.
type SiteSelectors struct {
	name        string
	Description []string
	Title       []string
	Company     []string
}

// Name returns the selector set's identifier (e.g., "linkedin").
func (s *SiteSelectors) Name() string {
	return s.name
}

// Registry maps known boards to their selector sets.
type Registry struct {
	selectors map[jobtailor.Board]*SiteSelectors
}

// NewRegistry creates an empty Registry. Use DefaultRegistry for one with
// all supported boards registered.
func NewRegistry() *Registry {
	return &Registry{
		selectors: make(map[jobtailor.Board]*SiteSelectors),
	}
}

// DefaultRegistry creates a Registry with every supported board registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(jobtailor.BoardLinkedIn, NewLinkedInSelectors())
	r.Register(jobtailor.BoardIndeed, NewIndeedSelectors())
	r.Register(jobtailor.BoardGreenhouse, NewGreenhouseSelectors())
	r.Register(jobtailor.BoardLever, NewLeverSelectors())
	r.Register(jobtailor.BoardWorkday, NewWorkdaySelectors())
	r.Register(jobtailor.BoardAshby, NewAshbySelectors())
	return r
}

// Get returns the selector set for a board.
// Returns nil if no set is registered, which routes extraction to the
// generic strategies.
func (r *Registry) Get(board jobtailor.Board) *SiteSelectors {
	return r.selectors[board]
}

// Register adds a selector set for a board.
// If a set is already registered for the board, it is replaced.
func (r *Registry) Register(board jobtailor.Board, selectors *SiteSelectors) {
	r.selectors[board] = selectors
}

// List returns all registered boards.
func (r *Registry) List() []jobtailor.Board {
	boards := make([]jobtailor.Board, 0, len(r.selectors))
	for b := range r.selectors {
		boards = append(boards, b)
	}
	return boards
}
