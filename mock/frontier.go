package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of jobtailor.URLFrontier.
type URLFrontier struct {
	PushFn func(link jobtailor.DiscoveredLink) bool
	PopFn  func() (jobtailor.DiscoveredLink, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(link jobtailor.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (jobtailor.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ jobtailor.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of jobtailor.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
