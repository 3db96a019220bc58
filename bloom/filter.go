// Package bloom provides probabilistic deduplication of job posting URLs.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// trackingParams are query parameters that referral links and job boards
// append without changing which posting the URL resolves to. Greenhouse
// uses gh_src, Lever uses lever-origin and lever-source.
var trackingParams = map[string]bool{
	"gh_src":       true,
	"lever-origin": true,
	"lever-source": true,
	"ref":          true,
	"src":          true,
	"source":       true,
}

// Canonicalize normalizes a posting URL for deduplication. Fragments and
// tracking query parameters (utm_* included) are dropped so the same
// posting reached through different referral links counts once.
// Unparseable URLs are returned as-is.
func Canonicalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	if u.RawQuery != "" {
		q := u.Query()
		for name := range q {
			if trackingParams[name] || strings.HasPrefix(name, "utm_") {
				q.Del(name)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Filter is a Bloom filter over canonicalized posting URLs.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a posting URL. The URL is canonicalized before hashing.
func (f *Filter) Add(url string) {
	f.f.AddString(Canonicalize(url))
}

// Test reports whether the URL may have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(Canonicalize(url))
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
