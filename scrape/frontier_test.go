package scrape_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/scrape"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := scrape.NewFrontier(1000, 0.01)

	link := jobtailor.DiscoveredLink{
		URL:      "https://acme.com/jobs/backend-engineer",
		Priority: jobtailor.PriorityListing,
	}

	// First push should succeed
	ok := f.Push(link)
	assert.True(t, ok, "first push should succeed")

	// Second push of same URL should be rejected
	ok = f.Push(link)
	assert.False(t, ok, "duplicate URL should be rejected")
}

func TestFrontier_Pop_returns_highest_priority_first(t *testing.T) {
	t.Parallel()

	f := scrape.NewFrontier(1000, 0.01)

	// Push links in random priority order
	f.Push(jobtailor.DiscoveredLink{URL: "https://acme.com/footer", Priority: jobtailor.PriorityFooter})
	f.Push(jobtailor.DiscoveredLink{URL: "https://acme.com/nav", Priority: jobtailor.PriorityNavigation})
	f.Push(jobtailor.DiscoveredLink{URL: "https://acme.com/content", Priority: jobtailor.PriorityContent})
	f.Push(jobtailor.DiscoveredLink{URL: "https://acme.com/jobs/1", Priority: jobtailor.PriorityPosting})
	f.Push(jobtailor.DiscoveredLink{URL: "https://acme.com/jobs", Priority: jobtailor.PriorityListing})

	// Pop should return in priority order (highest first)
	link, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, jobtailor.PriorityPosting, link.Priority)
	assert.Equal(t, "https://acme.com/jobs/1", link.URL)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, jobtailor.PriorityListing, link.Priority)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, jobtailor.PriorityNavigation, link.Priority)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, jobtailor.PriorityContent, link.Priority)

	link, ok = f.Pop()
	assert.True(t, ok)
	assert.Equal(t, jobtailor.PriorityFooter, link.Priority)

	// Queue should now be empty
	_, ok = f.Pop()
	assert.False(t, ok, "pop on empty frontier should return false")
}

func TestFrontier_Len_tracks_queue_size(t *testing.T) {
	t.Parallel()

	f := scrape.NewFrontier(1000, 0.01)

	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push(jobtailor.DiscoveredLink{URL: "https://acme.com/a", Priority: jobtailor.PriorityContent})
	assert.Equal(t, 1, f.Len())

	f.Push(jobtailor.DiscoveredLink{URL: "https://acme.com/b", Priority: jobtailor.PriorityContent})
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_strips_fragments_for_deduplication(t *testing.T) {
	t.Parallel()

	f := scrape.NewFrontier(1000, 0.01)

	ok := f.Push(jobtailor.DiscoveredLink{URL: "https://acme.com/jobs/1#apply", Priority: jobtailor.PriorityPosting})
	assert.True(t, ok)

	// Same URL with different fragment is a duplicate
	ok = f.Push(jobtailor.DiscoveredLink{URL: "https://acme.com/jobs/1#requirements", Priority: jobtailor.PriorityPosting})
	assert.False(t, ok, "URLs differing only by fragment should be duplicates")

	link, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://acme.com/jobs/1", link.URL, "stored URL should have fragment stripped")

	assert.True(t, f.Seen("https://acme.com/jobs/1"))
	assert.True(t, f.Seen("https://acme.com/jobs/1#other"))
}

func TestFrontier_referral_variants_are_duplicates(t *testing.T) {
	t.Parallel()

	f := scrape.NewFrontier(1000, 0.01)

	ok := f.Push(jobtailor.DiscoveredLink{
		URL:      "https://boards.greenhouse.io/acme/jobs/1?gh_src=newsletter",
		Priority: jobtailor.PriorityPosting,
	})
	assert.True(t, ok)

	ok = f.Push(jobtailor.DiscoveredLink{
		URL:      "https://boards.greenhouse.io/acme/jobs/1?utm_source=twitter",
		Priority: jobtailor.PriorityPosting,
	})
	assert.False(t, ok, "same posting behind different referral parameters should be a duplicate")

	link, ok := f.Pop()
	assert.True(t, ok)
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/1", link.URL)
}

func TestFrontier_is_safe_for_concurrent_use(t *testing.T) {
	t.Parallel()

	f := scrape.NewFrontier(10000, 0.01)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Push(jobtailor.DiscoveredLink{
					URL:      fmt.Sprintf("https://acme.com/jobs/%d-%d", worker, j),
					Priority: jobtailor.PriorityPosting,
				})
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1000, f.Len())
}
