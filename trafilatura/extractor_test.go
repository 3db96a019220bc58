package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements jobtailor.ContentExtractor at compile time.
var _ jobtailor.ContentExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Senior Engineer - Acme Corp</title>
<meta property="og:title" content="Senior Engineer">
</head>
<body>
<nav>Careers | Teams | Benefits</nav>
<main>
<h1>Senior Engineer</h1>
<p>We are looking for an experienced engineer to join our platform team.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Job Posting</title></head>
<body>
<nav><a href="/">Home</a><a href="/careers">Careers</a></nav>
<article>
<h1>Backend Engineer</h1>
<p>You will design and operate the services behind our checkout flow.</p>
<ul><li>5+ years building production systems</li></ul>
</article>
<aside>Similar jobs</aside>
<footer>Copyright 2025</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.HTML, "services behind our checkout flow")
		assert.Contains(t, result.HTML, "5+ years building production systems")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Job Posting</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/teams">Teams</a></li>
<li><a href="/benefits">Benefits</a></li>
</ul>
</nav>
<main>
<h1>Data Engineer</h1>
<p>This paragraph contains the actual posting content we want.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.HTML, "actual posting content we want")
		assert.NotContains(t, result.HTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Job Posting</title></head>
<body>
<article>
<h1>Staff Engineer</h1>
<p>Posting body with substantive responsibilities and requirements text.</p>
</article>
<footer>
<p>Copyright 2025 Acme Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.HTML, "substantive responsibilities")
		assert.NotContains(t, result.HTML, "Copyright 2025 Acme Corp")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, jobtailor.EINVALID, jobtailor.ErrorCode(err))
	})
}
