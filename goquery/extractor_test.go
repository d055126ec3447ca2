package goquery_test

import (
	"testing"

	"github.com/eatulrajput/campusgpt/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns title and visible text", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title> Admissions </title></head>
			<body><h1>Admissions</h1><p>Apply before June.</p></body></html>`

		got, err := goquery.NewExtractor().Extract([]byte(html))
		require.NoError(t, err)
		assert.Equal(t, "Admissions", got.Title)
		assert.Equal(t, "Admissions Apply before June.", got.Text)
	})

	t.Run("removes non-content elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Page</title><style>body{}</style></head><body>
			<nav>Home About</nav>
			<header>Campus Portal</header>
			<script>alert("hi")</script>
			<p>Hostel fees are due.</p>
			<noscript>enable js</noscript>
			<footer>contact us</footer>
			</body></html>`

		got, err := goquery.NewExtractor().Extract([]byte(html))
		require.NoError(t, err)
		assert.Equal(t, "Hostel fees are due.", got.Text)
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><p>exam\n\n   schedule</p>\t<p>spring</p></body></html>"

		got, err := goquery.NewExtractor().Extract([]byte(html))
		require.NoError(t, err)
		assert.Equal(t, "exam schedule spring", got.Text)
	})

	t.Run("separates text of adjacent elements", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><span>exam</span><span>schedule</span></body></html>"

		got, err := goquery.NewExtractor().Extract([]byte(html))
		require.NoError(t, err)
		assert.Equal(t, "exam schedule", got.Text)
	})

	t.Run("empty title when document declares none", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewExtractor().Extract([]byte("<html><body><p>text</p></body></html>"))
		require.NoError(t, err)
		assert.Empty(t, got.Title)
	})

	t.Run("decodes HTML entities", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewExtractor().Extract([]byte("<html><body><p>fees &amp; dues</p></body></html>"))
		require.NoError(t, err)
		assert.Equal(t, "fees & dues", got.Text)
	})
}

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves and canonicalizes anchors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/admissions">Admissions</a>
			<a href="hostel?tab=fees">Hostel</a>
			<a href="https://kiit.ac.in/exams#dates">Exams</a>
		</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks([]byte(html), "https://kiit.ac.in/")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://kiit.ac.in/admissions",
			"https://kiit.ac.in/hostel",
			"https://kiit.ac.in/exams",
		}, links)
	})

	t.Run("skips pseudo-links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="mailto:info@kiit.ac.in">Mail</a>
			<a href="tel:+911234567890">Call</a>
			<a href="javascript:void(0)">Menu</a>
			<a href="/contact">Contact</a>
		</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks([]byte(html), "https://kiit.ac.in/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://kiit.ac.in/contact"}, links)
	})

	t.Run("keeps out-of-scope links for the caller to filter", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://other.example/x">elsewhere</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks([]byte(html), "https://kiit.ac.in/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://other.example/x"}, links)
	})

	t.Run("deduplicates preserving document order", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/a">one</a><a href="/b">two</a><a href="/a#frag">one again</a>`

		links, err := goquery.NewLinkExtractor().ExtractLinks([]byte(html), "https://kiit.ac.in/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://kiit.ac.in/a", "https://kiit.ac.in/b"}, links)
	})
}
