package campusgpt_test

import (
	"testing"

	"github.com/eatulrajput/campusgpt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		link string
		want string
	}{
		{
			name: "resolves relative link against base",
			base: "https://kiit.ac.in/admissions/",
			link: "fees.html",
			want: "https://kiit.ac.in/admissions/fees.html",
		},
		{
			name: "strips query",
			base: "https://kiit.ac.in/",
			link: "/exams?session=spring",
			want: "https://kiit.ac.in/exams",
		},
		{
			name: "strips fragment",
			base: "https://kiit.ac.in/",
			link: "/hostel#rules",
			want: "https://kiit.ac.in/hostel",
		},
		{
			name: "absolute link replaces base",
			base: "https://kiit.ac.in/",
			link: "https://kims.kiit.ac.in/contact",
			want: "https://kims.kiit.ac.in/contact",
		},
		{
			name: "keeps port",
			base: "http://localhost:8080/a/",
			link: "b",
			want: "http://localhost:8080/a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := campusgpt.NormalizeURL(tt.base, tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURL_is_idempotent(t *testing.T) {
	t.Parallel()

	once, err := campusgpt.NormalizeURL("https://kiit.ac.in/a", "b?q=1#frag")
	require.NoError(t, err)

	twice, err := campusgpt.NormalizeURL(once, once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestInScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		root string
		want bool
	}{
		{"exact host", "https://kiit.ac.in/a", "kiit.ac.in", true},
		{"subdomain", "https://www.kiit.ac.in/a", "kiit.ac.in", true},
		{"deep subdomain", "https://mail.admin.kiit.ac.in/", "kiit.ac.in", true},
		{"suffix without dot boundary", "https://evilkiit.ac.in/a", "kiit.ac.in", false},
		{"different host", "https://example.com/", "kiit.ac.in", false},
		{"case insensitive", "https://WWW.KIIT.AC.IN/", "kiit.ac.in", true},
		{"empty root", "https://kiit.ac.in/", "", false},
		{"host with port", "http://kiit.ac.in:8080/", "kiit.ac.in", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, campusgpt.InScope(tt.url, tt.root))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", campusgpt.CollapseWhitespace("  a\t\tb\n\n c  "))
	assert.Empty(t, campusgpt.CollapseWhitespace(" \n\t "))
}
