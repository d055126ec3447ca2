package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	campusgpthttp "github.com/eatulrajput/campusgpt/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlset(urls ...string) string {
	s := `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	for _, u := range urls {
		s += "<url><loc>" + u + "</loc></url>"
	}
	return s + "</urlset>"
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("via robots.txt directive", func(t *testing.T) {
		t.Parallel()
		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/custom-sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/custom-sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(srv.URL+"/a", srv.URL+"/b"))
		})

		s := campusgpthttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
	})

	t.Run("falls back to /sitemap.xml", func(t *testing.T) {
		t.Parallel()
		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(srv.URL+"/only"))
		})

		s := campusgpthttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/only"}, urls)
	})

	t.Run("follows sitemap index recursively", func(t *testing.T) {
		t.Parallel()
		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?><sitemapindex>
				<sitemap><loc>%s/child1.xml</loc></sitemap>
				<sitemap><loc>%s/child2.xml</loc></sitemap>
			</sitemapindex>`, srv.URL, srv.URL)
		})
		mux.HandleFunc("/child1.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(srv.URL+"/a", srv.URL+"/shared"))
		})
		mux.HandleFunc("/child2.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(srv.URL+"/b", srv.URL+"/shared"))
		})

		s := campusgpthttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/shared", srv.URL + "/b"}, urls)
	})

	t.Run("no sitemaps yields empty non-nil slice", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		s := campusgpthttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()
		s := campusgpthttp.NewSitemapService(nil)
		_, err := s.DiscoverURLs(context.Background(), "://bad")
		assert.Error(t, err)
	})
}
