package campusgpt

import "context"

// SitemapService discovers URLs a site declares in its sitemaps.
// Used to optionally seed the crawl frontier; the crawl engine still
// applies scope and visited rules to every discovered URL.
type SitemapService interface {
	// DiscoverURLs finds URLs from the site's robots.txt Sitemap
	// directives, falling back to /sitemap.xml. Returns an empty slice
	// (not nil) if no sitemaps are found.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
