package campusgpt

import (
	"context"
	"time"
)

// Page represents a crawled website page persisted in the store.
// Pages are keyed by canonical URL; re-fetching the same URL overwrites
// title, content and fetched_at in place.
type Page struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // normalized plain text
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "page content required")
	}
	return nil
}

// PageService represents a service for managing crawled pages.
// Implementations must tolerate a concurrent writer (the crawl engine)
// and readers (index rebuild, status queries).
type PageService interface {
	// UpsertPage inserts a page or, if a page with the same URL exists,
	// overwrites its title, content and fetched_at (last-write-wins).
	UpsertPage(ctx context.Context, page *Page) error

	// FindPageByURL retrieves a page by its canonical URL.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// ListPages retrieves the full corpus ordered by insertion.
	ListPages(ctx context.Context) ([]*Page, error)

	// CountPages returns the number of stored pages.
	CountPages(ctx context.Context) (int, error)
}
