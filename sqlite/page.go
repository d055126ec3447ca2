package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/eatulrajput/campusgpt"
)

// Compile-time interface verification.
var _ campusgpt.PageService = (*PageService)(nil)

// PageService implements campusgpt.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// UpsertPage inserts a page or overwrites the existing row with the same
// URL. Each upsert is a single statement committed immediately, so readers
// never observe a partial write.
func (s *PageService) UpsertPage(ctx context.Context, page *campusgpt.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (url, title, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.URL, page.Title, page.Content, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339Nano))

	return err
}

// FindPageByURL retrieves a page by its canonical URL.
func (s *PageService) FindPageByURL(ctx context.Context, url string) (*campusgpt.Page, error) {
	var page campusgpt.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT url, title, content, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.URL, &page.Title, &page.Content, &page.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, campusgpt.Errorf(campusgpt.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	page.FetchedAt, parseErr = time.Parse(time.RFC3339Nano, fetchedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
	}

	return &page, nil
}

// ListPages retrieves the full corpus in insertion order.
func (s *PageService) ListPages(ctx context.Context) ([]*campusgpt.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, content, content_hash, fetched_at
		FROM pages
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*campusgpt.Page
	for rows.Next() {
		var page campusgpt.Page
		var fetchedAt string

		if err := rows.Scan(&page.URL, &page.Title, &page.Content, &page.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		var parseErr error
		page.FetchedAt, parseErr = time.Parse(time.RFC3339Nano, fetchedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// CountPages returns the number of stored pages.
func (s *PageService) CountPages(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
