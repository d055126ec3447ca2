package campusgpt

import "context"

// SnippetLength is the character budget for result snippets. A snippet is
// the page content truncated to this length after whitespace normalization.
const SnippetLength = 800

// DefaultTopN is the number of results returned when the caller does not
// specify one.
const DefaultTopN = 5

// SearchResult is one ranked document returned by a query.
type SearchResult struct {
	URL     string  `json:"url"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
}

// SearchIndex answers top-N similarity queries over the stored corpus.
// The index rebuilds itself lazily when the store's row count diverges
// from the count the current snapshot was built from.
type SearchIndex interface {
	// Rebuild reads the full corpus from the page store, fits a fresh
	// term-weighting model and atomically replaces the snapshot. An empty
	// corpus yields an empty snapshot, not an error. On failure the
	// previous snapshot, if any, stays in place.
	Rebuild(ctx context.Context) (indexed int, err error)

	// Query returns the topN highest-scoring documents for the query text
	// in strictly descending score order (ties broken by row order).
	// Blank or whitespace-only input returns an empty list without
	// touching the index. topN <= 0 means DefaultTopN.
	Query(ctx context.Context, text string, topN int) ([]SearchResult, error)

	// IndexedCount returns the row count the current snapshot was built
	// from; zero if no snapshot exists.
	IndexedCount() int
}
