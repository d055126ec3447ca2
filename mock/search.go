package mock

import (
	"context"

	"github.com/eatulrajput/campusgpt"
)

var _ campusgpt.SearchIndex = (*SearchIndex)(nil)

// SearchIndex is a mock implementation of campusgpt.SearchIndex.
type SearchIndex struct {
	RebuildFn      func(ctx context.Context) (int, error)
	QueryFn        func(ctx context.Context, text string, topN int) ([]campusgpt.SearchResult, error)
	IndexedCountFn func() int
}

func (i *SearchIndex) Rebuild(ctx context.Context) (int, error) {
	return i.RebuildFn(ctx)
}

func (i *SearchIndex) Query(ctx context.Context, text string, topN int) ([]campusgpt.SearchResult, error) {
	return i.QueryFn(ctx, text, topN)
}

func (i *SearchIndex) IndexedCount() int {
	return i.IndexedCountFn()
}
