package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/eatulrajput/campusgpt"
)

// Ensure LoggingSearchIndex implements campusgpt.SearchIndex.
var _ campusgpt.SearchIndex = (*LoggingSearchIndex)(nil)

// LoggingSearchIndex wraps a SearchIndex with operation logging.
type LoggingSearchIndex struct {
	next   campusgpt.SearchIndex
	logger *slog.Logger
}

// NewLoggingSearchIndex creates a new LoggingSearchIndex.
func NewLoggingSearchIndex(next campusgpt.SearchIndex, logger *slog.Logger) *LoggingSearchIndex {
	return &LoggingSearchIndex{next: next, logger: logger}
}

// Rebuild delegates to the wrapped index and logs the operation.
func (i *LoggingSearchIndex) Rebuild(ctx context.Context) (indexed int, err error) {
	defer func(begin time.Time) {
		i.logger.Info("index rebuild",
			"indexed", indexed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Rebuild(ctx)
}

// Query delegates to the wrapped index and logs the operation.
func (i *LoggingSearchIndex) Query(ctx context.Context, text string, topN int) (results []campusgpt.SearchResult, err error) {
	defer func(begin time.Time) {
		i.logger.Info("search",
			"query", text,
			"top_n", topN,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Query(ctx, text, topN)
}

// IndexedCount delegates to the wrapped index.
func (i *LoggingSearchIndex) IndexedCount() int {
	return i.next.IndexedCount()
}
