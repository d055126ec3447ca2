// Package slog provides logging decorators for campusgpt services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/eatulrajput/campusgpt"
)

// Ensure LoggingFetcher implements campusgpt.Fetcher.
var _ campusgpt.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   campusgpt.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next campusgpt.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *campusgpt.FetchResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if res != nil {
			attrs = append(attrs,
				"status", res.StatusCode,
				"content_type", res.ContentType,
				"bytes", len(res.Body),
			)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
