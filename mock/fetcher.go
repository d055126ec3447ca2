package mock

import (
	"context"

	"github.com/eatulrajput/campusgpt"
)

var _ campusgpt.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of campusgpt.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*campusgpt.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*campusgpt.FetchResult, error) {
	return f.FetchFn(ctx, url)
}
