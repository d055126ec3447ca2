// Package http provides the HTTP implementations of campusgpt's
// outward-facing services: the page fetcher, the sitemap discoverer and
// the control API server.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eatulrajput/campusgpt"
)

// DefaultFetchTimeout is the default timeout for page fetches.
const DefaultFetchTimeout = 15 * time.Second

// Ensure Fetcher implements campusgpt.Fetcher at compile time.
var _ campusgpt.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw page content over HTTP. It identifies itself
// with the crawler's fixed user agent and does not follow pages that
// require JavaScript rendering.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: campusgpt.UserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET request for the URL. Transport failures are
// errors; a non-2xx response is not, callers inspect StatusCode.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*campusgpt.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, campusgpt.Errorf(campusgpt.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &campusgpt.FetchResult{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: strings.ToLower(resp.Header.Get("Content-Type")),
		Body:        body,
	}, nil
}
