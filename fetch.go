package campusgpt

import "context"

// FetchResult holds one HTTP response body with the metadata the crawl
// loop needs for content-type dispatch.
type FetchResult struct {
	// URL is the request URL (after normalization, before redirects).
	URL string

	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// ContentType is the declared Content-Type header, lowercased.
	ContentType string

	// Body is the raw response body.
	Body []byte
}

// Fetcher retrieves raw content from URLs with a bounded timeout and a
// fixed identifying user agent.
type Fetcher interface {
	// Fetch performs a GET request and returns the response.
	// A non-2xx status is not an error; callers inspect StatusCode.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
