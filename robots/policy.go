// Package robots provides a robots.txt crawl-permission policy for
// campusgpt backed by the robotstxt exclusion-rules parser.
package robots

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/eatulrajput/campusgpt"
	"github.com/temoto/robotstxt"
)

// DefaultFetchTimeout bounds a robots.txt request.
const DefaultFetchTimeout = 10 * time.Second

// Compile-time interface verification.
var _ campusgpt.RobotsPolicy = (*Policy)(nil)

// Policy evaluates cached robots exclusion rules per host.
//
// Rules are fetched once per host and cached for the Policy's lifetime
// (one crawl job). A nil cache entry records a host whose robots file
// could not be obtained; such hosts fail open.
type Policy struct {
	client    *http.Client
	userAgent string

	mu    sync.Mutex
	cache map[string]*robotstxt.RobotsData
}

// Option configures a Policy.
type Option func(*Policy)

// WithClient sets the HTTP client used to fetch robots files.
func WithClient(client *http.Client) Option {
	return func(p *Policy) {
		p.client = client
	}
}

// NewPolicy creates a new Policy evaluating rules for userAgent.
// An empty userAgent defaults to campusgpt.UserAgent.
func NewPolicy(userAgent string, opts ...Option) *Policy {
	p := &Policy{
		userAgent: userAgent,
		cache:     make(map[string]*robotstxt.RobotsData),
	}
	if p.userAgent == "" {
		p.userAgent = campusgpt.UserAgent
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return p
}

// Allowed reports whether the policy's user agent may fetch the URL.
// Unparseable target URLs and unreachable or malformed robots files are
// treated as allowed (fail open).
func (p *Policy) Allowed(ctx context.Context, rawURL string) bool {
	target, err := url.Parse(rawURL)
	if err != nil || target.Host == "" {
		return true
	}

	data := p.robotsData(ctx, target)
	if data == nil {
		return true
	}

	return data.TestAgent(target.RequestURI(), p.userAgent)
}

// robotsData returns the cached rules for the target's host, fetching on
// first use. Returns nil when no usable rules exist.
func (p *Policy) robotsData(ctx context.Context, target *url.URL) *robotstxt.RobotsData {
	host := target.Host

	p.mu.Lock()
	data, ok := p.cache[host]
	p.mu.Unlock()
	if ok {
		return data
	}

	data = p.fetch(ctx, target)

	p.mu.Lock()
	p.cache[host] = data
	p.mu.Unlock()

	return data
}

func (p *Policy) fetch(ctx context.Context, target *url.URL) *robotstxt.RobotsData {
	robotsURL := &url.URL{Scheme: target.Scheme, Host: target.Host, Path: "/robots.txt"}
	if robotsURL.Scheme != "http" && robotsURL.Scheme != "https" {
		robotsURL.Scheme = "https"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL.String(), nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil
	}
	return data
}
