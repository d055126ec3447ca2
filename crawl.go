package campusgpt

import (
	"context"
	"time"
)

// CrawlState identifies the lifecycle state of the crawl job singleton.
type CrawlState string

// Crawl job lifecycle states. A job moves Idle -> Running -> one of
// {Completed, Cancelled, Failed}; terminal states are "idle" in the sense
// that a new job may start from them.
const (
	CrawlIdle      CrawlState = "idle"
	CrawlRunning   CrawlState = "running"
	CrawlCompleted CrawlState = "completed"
	CrawlCancelled CrawlState = "cancelled"
	CrawlFailed    CrawlState = "failed"
)

// CrawlStatus is an immutable snapshot of the process-wide crawl job.
// StartedAt, FinishedAt and LastURL are zero values until first set.
type CrawlStatus struct {
	State      CrawlState `json:"state"`
	Running    bool       `json:"running"`
	JobID      string     `json:"job_id,omitempty"`
	PagesSaved int        `json:"pages_saved"`
	StartedAt  time.Time  `json:"started_at,omitzero"`
	FinishedAt time.Time  `json:"finished_at,omitzero"`
	LastURL    string     `json:"last_url,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// CrawlConfig holds the parameters for one crawl job.
type CrawlConfig struct {
	// SeedURL is the first URL pushed onto the frontier.
	SeedURL string

	// RootDomain bounds the crawl scope. Empty means "host of SeedURL".
	RootDomain string

	// MaxPages caps the number of visited URLs. The job completes once
	// the visited set reaches this size; zero visits nothing.
	MaxPages int

	// Delay is the politeness pause between requests.
	Delay time.Duration

	// SeedSitemaps, when true, enqueues sitemap-declared URLs after the
	// seed before the loop starts. In-scope and visited rules still apply.
	SeedSitemaps bool
}

// Validate returns an error if the config cannot start a job.
func (c *CrawlConfig) Validate() error {
	if c.SeedURL == "" {
		return Errorf(EINVALID, "seed URL required")
	}
	if c.MaxPages < 0 {
		return Errorf(EINVALID, "max pages must not be negative")
	}
	if c.Delay < 0 {
		return Errorf(EINVALID, "delay must not be negative")
	}
	return nil
}

// Crawler runs at most one background crawl job process-wide and exposes
// its status record.
type Crawler interface {
	// Start launches a background crawl job and returns its fresh status.
	// If a job is already running it is a no-op that returns the current
	// status (never an error).
	Start(ctx context.Context, cfg CrawlConfig) (CrawlStatus, error)

	// Stop requests cooperative cancellation. In-flight work is allowed
	// to finish; the loop observes the signal at its next iteration.
	// Stop on an idle crawler is a no-op. Returns the current status.
	Stop() CrawlStatus

	// Status returns a snapshot of the job record. Safe to call from any
	// goroutine regardless of state.
	Status() CrawlStatus
}

// Frontier manages the per-job crawl queue in breadth-first order
// together with the authoritative visited set.
type Frontier interface {
	// Push appends a URL to the queue unless it has been visited or is
	// already queued. Returns false if the URL was not enqueued.
	Push(url string) bool

	// Pop returns the oldest queued URL (FIFO). The bool result is false
	// if the frontier is empty.
	Pop() (string, bool)

	// Visit marks a URL visited. Returns false if it was already visited.
	Visit(url string) bool

	// Visited reports whether the URL has been visited.
	Visited(url string) bool

	// VisitedCount returns the size of the visited set.
	VisitedCount() int

	// Len returns the number of queued URLs.
	Len() int
}

// Limiter paces requests for politeness.
type Limiter interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
