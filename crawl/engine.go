// Package crawl provides the breadth-first crawl engine.
// It coordinates fetching, robots policy, extraction and storage of
// pages within a bounded domain, running at most one job at a time.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/eatulrajput/campusgpt"
	"github.com/google/uuid"
)

// DefaultFetchTimeout bounds a single page fetch.
const DefaultFetchTimeout = 15 * time.Second

var _ campusgpt.Crawler = (*Engine)(nil)

// Engine implements campusgpt.Crawler. The zero value with the service
// fields populated is ready to use.
type Engine struct {
	Pages    campusgpt.PageService
	Fetcher  campusgpt.Fetcher
	HTML     campusgpt.Extractor
	PDF      campusgpt.Extractor
	Links    campusgpt.LinkExtractor
	Robots   campusgpt.RobotsPolicy
	Sitemaps campusgpt.SitemapService // optional, consulted when cfg.SeedSitemaps
	Logger   *slog.Logger             // optional

	// FetchTimeout bounds one fetch. Zero means DefaultFetchTimeout.
	FetchTimeout time.Duration

	mu     sync.Mutex
	status campusgpt.CrawlStatus
	cancel context.CancelFunc
	done   chan struct{}
}

// Start launches a background crawl job. If a job is already running it
// returns the running job's status without starting another.
func (e *Engine) Start(ctx context.Context, cfg campusgpt.CrawlConfig) (campusgpt.CrawlStatus, error) {
	if err := cfg.Validate(); err != nil {
		return e.Status(), err
	}

	seed, err := campusgpt.NormalizeURL("", cfg.SeedURL)
	if err != nil {
		return e.Status(), err
	}
	root := cfg.RootDomain
	if root == "" {
		u, err := url.Parse(seed)
		if err != nil || u.Hostname() == "" {
			return e.Status(), campusgpt.Errorf(campusgpt.EINVALID, "seed URL %q has no host", cfg.SeedURL)
		}
		root = u.Hostname()
	}

	e.mu.Lock()
	if e.status.Running {
		status := e.status
		e.mu.Unlock()
		return status, nil
	}

	// The job outlives the request that started it, so it gets its own
	// cancellation arc detached from the caller's context.
	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.cancel = cancel
	e.done = make(chan struct{})
	e.status = campusgpt.CrawlStatus{
		State:     campusgpt.CrawlRunning,
		Running:   true,
		JobID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	status := e.status
	done := e.done
	e.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		e.run(jobCtx, cfg, seed, root)
	}()

	return status, nil
}

// Stop requests cooperative cancellation of the running job. The loop
// observes the signal at its next iteration; Stop does not block for it.
// Stop on an idle engine is a no-op.
func (e *Engine) Stop() campusgpt.CrawlStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status.Running && e.cancel != nil {
		e.cancel()
	}
	return e.snapshotLocked()
}

// Status returns a snapshot of the job record.
func (e *Engine) Status() campusgpt.CrawlStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Wait blocks until the current job finishes. It returns immediately if
// no job has ever started.
func (e *Engine) Wait() {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (e *Engine) snapshotLocked() campusgpt.CrawlStatus {
	status := e.status
	if status.State == "" {
		status.State = campusgpt.CrawlIdle
	}
	return status
}

func (e *Engine) run(ctx context.Context, cfg campusgpt.CrawlConfig, seed, root string) {
	defer func() {
		if r := recover(); r != nil {
			e.finish(campusgpt.CrawlFailed, fmt.Sprintf("crawl panic: %v", r))
		}
	}()

	limiter := NewDelayLimiter(cfg.Delay)
	frontier := NewFrontier()
	frontier.Push(seed)

	if cfg.SeedSitemaps && e.Sitemaps != nil {
		urls, err := e.Sitemaps.DiscoverURLs(ctx, seed)
		if err != nil {
			e.logger().Warn("sitemap discovery failed", "url", seed, "error", err)
		}
		for _, u := range urls {
			if campusgpt.InScope(u, root) {
				frontier.Push(u)
			}
		}
	}

	for {
		if ctx.Err() != nil {
			e.finish(campusgpt.CrawlCancelled, "")
			return
		}
		if frontier.VisitedCount() >= cfg.MaxPages {
			e.finish(campusgpt.CrawlCompleted, "")
			return
		}
		rawURL, ok := frontier.Pop()
		if !ok {
			e.finish(campusgpt.CrawlCompleted, "")
			return
		}
		if !frontier.Visit(rawURL) {
			continue
		}
		if !campusgpt.InScope(rawURL, root) {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			e.finish(campusgpt.CrawlCancelled, "")
			return
		}
		if !e.Robots.Allowed(ctx, rawURL) {
			e.logger().Debug("robots disallowed", "url", rawURL)
			continue
		}

		if err := e.crawlPage(ctx, frontier, rawURL, root); err != nil {
			e.finish(campusgpt.CrawlFailed, err.Error())
			return
		}
		e.setLastURL(rawURL)
	}
}

// crawlPage fetches, extracts and stores one URL and enqueues its links.
// Per-URL fetch and extraction failures are logged and skipped; only a
// storage failure is returned, failing the job.
func (e *Engine) crawlPage(ctx context.Context, frontier *Frontier, rawURL, root string) error {
	timeout := e.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	// Detached so that Stop lets the in-flight request finish.
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	res, err := e.Fetcher.Fetch(fetchCtx, rawURL)
	if err != nil {
		e.logger().Warn("fetch failed", "url", rawURL, "error", err)
		return nil
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		e.logger().Debug("skipping response", "url", rawURL, "status", res.StatusCode)
		return nil
	}

	var (
		extractor campusgpt.Extractor
		isHTML    bool
	)
	switch {
	case strings.Contains(res.ContentType, "application/pdf") || strings.HasSuffix(strings.ToLower(rawURL), ".pdf"):
		extractor = e.PDF
	case strings.Contains(res.ContentType, "text/html"):
		extractor = e.HTML
		isHTML = true
	default:
		e.logger().Debug("skipping unsupported content type", "url", rawURL, "content_type", res.ContentType)
		return nil
	}

	extracted, err := extractor.Extract(res.Body)
	if err != nil {
		e.logger().Warn("extraction failed", "url", rawURL, "error", err)
		return nil
	}

	if extracted.Text != "" {
		title := extracted.Title
		if title == "" {
			title = titleFromURL(rawURL)
		}
		page := &campusgpt.Page{URL: rawURL, Title: title, Content: extracted.Text}
		// Detached like the fetch: a Stop arriving mid-iteration must not
		// lose a page the fetch already paid for.
		saveCtx, cancelSave := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancelSave()
		if err := e.Pages.UpsertPage(saveCtx, page); err != nil {
			return fmt.Errorf("save page %s: %w", rawURL, err)
		}
		e.incPagesSaved()
		e.logger().Info("page saved", "url", rawURL, "title", title)
	}

	if isHTML {
		links, err := e.Links.ExtractLinks(res.Body, rawURL)
		if err != nil {
			e.logger().Warn("link extraction failed", "url", rawURL, "error", err)
			return nil
		}
		for _, link := range links {
			if campusgpt.InScope(link, root) && !frontier.Visited(link) {
				frontier.Push(link)
			}
		}
	}
	return nil
}

func (e *Engine) finish(state campusgpt.CrawlState, errMsg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status.State = state
	e.status.Running = false
	e.status.FinishedAt = time.Now().UTC()
	e.status.Error = errMsg
}

func (e *Engine) incPagesSaved() {
	e.mu.Lock()
	e.status.PagesSaved++
	e.mu.Unlock()
}

func (e *Engine) setLastURL(rawURL string) {
	e.mu.Lock()
	e.status.LastURL = rawURL
	e.mu.Unlock()
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// titleFromURL derives a title for documents that carry none of their
// own, such as PDFs.
func titleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" || base == "" {
		return u.Hostname()
	}
	return base
}
