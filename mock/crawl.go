package mock

import (
	"context"

	"github.com/eatulrajput/campusgpt"
)

// Compile-time interface verification.
var (
	_ campusgpt.Crawler  = (*Crawler)(nil)
	_ campusgpt.Frontier = (*Frontier)(nil)
	_ campusgpt.Limiter  = (*Limiter)(nil)
)

// Crawler is a mock implementation of campusgpt.Crawler.
type Crawler struct {
	StartFn  func(ctx context.Context, cfg campusgpt.CrawlConfig) (campusgpt.CrawlStatus, error)
	StopFn   func() campusgpt.CrawlStatus
	StatusFn func() campusgpt.CrawlStatus
}

func (c *Crawler) Start(ctx context.Context, cfg campusgpt.CrawlConfig) (campusgpt.CrawlStatus, error) {
	return c.StartFn(ctx, cfg)
}

func (c *Crawler) Stop() campusgpt.CrawlStatus {
	return c.StopFn()
}

func (c *Crawler) Status() campusgpt.CrawlStatus {
	return c.StatusFn()
}

// Frontier is a mock implementation of campusgpt.Frontier.
type Frontier struct {
	PushFn         func(url string) bool
	PopFn          func() (string, bool)
	VisitFn        func(url string) bool
	VisitedFn      func(url string) bool
	VisitedCountFn func() int
	LenFn          func() int
}

func (f *Frontier) Push(url string) bool {
	return f.PushFn(url)
}

func (f *Frontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *Frontier) Visit(url string) bool {
	return f.VisitFn(url)
}

func (f *Frontier) Visited(url string) bool {
	return f.VisitedFn(url)
}

func (f *Frontier) VisitedCount() int {
	return f.VisitedCountFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

// Limiter is a mock implementation of campusgpt.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
