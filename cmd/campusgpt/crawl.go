package main

import (
	"fmt"
	"time"

	"github.com/eatulrajput/campusgpt"
)

// Run executes the crawl command. It starts a job and blocks until the
// crawl finishes.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg := campusgpt.CrawlConfig{
		SeedURL:      c.URL,
		RootDomain:   c.Root,
		MaxPages:     c.MaxPages,
		Delay:        time.Duration(c.Delay * float64(time.Second)),
		SeedSitemaps: c.SeedSitemaps,
	}

	status, err := deps.Crawler.Start(deps.Ctx, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", campusgpt.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "crawling %s (job %s)\n", c.URL, status.JobID)

	deps.Crawler.Wait()
	final := deps.Crawler.Status()

	fmt.Fprintf(deps.Stdout, "%s: %d pages saved in %s\n",
		final.State, final.PagesSaved, final.FinishedAt.Sub(final.StartedAt).Round(time.Millisecond))
	if final.Error != "" {
		return fmt.Errorf("crawl failed: %s", final.Error)
	}
	return nil
}
