package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	campushttp "github.com/eatulrajput/campusgpt/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := campushttp.NewServer(deps.Crawler, deps.Index, deps.Pages, deps.Logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, c.Addr)
	})
	g.Go(func() error {
		// On shutdown, stop any running crawl and wait for the loop to
		// observe the cancellation so partial progress is recorded.
		<-ctx.Done()
		deps.Crawler.Stop()
		deps.Crawler.Wait()
		return nil
	})

	fmt.Fprintf(deps.Stdout, "campusgpt listening on %s\n", c.Addr)
	return g.Wait()
}
