package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/eatulrajput/campusgpt"
	"github.com/eatulrajput/campusgpt/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Pages   campusgpt.PageService
	Index   campusgpt.SearchIndex
	Crawler *crawl.Engine
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `help:"Path to the sqlite database (overrides CAMPUSGPT_DB)"`

	Serve   ServeCmd   `cmd:"" help:"Run the crawl and search API server"`
	Crawl   CrawlCmd   `cmd:"" help:"Crawl a website and store its pages"`
	Search  SearchCmd  `cmd:"" help:"Search the stored pages"`
	Reindex ReindexCmd `cmd:"" help:"Rebuild the search index from the stored pages"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" default:":8080" help:"Address to listen on"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL          string  `arg:"" help:"Seed URL to start crawling from"`
	MaxPages     int     `short:"n" default:"200" help:"Maximum number of pages to visit"`
	Delay        float64 `short:"d" default:"1" help:"Politeness delay between requests in seconds"`
	Root         string  `short:"r" help:"Root domain bounding the crawl (defaults to the seed's host)"`
	SeedSitemaps bool    `help:"Also seed the frontier from the site's sitemaps"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search query"`
	Top   int      `short:"t" default:"5" help:"Number of results to return"`
}

// ReindexCmd is the "reindex" subcommand.
type ReindexCmd struct{}
