package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/websearch/prometheus"
	"github.com/fwojciec/websearch/scrape"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Service  *scrape.Service
	Metrics  *prometheus.Metrics
	Registry *prom.Registry
	Version  string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve        ServeCmd        `cmd:"" help:"Serve the web search tools over MCP (default)"`
	Search       SearchCmd       `cmd:"" help:"Search the web"`
	Scrape       ScrapeCmd       `cmd:"" help:"Scrape a single web page"`
	SearchScrape SearchScrapeCmd `cmd:"" name:"search-scrape" help:"Search the web and scrape each result"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP        string `name:"http" placeholder:"ADDR" help:"Serve MCP over streamable HTTP on ADDR instead of stdio"`
	MetricsAddr string `name:"metrics-addr" placeholder:"ADDR" help:"Expose Prometheus metrics on ADDR"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query      string `arg:"" help:"Search query"`
	MaxResults int    `short:"n" name:"max-results" help:"Maximum number of results (default MAX_RESULTS)"`
	Language   string `short:"l" help:"Result language (default zh-CN)"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL        string `arg:"" help:"Page URL"`
	NoText     bool   `name:"no-text" help:"Omit the content excerpt"`
	NoMetadata bool   `name:"no-metadata" help:"Omit page metadata"`
	Markdown   bool   `short:"m" help:"Include a Markdown rendering of the page"`
}

// SearchScrapeCmd is the "search-scrape" subcommand.
type SearchScrapeCmd struct {
	Query      string `arg:"" help:"Search query"`
	MaxResults int    `short:"n" name:"max-results" help:"Maximum number of results (default 3)"`
	Language   string `short:"l" help:"Result language (default zh-CN)"`
}
