package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/goquery"
	"github.com/fwojciec/websearch/htmltomarkdown"
	wshttp "github.com/fwojciec/websearch/http"
	"github.com/fwojciec/websearch/prometheus"
	"github.com/fwojciec/websearch/scrape"
	wsslog "github.com/fwojciec/websearch/slog"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// version is reported to MCP clients.
var version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environ replaces the process environment when non-nil. No .env file
	// is read in that case. Set before calling Run().
	Environ map[string]string

	// Searcher and Fetcher override the configured implementations.
	// Used for end-to-end testing.
	Searcher websearch.Searcher
	Fetcher  websearch.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. With no arguments the
// MCP server is started on stdio.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Version: version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("websearch"),
		kong.Description("Web search and scraping tools for AI agents, served over the Model Context Protocol."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		args = []string{"serve"}
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := m.loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: check SEARCH_PROVIDER, REQUEST_TIMEOUT, MAX_RESULTS and LOG_LEVEL")
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cmd == "serve" && cli.Serve.MetricsAddr != "" {
		deps.Registry = prom.NewRegistry()
		deps.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Metrics = prometheus.NewMetrics(deps.Registry)
	}

	searcher := m.Searcher
	if searcher == nil {
		searcher = cfg.NewSearcher()
	}
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = wshttp.NewFetcher(wshttp.WithTimeout(cfg.Timeout()))
	}
	defer fetcher.Close()

	if deps.Metrics != nil {
		searcher = prometheus.NewMetricsSearcher(searcher, deps.Metrics)
		fetcher = prometheus.NewMetricsFetcher(fetcher, deps.Metrics)
	}

	logger.Debug("configuration loaded",
		"provider", searcher.Name(),
		"timeout", cfg.Timeout(),
		"max_results", cfg.MaxResults,
	)

	deps.Service = &scrape.Service{
		Searcher:     wsslog.NewLoggingSearcher(searcher, logger),
		Fetcher:      wsslog.NewLoggingFetcher(fetcher, logger),
		Extractor:    wsslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Converter:    htmltomarkdown.NewConverter(),
		DefaultLimit: cfg.MaxResults,
	}

	return kongCtx.Run(deps)
}

func (m *Main) loadConfig() (*Config, error) {
	if m.Environ != nil {
		return ParseConfig(m.Environ)
	}
	return LoadConfig()
}
