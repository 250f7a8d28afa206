package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/websearch/mcp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Run executes the serve command. It blocks until the client disconnects,
// the context is cancelled, or a listener fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mcp.NewServer(deps.Service,
		mcp.WithLogger(deps.Logger),
		mcp.WithMetrics(deps.Metrics),
		mcp.WithVersion(deps.Version),
	)

	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()

	if c.MetricsAddr != "" && deps.Registry != nil {
		handler := promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})
		go func() {
			if err := listenAndServe(ctx, c.MetricsAddr, handler, deps.Logger); err != nil {
				deps.Logger.Error("metrics server stopped", "addr", c.MetricsAddr, "err", err)
			}
		}()
		deps.Logger.Info("serving metrics", "addr", c.MetricsAddr)
	}

	if c.HTTP != "" {
		deps.Logger.Info("serving MCP over HTTP", "addr", c.HTTP, "provider", deps.Service.Searcher.Name())
		return listenAndServe(ctx, c.HTTP, srv.Handler(), deps.Logger)
	}

	deps.Logger.Info("serving MCP over stdio", "provider", deps.Service.Searcher.Name())
	if err := srv.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// listenAndServe serves handler on addr until ctx is cancelled, then shuts
// the server down gracefully.
func listenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down", "addr", addr)
		return server.Shutdown(shutdownCtx)
	}
}
