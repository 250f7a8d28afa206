// Package mcp exposes the websearch operations as Model Context Protocol
// tools using the official Go SDK.
package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/prometheus"
	"github.com/fwojciec/websearch/scrape"
	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Implementation identity reported to clients during initialization.
const (
	DefaultName    = "websearch"
	DefaultVersion = "1.0.0"
)

// Tool names.
const (
	ToolWebSearch          = "web_search"
	ToolWebScrape          = "web_scrape"
	ToolWebSearchAndScrape = "web_search_and_scrape"
)

// Server registers the websearch tools on an MCP server.
type Server struct {
	service *scrape.Service
	logger  *slog.Logger
	metrics *prometheus.Metrics
	version string

	server *mcpsdk.Server

	// ops maps registered tool names to the operation named in failures.
	ops map[string]string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for per-call logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics enables tool call counting.
func WithMetrics(m *prometheus.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithVersion sets the version reported to clients.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewServer creates a Server backed by svc with all tools registered.
func NewServer(svc *scrape.Service, opts ...Option) *Server {
	s := &Server{
		service: svc,
		logger:  slog.New(slog.DiscardHandler),
		version: DefaultVersion,
		ops:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.server = mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    DefaultName,
		Version: s.version,
	}, nil)
	s.server.AddReceivingMiddleware(s.flagToolErrors)
	s.registerTools()

	return s
}

// MCPServer returns the underlying SDK server.
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

// Run serves a single session over t until the client disconnects or ctx
// is cancelled.
func (s *Server) Run(ctx context.Context, t mcpsdk.Transport) error {
	return s.server.Run(ctx, t)
}

// Handler returns an http.Handler serving the MCP streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(_ *http.Request) *mcpsdk.Server {
		return s.server
	}, &mcpsdk.StreamableHTTPOptions{Stateless: true})
}

// flagToolErrors keeps tools/call failures out of the protocol layer. An
// unregistered tool name, or arguments the SDK rejects before the handler
// runs, are answered with an error-flagged result.
func (s *Server) flagToolErrors(next mcpsdk.MethodHandler) mcpsdk.MethodHandler {
	return func(ctx context.Context, method string, req mcpsdk.Request) (mcpsdk.Result, error) {
		if method != "tools/call" {
			return next(ctx, method, req)
		}
		call, ok := req.(*mcpsdk.CallToolRequest)
		if !ok || call.Params == nil {
			return next(ctx, method, req)
		}

		name := call.Params.Name
		op, known := s.ops[name]
		if !known {
			err := websearch.Errorf(websearch.ENOTFOUND, "unknown tool: %s", name)
			s.logger.Warn("tool call",
				"request_id", uuid.NewString(),
				"tool", name,
				"err", err,
			)
			s.metrics.RecordToolCall("unknown", err)
			return errorResult("Error: " + websearch.ErrorMessage(err)), nil
		}

		begin := time.Now()
		res, err := next(ctx, method, req)
		if err == nil {
			return res, nil
		}

		// Handlers never return errors, so this is argument decoding or
		// schema validation.
		err = websearch.Errorf(websearch.EINVALID, "invalid arguments: %v", err)
		s.observe(name, begin, err)
		return failure(op, err), nil
	}
}

// observe logs and counts one completed tool call.
func (s *Server) observe(tool string, begin time.Time, err error) {
	s.logger.Info("tool call",
		"request_id", uuid.NewString(),
		"tool", tool,
		"duration", time.Since(begin),
		"err", err,
	)
	s.metrics.RecordToolCall(tool, err)
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		IsError: true,
	}
}

// failure renders a fatal operation error. Coded errors show their message;
// anything else shows the error text.
func failure(op string, err error) *mcpsdk.CallToolResult {
	return errorResult("Error: " + op + " failed: " + websearch.ErrorMessage(err))
}
