package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/websearch"
)

// Ensure LoggingSearcher implements websearch.Searcher.
var _ websearch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with request logging. Provider failures
// log at warn level with their error code.
type LoggingSearcher struct {
	next   websearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next websearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Name returns the wrapped provider name.
func (s *LoggingSearcher) Name() string {
	return s.next.Name()
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, q websearch.SearchQuery) (resp *websearch.SearchResponse, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"provider", s.next.Name(),
			"query", q.Query,
			"limit", q.Limit,
			"language", q.Language,
			"duration", time.Since(begin),
		}
		if err != nil {
			s.logger.Warn("search failed", append(attrs, "code", websearch.ErrorCode(err), "err", err)...)
			return
		}
		var count int
		var placeholder bool
		if resp != nil {
			count, placeholder = len(resp.Results), resp.Placeholder
		}
		s.logger.Info("search", append(attrs, "count", count, "placeholder", placeholder)...)
	}(time.Now())
	return s.next.Search(ctx, q)
}
