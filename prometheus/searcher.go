package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/websearch"
)

// Ensure MetricsSearcher implements websearch.Searcher.
var _ websearch.Searcher = (*MetricsSearcher)(nil)

// MetricsSearcher wraps a Searcher and records request counts and latency
// per provider.
type MetricsSearcher struct {
	next    websearch.Searcher
	metrics *Metrics
}

// NewMetricsSearcher creates a new MetricsSearcher.
func NewMetricsSearcher(next websearch.Searcher, metrics *Metrics) *MetricsSearcher {
	return &MetricsSearcher{next: next, metrics: metrics}
}

// Name returns the wrapped provider name.
func (s *MetricsSearcher) Name() string {
	return s.next.Name()
}

// Search delegates to the wrapped searcher and records the outcome.
func (s *MetricsSearcher) Search(ctx context.Context, q websearch.SearchQuery) (resp *websearch.SearchResponse, err error) {
	defer func(begin time.Time) {
		provider := s.next.Name()
		s.metrics.SearchRequests.WithLabelValues(provider, status(err)).Inc()
		s.metrics.SearchDuration.WithLabelValues(provider).Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.Search(ctx, q)
}
