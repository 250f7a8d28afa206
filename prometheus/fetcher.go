package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/websearch"
)

// Ensure MetricsFetcher implements websearch.Fetcher.
var _ websearch.Fetcher = (*MetricsFetcher)(nil)

// MetricsFetcher wraps a Fetcher and records fetch counts and latency.
type MetricsFetcher struct {
	next    websearch.Fetcher
	metrics *Metrics
}

// NewMetricsFetcher creates a new MetricsFetcher.
func NewMetricsFetcher(next websearch.Fetcher, metrics *Metrics) *MetricsFetcher {
	return &MetricsFetcher{next: next, metrics: metrics}
}

// Fetch delegates to the wrapped fetcher and records the outcome.
func (f *MetricsFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.metrics.FetchRequests.WithLabelValues(status(err)).Inc()
		f.metrics.FetchDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *MetricsFetcher) Close() error {
	return f.next.Close()
}
