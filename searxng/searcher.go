// Package searxng implements websearch.Searcher against a SearXNG instance's
// JSON search endpoint.
package searxng

import (
	"context"
	"time"

	"github.com/fwojciec/websearch"
	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds each search request.
const DefaultTimeout = 10 * time.Second

// Ensure Searcher implements websearch.Searcher at compile time.
var _ websearch.Searcher = (*Searcher)(nil)

// Searcher queries a SearXNG instance.
type Searcher struct {
	client  *resty.Client
	timeout time.Duration
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithTimeout sets the timeout for search requests.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// NewSearcher creates a new Searcher for the SearXNG instance at baseURL.
func NewSearcher(baseURL string, opts ...Option) *Searcher {
	s := &Searcher{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}

	// SearXNG's bot detection rejects requests without a forwarding
	// address when running behind a proxy.
	s.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(s.timeout).
		SetRetryCount(0).
		SetHeader("X-Real-IP", "127.0.0.1").
		SetHeader("X-Forwarded-For", "127.0.0.1")

	return s
}

// Name returns the provider name.
func (s *Searcher) Name() string {
	return "searxng"
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search issues one search request and returns at most
// min(q.Limit, websearch.MaxProviderResultCount) results.
func (s *Searcher) Search(ctx context.Context, q websearch.SearchQuery) (*websearch.SearchResponse, error) {
	req := s.client.R().
		SetContext(ctx).
		SetQueryParam("q", q.Query).
		SetQueryParam("format", "json")
	if q.Language != "" {
		req.SetQueryParam("language", q.Language)
	}

	var res searchResponse
	resp, err := req.SetResult(&res).Get("/search")
	if err != nil {
		return nil, websearch.Errorf(websearch.EUNAVAILABLE, "searxng request failed: %v", err)
	}
	if !resp.IsSuccess() {
		return nil, websearch.Errorf(websearch.EUNAVAILABLE, "searxng returned status %d", resp.StatusCode())
	}

	n := min(len(res.Results), q.Limit, websearch.MaxProviderResultCount)
	results := make([]*websearch.SearchResult, 0, max(n, 0))
	for i := 0; i < n; i++ {
		r := res.Results[i]
		results = append(results, &websearch.SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Content,
			Rank:    i + 1,
		})
	}

	return &websearch.SearchResponse{Results: results}, nil
}
