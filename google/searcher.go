// Package google implements websearch.Searcher against the Google Custom
// Search JSON API.
package google

import (
	"context"
	"strconv"
	"time"

	"github.com/fwojciec/websearch"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the Google APIs host serving Custom Search.
const DefaultBaseURL = "https://www.googleapis.com"

// searchPath is the Custom Search JSON API endpoint.
const searchPath = "/customsearch/v1"

// DefaultTimeout bounds each search request.
const DefaultTimeout = 10 * time.Second

// Ensure Searcher implements websearch.Searcher at compile time.
var _ websearch.Searcher = (*Searcher)(nil)

// Searcher queries a Programmable Search Engine identified by its engine ID.
type Searcher struct {
	client   *resty.Client
	apiKey   string
	engineID string
	baseURL  string
	timeout  time.Duration
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithBaseURL overrides the API host. Used to point the client at a test server.
func WithBaseURL(u string) Option {
	return func(s *Searcher) {
		s.baseURL = u
	}
}

// WithTimeout sets the timeout for search requests.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// NewSearcher creates a new Searcher using the given API key and engine ID.
func NewSearcher(apiKey, engineID string, opts ...Option) *Searcher {
	s := &Searcher{
		apiKey:   apiKey,
		engineID: engineID,
		baseURL:  DefaultBaseURL,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = resty.New().
		SetBaseURL(s.baseURL).
		SetTimeout(s.timeout).
		SetRetryCount(0)

	return s
}

// Name returns the provider name.
func (s *Searcher) Name() string {
	return "google"
}

type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search issues one Custom Search request. The requested count is clamped
// to websearch.MaxProviderResultCount, the API's per-call maximum.
func (s *Searcher) Search(ctx context.Context, q websearch.SearchQuery) (*websearch.SearchResponse, error) {
	params := map[string]string{
		"key": s.apiKey,
		"cx":  s.engineID,
		"q":   q.Query,
		"num": strconv.Itoa(min(q.Limit, websearch.MaxProviderResultCount)),
	}
	if q.Language != "" {
		params["lr"] = "lang_" + q.Language
	}

	var res searchResponse
	var apiErr errorResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&res).
		SetError(&apiErr).
		Get(searchPath)
	if err != nil {
		return nil, websearch.Errorf(websearch.EUNAVAILABLE, "google search request failed: %v", err)
	}

	if !resp.IsSuccess() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return nil, websearch.Errorf(websearch.EUNAVAILABLE, "google search API error (status %d): %s", resp.StatusCode(), msg)
	}

	results := make([]*websearch.SearchResult, 0, len(res.Items))
	for i, item := range res.Items {
		results = append(results, &websearch.SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
			Rank:    i + 1,
		})
	}

	return &websearch.SearchResponse{Results: results}, nil
}
