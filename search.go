package websearch

import "context"

// Defaults applied to search requests when the caller leaves a field unset.
const (
	DefaultLanguage        = "zh-CN"
	DefaultSearchLimit     = 10
	DefaultPipelineLimit   = 3
	MaxPlaceholderResults  = 3
	MaxProviderResultCount = 10
)

// SearchResult is a single ranked hit returned by a Searcher.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`

	// Rank is the 1-based position of the result within its response.
	// Ranks are dense and unique within one response.
	Rank int `json:"rank"`
}

// SearchQuery describes one search request.
type SearchQuery struct {
	Query    string `json:"query"`
	Limit    int    `json:"limit"`
	Language string `json:"language"`
}

// Validate returns an error if the query contains invalid fields.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return Errorf(EINVALID, "query required")
	}
	if q.Limit < 1 {
		return Errorf(EINVALID, "result limit must be at least 1, got %d", q.Limit)
	}
	return nil
}

// SearchResponse holds the ranked results of one search.
type SearchResponse struct {
	Results []*SearchResult `json:"results"`

	// Placeholder is true when the results were synthesized locally
	// because no search provider is configured.
	Placeholder bool `json:"placeholder"`
}

// Searcher performs web searches against a provider.
type Searcher interface {
	// Search returns results ordered by ascending rank.
	// Providers clamp q.Limit to their per-call maximum without reporting it.
	// Transport failures and non-success responses return EUNAVAILABLE.
	Search(ctx context.Context, q SearchQuery) (*SearchResponse, error)

	// Name identifies the provider for logs and metrics.
	Name() string
}
