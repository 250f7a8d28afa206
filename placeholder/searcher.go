// Package placeholder provides a network-free websearch.Searcher used when
// no search provider credentials are configured.
package placeholder

import (
	"context"
	"fmt"

	"github.com/fwojciec/websearch"
)

// Ensure Searcher implements websearch.Searcher at compile time.
var _ websearch.Searcher = (*Searcher)(nil)

// Searcher returns deterministic results derived from the query text.
// It never fails and never performs I/O.
type Searcher struct{}

// NewSearcher creates a new placeholder Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Name returns the provider name.
func (s *Searcher) Name() string {
	return "placeholder"
}

// Search returns up to websearch.MaxPlaceholderResults results.
func (s *Searcher) Search(_ context.Context, q websearch.SearchQuery) (*websearch.SearchResponse, error) {
	n := min(q.Limit, websearch.MaxPlaceholderResults)

	results := make([]*websearch.SearchResult, 0, max(n, 0))
	for rank := 1; rank <= n; rank++ {
		results = append(results, &websearch.SearchResult{
			Title:   fmt.Sprintf("Search result %d for %q", rank, q.Query),
			URL:     fmt.Sprintf("https://example.com/result%d", rank),
			Snippet: fmt.Sprintf("This is example search result summary %d for %q.", rank, q.Query),
			Rank:    rank,
		})
	}

	return &websearch.SearchResponse{
		Results:     results,
		Placeholder: true,
	}, nil
}
