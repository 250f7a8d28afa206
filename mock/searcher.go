package mock

import (
	"context"

	"github.com/fwojciec/websearch"
)

var _ websearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of websearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, q websearch.SearchQuery) (*websearch.SearchResponse, error)
	NameFn   func() string
}

func (s *Searcher) Search(ctx context.Context, q websearch.SearchQuery) (*websearch.SearchResponse, error) {
	return s.SearchFn(ctx, q)
}

func (s *Searcher) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}
