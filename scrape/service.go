// Package scrape orchestrates searching, fetching, and extraction.
//
// Service composes a websearch.Searcher, websearch.Fetcher, and
// websearch.Extractor into the three operations exposed to agents: search,
// single-page scrape, and search-then-scrape.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"github.com/fwojciec/websearch"
)

// Service runs search and scrape operations. It holds no per-request
// state, so a single Service may serve concurrent calls.
type Service struct {
	Searcher  websearch.Searcher
	Fetcher   websearch.Fetcher
	Extractor websearch.Extractor

	// Converter renders Markdown when ScrapeOptions.IncludeMarkdown is set.
	// Optional; nil disables Markdown output.
	Converter websearch.Converter

	// DefaultLimit is used by Search when the query leaves Limit unset.
	// Zero means websearch.DefaultSearchLimit.
	DefaultLimit int
}

// Search runs a single search. Unset limit and language fall back to the
// service defaults. Search failures are returned unchanged.
func (s *Service) Search(ctx context.Context, q websearch.SearchQuery) (*websearch.SearchResponse, error) {
	limit := s.DefaultLimit
	if limit == 0 {
		limit = websearch.DefaultSearchLimit
	}
	q = withDefaults(q, limit)

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return s.Searcher.Search(ctx, q)
}

// Scrape fetches and extracts a single page. Fetch failures are returned
// to the caller.
func (s *Service) Scrape(ctx context.Context, rawURL string, opts websearch.ScrapeOptions) (*websearch.PageContent, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	page, err := s.Extractor.Extract(html, rawURL, opts)
	if err != nil {
		return nil, err
	}

	if opts.IncludeMarkdown {
		if s.Converter == nil {
			return nil, websearch.Errorf(websearch.EINVALID, "markdown output is not available")
		}
		if page.Markdown, err = s.Converter.Convert(html); err != nil {
			return nil, fmt.Errorf("convert to markdown: %w", err)
		}
	}

	return page, nil
}

// SearchAndScrape searches once, then scrapes every result in rank order.
//
// A search failure fails the whole operation and no report is produced.
// After a successful search the operation never fails: each result yields
// one section, holding either an excerpt of at most
// websearch.PipelineExcerptLimit characters or the error that stopped the
// scrape. Results are processed one at a time.
func (s *Service) SearchAndScrape(ctx context.Context, q websearch.SearchQuery) (*websearch.Report, error) {
	q = withDefaults(q, websearch.DefaultPipelineLimit)

	if err := q.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.Searcher.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	results := slices.Clone(resp.Results)
	slices.SortStableFunc(results, func(a, b *websearch.SearchResult) int {
		return a.Rank - b.Rank
	})

	report := &websearch.Report{
		Query:       q.Query,
		Placeholder: resp.Placeholder,
		Sections:    make([]*websearch.Section, 0, len(results)),
	}
	for _, r := range results {
		report.Sections = append(report.Sections, s.scrapeResult(ctx, r))
	}

	return report, nil
}

// scrapeResult fetches and extracts one search result. Errors are captured
// in the returned section rather than propagated.
func (s *Service) scrapeResult(ctx context.Context, r *websearch.SearchResult) *websearch.Section {
	page, err := s.Scrape(ctx, r.URL, websearch.ScrapeOptions{ExtractText: true})
	if err != nil {
		return &websearch.Section{Result: r, Err: err}
	}
	return &websearch.Section{
		Result:  r,
		Excerpt: websearch.Excerpt(page.Text, websearch.PipelineExcerptLimit),
	}
}

func withDefaults(q websearch.SearchQuery, limit int) websearch.SearchQuery {
	if q.Limit == 0 {
		q.Limit = limit
	}
	if q.Language == "" {
		q.Language = websearch.DefaultLanguage
	}
	return q
}

// validateURL requires an absolute http or https URL.
func validateURL(rawURL string) error {
	if rawURL == "" {
		return websearch.Errorf(websearch.EINVALID, "url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return websearch.Errorf(websearch.EINVALID, "invalid url %q: %v", rawURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return websearch.Errorf(websearch.EINVALID, "url must be an absolute http(s) URL: %q", rawURL)
	}
	return nil
}
