package mock

import "github.com/fwojciec/websearch"

var _ websearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of websearch.Extractor.
type Extractor struct {
	ExtractFn func(html string, url string, opts websearch.ScrapeOptions) (*websearch.PageContent, error)
}

func (e *Extractor) Extract(html string, url string, opts websearch.ScrapeOptions) (*websearch.PageContent, error) {
	return e.ExtractFn(html, url, opts)
}
