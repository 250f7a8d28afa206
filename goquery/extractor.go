// Package goquery implements websearch.Extractor on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/websearch"
)

// Ensure Extractor implements websearch.Extractor at compile time.
var _ websearch.Extractor = (*Extractor)(nil)

// NoiseSelector matches the regions removed before reading body text.
const NoiseSelector = "script, style, nav, header, footer, aside"

// metaSource is an ordered list of selectors for one metadata field.
// The first selector whose content attribute is non-blank wins.
type metaSource []string

var (
	descriptionSources = metaSource{`meta[name="description"]`, `meta[property="og:description"]`}
	keywordsSources    = metaSource{`meta[name="keywords"]`}
	authorSources      = metaSource{`meta[name="author"]`, `meta[property="article:author"]`}
	publishedSources   = metaSource{`meta[property="article:published_time"]`, `meta[name="date"]`}
)

// Extractor extracts title, body text, and metadata from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns the content selected by opts.
func (e *Extractor) Extract(rawHTML string, url string, opts websearch.ScrapeOptions) (*websearch.PageContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, websearch.Errorf(websearch.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &websearch.PageContent{
		URL:   url,
		Title: extractTitle(doc),
	}

	// Metadata lives in <head>, which noise removal never touches, but
	// read it first so the order of operations cannot matter.
	if opts.ExtractMetadata {
		page.Metadata = websearch.Metadata{
			Description:   descriptionSources.lookup(doc),
			Keywords:      keywordsSources.lookup(doc),
			Author:        authorSources.lookup(doc),
			PublishedDate: publishedSources.lookup(doc),
		}
	}

	if opts.ExtractText {
		doc.Find(NoiseSelector).Remove()
		page.Text = normalizeWhitespace(doc.Find("body").Text())
	}

	return page, nil
}

// BodyHTML returns the inner HTML of the document body with noise regions
// removed. It is the input for renderers that keep document structure.
func BodyHTML(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", websearch.Errorf(websearch.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(NoiseSelector).Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(body), nil
}

// extractTitle returns the first title element with non-blank text,
// falling back to websearch.UntitledPage.
func extractTitle(doc *goquery.Document) string {
	title := ""
	doc.Find("title").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title = strings.TrimSpace(sel.Text())
		return title == ""
	})
	if title == "" {
		return websearch.UntitledPage
	}
	return title
}

func (m metaSource) lookup(doc *goquery.Document) string {
	for _, selector := range m {
		content, ok := doc.Find(selector).First().Attr("content")
		if !ok {
			continue
		}
		if content = strings.TrimSpace(content); content != "" {
			return content
		}
	}
	return ""
}

// normalizeWhitespace collapses every whitespace run, newlines included,
// into a single space and trims the ends.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
