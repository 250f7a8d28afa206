// Package htmltomarkdown implements websearch.Converter with
// github.com/JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/goquery"
)

// Ensure Converter implements websearch.Converter at compile time.
var _ websearch.Converter = (*Converter)(nil)

// Converter renders page bodies as Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert strips noise regions from the document body and renders the rest
// as Markdown. A document with an empty body converts to an empty string.
func (c *Converter) Convert(html string) (string, error) {
	body, err := goquery.BodyHTML(html)
	if err != nil {
		return "", err
	}
	if body == "" {
		return "", nil
	}

	return c.conv.ConvertString(body)
}
