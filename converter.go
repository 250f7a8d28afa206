package websearch

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert renders the body of an HTML document as Markdown.
	// Noise regions are dropped the same way Extractor drops them.
	Convert(html string) (string, error)
}
