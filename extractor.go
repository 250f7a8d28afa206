package websearch

// UntitledPage is the title reported for pages without a usable title element.
const UntitledPage = "Untitled"

// ScrapeOptions selects which parts of a page are extracted.
type ScrapeOptions struct {
	ExtractText     bool `json:"extractText"`
	ExtractMetadata bool `json:"extractMetadata"`

	// IncludeMarkdown additionally renders the cleaned page body as
	// Markdown. It requires a Converter.
	IncludeMarkdown bool `json:"includeMarkdown"`
}

// PageContent holds the content extracted from one fetched page.
type PageContent struct {
	URL string `json:"url"`

	// Title is never empty; it falls back to UntitledPage.
	Title string `json:"title"`

	// Text is the whitespace-normalized body text with navigation,
	// header, footer, aside, script, and style regions removed.
	Text string `json:"text"`

	Metadata Metadata `json:"metadata"`

	// Markdown is the cleaned body rendered as Markdown, set only when
	// ScrapeOptions.IncludeMarkdown was requested.
	Markdown string `json:"markdown,omitempty"`
}

// Metadata holds document-level descriptors declared by a page.
// Fields the page does not declare are left empty and omitted on output.
type Metadata struct {
	Description   string `json:"description,omitempty"`
	Keywords      string `json:"keywords,omitempty"`
	Author        string `json:"author,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
}

// MetadataField is a labeled metadata value.
type MetadataField struct {
	Label string
	Value string
}

// Fields returns the present metadata fields in display order.
func (m Metadata) Fields() []MetadataField {
	all := []MetadataField{
		{Label: "Description", Value: m.Description},
		{Label: "Keywords", Value: m.Keywords},
		{Label: "Author", Value: m.Author},
		{Label: "Published", Value: m.PublishedDate},
	}

	fields := make([]MetadataField, 0, len(all))
	for _, f := range all {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Extractor derives text and metadata from raw HTML.
type Extractor interface {
	// Extract parses the HTML fetched from url and returns its content.
	// Extraction is a pure function of its inputs. Only the parts selected
	// by opts are populated; the title is always populated.
	Extract(html string, url string, opts ScrapeOptions) (*PageContent, error)
}
