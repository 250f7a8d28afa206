package websearch

import (
	"fmt"
	"strings"
)

// PlaceholderNote is appended to search output built from placeholder data.
const PlaceholderNote = "Note: these are placeholder results. Set SEARCH_API_KEY and SEARCH_ENGINE_ID to get real search results."

// FormatSearchResponse formats search results as a numbered list with
// title, URL, and snippet for each result.
func FormatSearchResponse(query string, resp *SearchResponse) string {
	var b strings.Builder

	if resp.Placeholder {
		fmt.Fprintf(&b, "Search results for %q (placeholder data):\n\n", query)
	} else {
		fmt.Fprintf(&b, "Search results for %q:\n\n", query)
	}

	if len(resp.Results) == 0 {
		b.WriteString("No results found.\n")
	}

	blocks := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		blocks = append(blocks, fmt.Sprintf("%d. **%s**\n   URL: %s\n   Snippet: %s\n", r.Rank, r.Title, r.URL, r.Snippet))
	}
	b.WriteString(strings.Join(blocks, "\n"))

	if resp.Placeholder {
		b.WriteString("\n\n" + PlaceholderNote)
	}

	return b.String()
}

// FormatPage formats a scraped page. Metadata is listed only when
// requested, and only the fields the page declared. Text is shown as an
// excerpt capped at ScrapeExcerptLimit characters. Markdown, when requested
// and rendered, follows capped at MarkdownExcerptLimit characters.
func FormatPage(page *PageContent, opts ScrapeOptions) string {
	var b strings.Builder

	b.WriteString("Scraped page:\n\n")
	fmt.Fprintf(&b, "**Title**: %s\n", page.Title)
	fmt.Fprintf(&b, "**URL**: %s\n\n", page.URL)

	if opts.ExtractMetadata {
		b.WriteString("**Metadata**:\n")
		for _, f := range page.Metadata.Fields() {
			fmt.Fprintf(&b, "- %s: %s\n", f.Label, f.Value)
		}
		b.WriteString("\n")
	}

	if opts.ExtractText {
		fmt.Fprintf(&b, "**Content excerpt** (first %d characters):\n", ScrapeExcerptLimit)
		b.WriteString(Excerpt(page.Text, ScrapeExcerptLimit))
	}

	if opts.IncludeMarkdown && page.Markdown != "" {
		if opts.ExtractText {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "**Markdown** (first %d characters):\n", MarkdownExcerptLimit)
		b.WriteString(Excerpt(page.Markdown, MarkdownExcerptLimit))
	}

	return b.String()
}

// FormatReport formats a search-and-scrape report as one markdown section
// per search result, in rank order. Failed sections carry an inline
// failure marker in place of the excerpt.
func FormatReport(r *Report) string {
	var b strings.Builder

	if r.Placeholder {
		fmt.Fprintf(&b, "Search and scrape results for %q (placeholder data):\n\n", r.Query)
	} else {
		fmt.Fprintf(&b, "Search and scrape results for %q:\n\n", r.Query)
	}

	if len(r.Sections) == 0 {
		b.WriteString("No results found.\n")
	}

	for _, s := range r.Sections {
		fmt.Fprintf(&b, "## %d. %s\n", s.Result.Rank, s.Result.Title)
		fmt.Fprintf(&b, "**URL**: %s\n", s.Result.URL)
		fmt.Fprintf(&b, "**Search snippet**: %s\n\n", s.Result.Snippet)

		if s.Failed() {
			fmt.Fprintf(&b, "**Scrape failed**: %s\n\n", ErrorMessage(s.Err))
			continue
		}
		fmt.Fprintf(&b, "**Content excerpt** (first %d characters):\n%s\n\n", PipelineExcerptLimit, s.Excerpt)
	}

	return b.String()
}
