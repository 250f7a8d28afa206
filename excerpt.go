package websearch

// Excerpt length caps, in characters.
const (
	ScrapeExcerptLimit   = 500
	PipelineExcerptLimit = 300
	MarkdownExcerptLimit = 5000
)

// TruncationMarker is appended to excerpts cut short by their cap.
const TruncationMarker = "..."

// Excerpt returns the first limit characters of text, followed by
// TruncationMarker when text is longer than limit. Characters are counted
// as Unicode code points so multi-byte text is never split mid-rune.
func Excerpt(text string, limit int) string {
	if limit <= 0 {
		return ""
	}

	count := 0
	for i := range text {
		if count == limit {
			return text[:i] + TruncationMarker
		}
		count++
	}
	return text
}
