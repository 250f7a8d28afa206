package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/websearch"
)

// Ensure LoggingExtractor implements websearch.Extractor.
var _ websearch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   websearch.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next websearch.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result at debug level.
func (e *LoggingExtractor) Extract(html, url string, opts websearch.ScrapeOptions) (page *websearch.PageContent, err error) {
	defer func(begin time.Time) {
		var title string
		var textLen int
		if page != nil {
			title = page.Title
			textLen = len([]rune(page.Text))
		}
		e.logger.Debug("extract",
			"url", url,
			"title", title,
			"chars", textLen,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, url, opts)
}
