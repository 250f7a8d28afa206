package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/mock"
	wsslog "github.com/fwojciec/websearch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs title and text length at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Extractor{
			ExtractFn: func(_, url string, _ websearch.ScrapeOptions) (*websearch.PageContent, error) {
				return &websearch.PageContent{URL: url, Title: "Doc", Text: "héllo"}, nil
			},
		}

		extractor := wsslog.NewLoggingExtractor(inner, logger)
		page, err := extractor.Extract("<html></html>", "https://example.com", websearch.ScrapeOptions{ExtractText: true})

		require.NoError(t, err)
		assert.Equal(t, "Doc", page.Title)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "title=Doc")
		assert.Contains(t, output, "chars=5")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(_, url string, _ websearch.ScrapeOptions) (*websearch.PageContent, error) {
				return &websearch.PageContent{URL: url}, nil
			},
		}

		extractor := wsslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("", "https://example.com", websearch.ScrapeOptions{})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
