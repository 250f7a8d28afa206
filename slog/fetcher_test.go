package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/websearch"
	"github.com/fwojciec/websearch/mock"
	wsslog "github.com/fwojciec/websearch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs page size of a scraped result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		page := "<html><body>" + strings.Repeat("é", 10) + "</body></html>"
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return page, nil
			},
		}

		fetcher := wsslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/result1")

		require.NoError(t, err)
		assert.Equal(t, page, html)
		output := buf.String()
		assert.Contains(t, output, "level=INFO msg=fetch")
		assert.Contains(t, output, "url=https://example.com/result1")
		assert.Contains(t, output, "bytes=46")
		assert.NotContains(t, output, "code=")
	})

	t.Run("logs timeouts at warn level with internal code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", context.DeadlineExceeded
			},
		}

		fetcher := wsslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/result2")

		require.ErrorIs(t, err, context.DeadlineExceeded)
		output := buf.String()
		assert.Contains(t, output, `level=WARN msg="fetch failed"`)
		assert.Contains(t, output, "code=internal")
		assert.Contains(t, output, `err="context deadline exceeded"`)
		assert.NotContains(t, output, "bytes=")
	})

	t.Run("logs the code of invalid URL errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", websearch.Errorf(websearch.EINVALID, "invalid url %q", url)
			},
		}

		fetcher := wsslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "http://bad host/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=invalid")
	})

	t.Run("is silent above warn level on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) { return "<p>ok</p>", nil },
		}

		_, err := wsslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := 0
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closed++
			return nil
		},
	}

	err := wsslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler)).Close()

	require.NoError(t, err)
	assert.Equal(t, 1, closed)
}
