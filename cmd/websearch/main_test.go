package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/websearch"
	main "github.com/fwojciec/websearch/cmd/websearch"
	"github.com/fwojciec/websearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain() *main.Main {
	m := main.NewMain()
	m.Environ = map[string]string{"LOG_LEVEL": "error"}
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if strings.HasSuffix(url, "result2") {
				return "", context.DeadlineExceeded
			}
			return `<html><head><title>Page</title><meta name="keywords" content="a, b"></head><body><p>Body text</p></body></html>`, nil
		},
		CloseFn: func() error { return nil },
	}
	return m
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"serve", "search", "scrape", "search-scrape"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := newTestMain().Run(context.Background(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "search-scrape")
}

func TestMain_Run_Search(t *testing.T) {
	t.Parallel()

	t.Run("prints placeholder results without credentials", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newTestMain().Run(context.Background(), []string{"search", "weather", "-n", "2"}, stdout, stderr)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, `Search results for "weather" (placeholder data):`)
		assert.Contains(t, out, "1. **")
		assert.Contains(t, out, "2. **")
		assert.NotContains(t, out, "3. **")
		assert.Contains(t, out, websearch.PlaceholderNote)
	})

	t.Run("uses configured default result count", func(t *testing.T) {
		t.Parallel()

		var got websearch.SearchQuery
		m := newTestMain()
		m.Environ["MAX_RESULTS"] = "7"
		m.Searcher = &mock.Searcher{
			SearchFn: func(_ context.Context, q websearch.SearchQuery) (*websearch.SearchResponse, error) {
				got = q
				return &websearch.SearchResponse{}, nil
			},
		}

		err := m.Run(context.Background(), []string{"search", "golang"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, 7, got.Limit)
		assert.Equal(t, "zh-CN", got.Language)
	})

	t.Run("reports provider errors on stderr", func(t *testing.T) {
		t.Parallel()

		m := newTestMain()
		m.Searcher = &mock.Searcher{
			SearchFn: func(_ context.Context, _ websearch.SearchQuery) (*websearch.SearchResponse, error) {
				return nil, websearch.Errorf(websearch.EUNAVAILABLE, "quota exceeded")
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"search", "golang"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: quota exceeded")
		assert.Empty(t, stdout.String())
	})
}

func TestMain_Run_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("prints title, metadata and excerpt", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := newTestMain().Run(context.Background(), []string{"scrape", "https://example.com"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "**Title**: Page")
		assert.Contains(t, out, "- Keywords: a, b")
		assert.Contains(t, out, "Body text")
	})

	t.Run("renders markdown on request", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := newTestMain().Run(context.Background(), []string{"scrape", "--no-metadata", "-m", "https://example.com"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		out := stdout.String()
		assert.NotContains(t, out, "**Metadata**")
		assert.Contains(t, out, "**Markdown**")
	})

	t.Run("rejects relative url", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		err := newTestMain().Run(context.Background(), []string{"scrape", "example.com"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, websearch.EINVALID, websearch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestMain_Run_SearchScrape(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}

	err := newTestMain().Run(context.Background(), []string{"search-scrape", "weather"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "## 1. ")
	assert.Contains(t, out, "## 3. ")
	assert.Equal(t, 1, strings.Count(out, "**Scrape failed**"))
	assert.Equal(t, 2, strings.Count(out, "Body text"))
}

func TestMain_Run_InvalidConfig(t *testing.T) {
	t.Parallel()

	m := newTestMain()
	m.Environ["SEARCH_PROVIDER"] = "bing"
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"search", "golang"}, &bytes.Buffer{}, stderr)

	require.Error(t, err)
	assert.Equal(t, websearch.EINVALID, websearch.ErrorCode(err))
	assert.Contains(t, stderr.String(), "Hint:")
}
