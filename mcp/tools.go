package mcp

import (
	"context"
	"time"

	"github.com/fwojciec/websearch"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchArgs are the arguments of web_search and web_search_and_scrape.
type SearchArgs struct {
	Query      string `json:"query" jsonschema:"The search query"`
	MaxResults *int   `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return"`
	Language   string `json:"language,omitempty" jsonschema:"Result language code such as zh-CN or en-US"`
}

// ScrapeArgs are the arguments of web_scrape.
type ScrapeArgs struct {
	URL             string `json:"url" jsonschema:"Absolute http or https URL of the page to scrape"`
	ExtractText     *bool  `json:"extractText,omitempty" jsonschema:"Include a plain-text excerpt of the page body (default true)"`
	ExtractMetadata *bool  `json:"extractMetadata,omitempty" jsonschema:"Include description, keywords, author and published date (default true)"`
	IncludeMarkdown *bool  `json:"includeMarkdown,omitempty" jsonschema:"Include a Markdown rendering of the page body (default false)"`
}

func (s *Server) registerTools() {
	addTool(s, "search", &mcpsdk.Tool{
		Name:        ToolWebSearch,
		Description: "Search the web and return a numbered list of results with title, URL and snippet.",
	}, s.webSearch)

	addTool(s, "scrape", &mcpsdk.Tool{
		Name:        ToolWebScrape,
		Description: "Fetch a web page and return its title, metadata and a text excerpt.",
	}, s.webScrape)

	addTool(s, "search and scrape", &mcpsdk.Tool{
		Name:        ToolWebSearchAndScrape,
		Description: "Search the web, then scrape each result and return one section per result with a content excerpt.",
	}, s.webSearchAndScrape)
}

// addTool registers h under tool.Name. op names the operation in failure
// results. Errors returned by h are logged and counted; the client always
// receives the rendered result.
func addTool[In any](s *Server, op string, tool *mcpsdk.Tool, h func(context.Context, In) (*mcpsdk.CallToolResult, error)) {
	s.ops[tool.Name] = op
	mcpsdk.AddTool(s.server, tool, func(ctx context.Context, _ *mcpsdk.CallToolRequest, in In) (*mcpsdk.CallToolResult, any, error) {
		begin := time.Now()
		res, err := h(ctx, in)
		s.observe(tool.Name, begin, err)
		return res, nil, nil
	})
}

// The handlers below return the rendered result together with the error
// behind it. The error is only observed; callers always receive a result.

func (s *Server) webSearch(ctx context.Context, in SearchArgs) (*mcpsdk.CallToolResult, error) {
	q, err := in.query()
	if err != nil {
		return failure("search", err), err
	}

	resp, err := s.service.Search(ctx, q)
	if err != nil {
		return failure("search", err), err
	}
	return textResult(websearch.FormatSearchResponse(in.Query, resp)), nil
}

func (s *Server) webScrape(ctx context.Context, in ScrapeArgs) (*mcpsdk.CallToolResult, error) {
	opts := in.options()

	page, err := s.service.Scrape(ctx, in.URL, opts)
	if err != nil {
		return failure("scrape", err), err
	}
	return textResult(websearch.FormatPage(page, opts)), nil
}

func (s *Server) webSearchAndScrape(ctx context.Context, in SearchArgs) (*mcpsdk.CallToolResult, error) {
	q, err := in.query()
	if err != nil {
		return failure("search and scrape", err), err
	}

	report, err := s.service.SearchAndScrape(ctx, q)
	if err != nil {
		return failure("search and scrape", err), err
	}
	s.logger.Debug("search and scrape",
		"query", report.Query,
		"sections", len(report.Sections),
		"failed", report.Failures(),
	)
	return textResult(websearch.FormatReport(report)), nil
}

// query converts tool arguments to a SearchQuery. An absent maxResults
// leaves Limit zero so the service applies its default.
func (a SearchArgs) query() (websearch.SearchQuery, error) {
	q := websearch.SearchQuery{Query: a.Query, Language: a.Language}
	if a.MaxResults != nil {
		if *a.MaxResults < 1 {
			return q, websearch.Errorf(websearch.EINVALID, "maxResults must be at least 1")
		}
		q.Limit = *a.MaxResults
	}
	return q, nil
}

func (a ScrapeArgs) options() websearch.ScrapeOptions {
	return websearch.ScrapeOptions{
		ExtractText:     boolOr(a.ExtractText, true),
		ExtractMetadata: boolOr(a.ExtractMetadata, true),
		IncludeMarkdown: boolOr(a.IncludeMarkdown, false),
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
