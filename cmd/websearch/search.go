package main

import (
	"fmt"

	"github.com/fwojciec/websearch"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	q := websearch.SearchQuery{Query: c.Query, Limit: c.MaxResults, Language: c.Language}

	resp, err := deps.Service.Search(deps.Ctx, q)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", websearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, websearch.FormatSearchResponse(c.Query, resp))
	return nil
}

// Run executes the search-scrape command.
func (c *SearchScrapeCmd) Run(deps *Dependencies) error {
	q := websearch.SearchQuery{Query: c.Query, Limit: c.MaxResults, Language: c.Language}

	report, err := deps.Service.SearchAndScrape(deps.Ctx, q)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", websearch.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, websearch.FormatReport(report))
	return nil
}
