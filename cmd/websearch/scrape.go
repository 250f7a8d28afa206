package main

import (
	"fmt"

	"github.com/fwojciec/websearch"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	opts := websearch.ScrapeOptions{
		ExtractText:     !c.NoText,
		ExtractMetadata: !c.NoMetadata,
		IncludeMarkdown: c.Markdown,
	}

	page, err := deps.Service.Scrape(deps.Ctx, c.URL, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", websearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, websearch.FormatPage(page, opts))
	return nil
}
