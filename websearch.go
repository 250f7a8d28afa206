// Package websearch provides web search and page scraping tools for agents
// speaking the Model Context Protocol. It searches the web, fetches and
// extracts single pages, and combines the two into a search-then-scrape
// report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, google/, mcp/).
package websearch
