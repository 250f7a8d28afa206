package websearch

// Report is the ordered outcome of one search-and-scrape run.
type Report struct {
	Query       string     `json:"query"`
	Placeholder bool       `json:"placeholder"`
	Sections    []*Section `json:"sections"`
}

// Section is the outcome for a single search result: either an excerpt of
// the scraped page or the error that prevented scraping it.
type Section struct {
	Result  *SearchResult `json:"result"`
	Excerpt string        `json:"excerpt,omitempty"`
	Err     error         `json:"-"`
}

// Failed reports whether the section carries a scrape failure.
func (s *Section) Failed() bool {
	return s.Err != nil
}

// Failures returns the number of failed sections in the report.
func (r *Report) Failures() int {
	n := 0
	for _, s := range r.Sections {
		if s.Failed() {
			n++
		}
	}
	return n
}
