// Package websearch searches the open web using a third-party search service.
package websearch

import "context"

// Result is a single web search result.
type Result struct {
	Title string // page title
	Body  string // description of the page, as provided by the search service
	URL   string
}

// Searcher performs web searches.
type Searcher interface {
	// Search returns at most max results for the query, best first.
	Search(ctx context.Context, query string, max int) ([]Result, error)
}

// DefaultMaxResults is the number of results requested when the caller doesn't say.
const DefaultMaxResults = 10
