package search

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sourcegraph/lyricsite/internal/records"
	"github.com/sourcegraph/lyricsite/internal/search/query"
	"github.com/sourcegraph/lyricsite/internal/websearch"
)

// Source selects where to search.
type Source string

const (
	SourceWeb   Source = "web"   // the open web
	SourceLocal Source = "local" // the local song corpus
)

// ParseSource parses a source name. The empty string means SourceWeb.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case "", SourceWeb:
		return SourceWeb, nil
	case SourceLocal:
		return SourceLocal, nil
	}
	return "", fmt.Errorf("invalid search source %q (must be %q or %q)", s, SourceWeb, SourceLocal)
}

// Result is a single search result, from either source.
type Result struct {
	Title   string
	Meta    string // a one-line summary (local results only)
	Snippet string // the match context (local) or page description (web)
	URL     string // the page URL (web results only)
	ID      int    // the record ID (local results only)
}

// Local searches the store for records matching queryStr. Results are in the store's load order.
func Local(store *records.Store, queryStr string) []Result {
	q := query.Parse(queryStr)
	matches := store.QueryByFilter(queryStr)
	results := make([]Result, len(matches))
	for i, r := range matches {
		results[i] = Result{
			Title:   r.Title,
			Meta:    fmt.Sprintf("%d • %s", r.Year, r.Artist),
			Snippet: excerpt(r.Body, q, DefaultWindow),
			ID:      r.ID,
		}
	}
	return results
}

// Web searches the web for queryStr, returning at most max results.
func Web(ctx context.Context, searcher websearch.Searcher, queryStr string, max int) ([]Result, error) {
	webResults, err := searcher.Search(ctx, queryStr, max)
	if err != nil {
		return nil, errors.WithMessagef(err, "web search for %q", queryStr)
	}
	results := make([]Result, len(webResults))
	for i, wr := range webResults {
		results[i] = Result{
			Title:   wr.Title,
			Snippet: wr.Body,
			URL:     wr.URL,
		}
	}
	return results, nil
}
