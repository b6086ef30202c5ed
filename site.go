package lyricsite

import (
	"context"
	"net/http"
	"net/url"
	pathpkg "path"
	"regexp"
	"strconv"
	"strings"

	"github.com/mozillazg/go-slugify"
	"github.com/pkg/errors"
	"github.com/sourcegraph/lyricsite/internal/records"
	"github.com/sourcegraph/lyricsite/internal/search"
	"github.com/sourcegraph/lyricsite/internal/websearch"
)

// Site represents a lyrics search site, including its templates, assets, and song records.
type Site struct {
	// Records is the local song corpus.
	Records *records.Store

	// Web is used for searches of the open web. If nil, web searches fail.
	Web websearch.Searcher

	// WebMaxResults is the maximum number of web search results shown (websearch.DefaultMaxResults
	// if zero).
	WebMaxResults int

	// Base is the base URL (typically including only the path, such as "/" or "/lyrics/") where the
	// site is available.
	Base *url.URL

	// Templates is the file system containing the Go html/template templates used to render site
	// pages.
	Templates http.FileSystem

	// Assets is the file system containing the site-wide static asset files (e.g., styles).
	Assets http.FileSystem

	// AssetsBase is the base URL (sometimes only including the path, such as "/assets/") where the
	// assets are available.
	AssetsBase *url.URL

	// CheckIgnoreURLPattern is a regexp matching URLs to ignore in the Check method.
	CheckIgnoreURLPattern *regexp.Regexp
}

func (s *Site) basePath() string {
	if s.Base == nil || s.Base.Path == "" {
		return "/"
	}
	if !strings.HasSuffix(s.Base.Path, "/") {
		return s.Base.Path + "/"
	}
	return s.Base.Path
}

// Search searches the given source for queryStr. An empty (or all-whitespace) query has no results
// and does not search.
func (s *Site) Search(ctx context.Context, source search.Source, queryStr string) ([]search.Result, error) {
	queryStr = strings.TrimSpace(queryStr)
	if queryStr == "" {
		return nil, nil
	}
	switch source {
	case search.SourceLocal:
		return search.Local(s.Records, queryStr), nil
	case search.SourceWeb:
		if s.Web == nil {
			return nil, errors.New("web search is not configured")
		}
		max := s.WebMaxResults
		if max <= 0 {
			max = websearch.DefaultMaxResults
		}
		return search.Web(ctx, s.Web, queryStr, max)
	}
	return nil, errors.Errorf("unknown search source %q", source)
}

// Record returns the record with the given ID, if any.
func (s *Site) Record(id int) (*records.Record, bool) {
	r, ok := s.Records.FindByID(id)
	if !ok {
		return nil, false
	}
	return &r, true
}

// DocumentURL returns the URL path of the record's detail page. The trailing slug is cosmetic.
func (s *Site) DocumentURL(id int, title string) string {
	p := pathpkg.Join(s.basePath(), "doc", strconv.Itoa(id))
	if slug := slugify.Slugify(title); slug != "" {
		p += "/" + slug
	}
	return p
}

// SearchURL returns the URL of the search page for a query.
func (s *Site) SearchURL(queryStr string, source search.Source) string {
	v := url.Values{}
	v.Set("q", queryStr)
	v.Set("source", string(source))
	return s.searchPath() + "?" + v.Encode()
}

func (s *Site) searchPath() string { return pathpkg.Join(s.basePath(), "search") }
