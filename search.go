package lyricsite

import (
	"html"
	"html/template"
	"strings"

	"github.com/sourcegraph/lyricsite/internal/search"
	"github.com/sourcegraph/lyricsite/internal/search/query"
)

// SearchPageData is the data available to the HTML template used to render the search page.
type SearchPageData struct {
	Query   string          // the query, with surrounding whitespace removed
	Source  search.Source   // the source that was searched
	Results []search.Result // search results (empty if the query is empty)
}

func (s *Site) renderSearchPage(data *SearchPageData) ([]byte, error) {
	query := query.Parse(data.Query)
	return s.renderTemplate(searchTemplateName, template.FuncMap{
		"highlight": func(text string) template.HTML {
			var s []string
			c := 0
			for _, match := range query.FindAllIndex(text) {
				start, end := match[0], match[1]
				if start > c {
					s = append(s, html.EscapeString(text[c:start]))
				}
				s = append(s, "<strong>"+html.EscapeString(text[start:end])+"</strong>")
				c = end
			}
			if c < len(text) {
				s = append(s, html.EscapeString(text[c:]))
			}
			return template.HTML(strings.Join(s, ""))
		},
	}, data)
}
