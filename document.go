package lyricsite

import (
	"strconv"
	"strings"

	"github.com/sourcegraph/lyricsite/internal/records"
)

// DocumentPageData is the data available to the HTML template used to render a record's detail
// page.
type DocumentPageData struct {
	// Record is the requested record, or nil if it was not found.
	Record *records.Record

	// Rank is the number displayed alongside the record. It is the record ID and says nothing about
	// ordering or relevance.
	Rank int
}

func (s *Site) renderDocumentPage(data *DocumentPageData) ([]byte, error) {
	return s.renderTemplate(documentTemplateName, nil, data)
}

// parseDocumentPath parses the record ID from a detail page path of the form "ID" or "ID/SLUG".
func parseDocumentPath(path string) (id int, ok bool) {
	if i := strings.Index(path, "/"); i != -1 {
		path = path[:i]
	}
	id, err := strconv.Atoi(path)
	if err != nil || id <= 0 || strconv.Itoa(id) != path {
		return 0, false
	}
	return id, true
}
