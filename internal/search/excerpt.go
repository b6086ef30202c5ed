package search

import (
	"strings"

	"github.com/sourcegraph/lyricsite/internal/search/query"
)

// DefaultWindow is the number of characters of context shown on each side of a match.
const DefaultWindow = 50

// ellipsis marks text that was cut off.
const ellipsis = "…"

// Snippet returns a keyword-in-context excerpt of text around the first match of term (matched
// literally, ignoring case), with up to window characters on either side. Line breaks in the
// excerpt are replaced with spaces. If there is no match, the first window characters of text
// are returned.
func Snippet(text, term string, window int) string {
	return excerpt(text, query.Parse(term), window)
}

func excerpt(text string, q query.Query, window int) string {
	if window < 0 {
		window = 0
	}
	runes := []rune(text)

	idx := q.Index(text)
	if idx == -1 {
		if len(runes) <= window {
			return text
		}
		return string(runes[:window]) + ellipsis
	}

	start := idx - window
	if start < 0 {
		start = 0
	}
	end := idx + q.Len() + window
	if end > len(runes) {
		end = len(runes)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	for _, r := range runes[start:end] {
		if r == '\n' || r == '\r' {
			r = ' '
		}
		b.WriteRune(r)
	}
	if end < len(runes) {
		b.WriteString(ellipsis)
	}
	return b.String()
}
