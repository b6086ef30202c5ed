package query

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Query is a search query. The query string is matched literally (regular expression
// metacharacters have no special meaning) and without regard to case.
type Query struct {
	input   string // the query input string
	pattern *regexp.Regexp
}

// Parse parses a search query string. Any query string is valid. Invalid UTF-8 sequences are replaced
// with U+FFFD, so they only match text that contains U+FFFD.
func Parse(queryStr string) Query {
	queryStr = strings.ToValidUTF8(queryStr, "\uFFFD")
	return Query{
		input:   queryStr,
		pattern: regexp.MustCompile("(?i)" + regexp.QuoteMeta(queryStr)),
	}
}

// String returns the query input string (with invalid UTF-8 replaced).
func (q Query) String() string { return q.input }

// Empty reports whether the query is the empty string, which matches all text.
func (q Query) Empty() bool { return q.input == "" }

// Match reports whether any of the texts contains at least 1 match of the query.
func (q Query) Match(texts ...string) bool {
	for _, text := range texts {
		if q.pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// Index returns the character (not byte) offset of the first match of the query in text, or -1 if
// there is none.
func (q Query) Index(text string) int {
	loc := q.pattern.FindStringIndex(text)
	if loc == nil {
		return -1
	}
	return utf8.RuneCountInString(text[:loc[0]])
}

// Len returns the length of the query string in characters.
func (q Query) Len() int { return utf8.RuneCountInString(q.input) }

// Match is an array of [start, end] byte indexes for a match.
type Match [2]int

// FindAllIndex returns a slice of all non-overlapping query match indexes in the text. The empty
// query has no matches.
func (q Query) FindAllIndex(text string) []Match {
	if q.Empty() {
		return nil
	}
	var matches []Match
	for _, m := range q.pattern.FindAllStringIndex(text, -1) {
		matches = append(matches, Match{m[0], m[1]})
	}
	return matches
}
