package search

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sourcegraph/lyricsite/internal/records"
	"github.com/sourcegraph/lyricsite/internal/websearch"
)

func TestParseSource(t *testing.T) {
	tests := map[string]struct {
		want    Source
		wantErr bool
	}{
		"":      {want: SourceWeb},
		"web":   {want: SourceWeb},
		"local": {want: SourceLocal},
		"LOCAL": {wantErr: true},
		"x":     {wantErr: true},
	}
	for input, test := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := ParseSource(input)
			if (err != nil) != test.wantErr {
				t.Fatalf("got error %v, want error %v", err, test.wantErr)
			}
			if got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestLocal(t *testing.T) {
	store, err := records.Load(strings.NewReader(`Song,Artist,Year,Lyrics
wooly bully,sam the sham,1965,"matty told hatty
about a thing she saw"
yesterday,the beatles,1965,all my troubles seemed so far away
`))
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		query string
		want  []Result
	}{
		"body match": {
			query: "HATTY",
			want: []Result{
				{Title: "wooly bully", Meta: "1965 • sam the sham", Snippet: "matty told hatty about a thing she saw", ID: 1},
			},
		},
		"title match": {
			query: "yesterday",
			want: []Result{
				{Title: "yesterday", Meta: "1965 • the beatles", Snippet: "all my troubles seemed so far away", ID: 2},
			},
		},
		"year match in load order": {
			query: "1965",
			want: []Result{
				{Title: "wooly bully", Meta: "1965 • sam the sham", Snippet: "matty told hatty\nabout a thing she saw", ID: 1},
				{Title: "yesterday", Meta: "1965 • the beatles", Snippet: "all my troubles seemed so far away", ID: 2},
			},
		},
		"no match": {
			query: "zzz",
			want:  []Result{},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, Local(store, test.query)); diff != "" {
				t.Errorf("results mismatch (-want, +got): %s", diff)
			}
		})
	}
}

type fakeSearcher struct {
	results []websearch.Result
	err     error

	gotQuery string
	gotMax   int
}

func (s *fakeSearcher) Search(_ context.Context, query string, max int) ([]websearch.Result, error) {
	s.gotQuery, s.gotMax = query, max
	return s.results, s.err
}

func TestWeb(t *testing.T) {
	t.Run("results", func(t *testing.T) {
		searcher := &fakeSearcher{results: []websearch.Result{
			{Title: "a", Body: "b", URL: "https://example.com/c"},
		}}
		results, err := Web(context.Background(), searcher, "q", 10)
		if err != nil {
			t.Fatal(err)
		}
		want := []Result{{Title: "a", Snippet: "b", URL: "https://example.com/c"}}
		if diff := cmp.Diff(want, results); diff != "" {
			t.Errorf("results mismatch (-want, +got): %s", diff)
		}
		if searcher.gotQuery != "q" || searcher.gotMax != 10 {
			t.Errorf("got query %q max %d, want %q max %d", searcher.gotQuery, searcher.gotMax, "q", 10)
		}
	})

	t.Run("error", func(t *testing.T) {
		searcher := &fakeSearcher{err: errors.New("unavailable")}
		if _, err := Web(context.Background(), searcher, "q", 10); err == nil || errors.Cause(err).Error() != "unavailable" {
			t.Errorf("got error %v, want cause %q", err, "unavailable")
		}
	})
}
