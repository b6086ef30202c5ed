package lyricsite

import (
	"context"
	"reflect"
	"regexp"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := map[string]struct {
		document     string
		ignore       string
		wantProblems []string
	}{
		"valid links": {
			document:     `<a href="{{searchURL .Record.Artist "local"}}">a</a> <a href="{{docURL .Rank .Record.Title}}">self</a> <link rel="stylesheet" href="{{asset "style.css"}}">`,
			wantProblems: nil,
		},
		"external and fragment links are skipped": {
			document:     `<a href="https://example.com/x">x</a> <a href="#top">top</a>`,
			wantProblems: nil,
		},
		"broken link": {
			document: `<a href="/doc/999">x</a>`,
			wantProblems: []string{
				"/doc/1/wooly-bully: broken link to /doc/999",
				"/doc/2/yesterday: broken link to /doc/999",
			},
		},
		"broken relative link": {
			document: `<img src="../../missing.png">`,
			wantProblems: []string{
				"/doc/1/wooly-bully: broken link to ../../missing.png",
				"/doc/2/yesterday: broken link to ../../missing.png",
			},
		},
		"ignored link": {
			document:     `<a href="/doc/999">x</a>`,
			ignore:       `^/doc/999$`,
			wantProblems: nil,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			site, _ := newTestSite(t, map[string]string{
				"document.html": test.document,
				"search.html":   "ok",
			})
			if test.ignore != "" {
				site.CheckIgnoreURLPattern = regexp.MustCompile(test.ignore)
			}
			problems, err := site.Check(ctx)
			if err != nil {
				t.Fatal(err)
			}
			problemsSet := toSet(problems)
			wantProblemsSet := toSet(test.wantProblems)
			if !reflect.DeepEqual(problemsSet, wantProblemsSet) {
				t.Errorf("got problems %v, want %v", problemsSet, wantProblemsSet)
			}
		})
	}
}

func TestCheck_canceled(t *testing.T) {
	site, _ := newTestSite(t, testTemplates)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := site.Check(ctx); err != context.Canceled {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

func toSet(s []string) map[string]struct{} {
	m := make(map[string]struct{}, len(s))
	for _, v := range s {
		m[v] = struct{}{}
	}
	return m
}
