package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const resultsPage = `<!DOCTYPE html>
<html><body>
<div id="links" class="results">
  <div class="result results_links results_links_deep result--ad">
    <div class="links_main links_deep result__body">
      <h2 class="result__title"><a class="result__a" href="https://ads.example.com/">Buy lyrics</a></h2>
      <a class="result__snippet" href="https://ads.example.com/">Sponsored</a>
    </div>
  </div>
  <div class="result results_links results_links_deep web-result">
    <div class="links_main links_deep result__body">
      <h2 class="result__title">
        <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fwooly%2Dbully&amp;rut=abc"><b>Wooly</b> Bully -
          Lyrics</a>
      </h2>
      <a class="result__snippet" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fwooly%2Dbully">Sam the Sham &amp; the <b>Pharaohs</b>, 1965.</a>
    </div>
  </div>
  <div class="result results_links results_links_deep web-result">
    <div class="links_main links_deep result__body">
      <h2 class="result__title"><a class="result__a" href="https://example.org/direct">Direct link</a></h2>
    </div>
  </div>
  <div class="result results_links results_links_deep web-result">
    <div class="links_main links_deep result__body">
      <a class="result__snippet" href="https://example.org/untitled">No title</a>
    </div>
  </div>
</div>
</body></html>`

func TestParseResults(t *testing.T) {
	results, err := parseResults([]byte(resultsPage))
	if err != nil {
		t.Fatal(err)
	}
	want := []Result{
		{Title: "Wooly Bully - Lyrics", Body: "Sam the Sham & the Pharaohs, 1965.", URL: "https://example.com/wooly-bully"},
		{Title: "Direct link", URL: "https://example.org/direct"},
	}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Errorf("results mismatch (-want, +got): %s", diff)
	}
}

func TestResolveResultURL(t *testing.T) {
	tests := map[string]struct {
		href string
		want string
	}{
		"redirect":              {href: "//duckduckgo.com/l/?uddg=https%3A%2F%2Fa.example%2Fb%3Fc%3Dd&rut=x", want: "https://a.example/b?c=d"},
		"direct":                {href: "https://a.example/b", want: "https://a.example/b"},
		"redirect without uddg": {href: "https://duckduckgo.com/l/?rut=x", want: "https://duckduckgo.com/l/?rut=x"},
		"other duckduckgo":      {href: "https://duckduckgo.com/about", want: "https://duckduckgo.com/about"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := resolveResultURL(test.href); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestDuckDuckGo_Search(t *testing.T) {
	var gotQuery, gotUserAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer ts.Close()

	ddg := NewDuckDuckGo(Options{Endpoint: ts.URL + "/html/", UserAgent: "test-agent"})

	t.Run("results", func(t *testing.T) {
		results, err := ddg.Search(context.Background(), "wooly bully", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 2 {
			t.Errorf("got %d results, want 2", len(results))
		}
		if gotQuery != "wooly bully" {
			t.Errorf("got query %q, want %q", gotQuery, "wooly bully")
		}
		if gotUserAgent != "test-agent" {
			t.Errorf("got User-Agent %q, want %q", gotUserAgent, "test-agent")
		}
	})

	t.Run("max results", func(t *testing.T) {
		results, err := ddg.Search(context.Background(), "wooly bully", 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 1 || results[0].URL != "https://example.com/wooly-bully" {
			t.Errorf("got results %+v, want only the first result", results)
		}
	})
}

func TestDuckDuckGo_Search_httpError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := NewDuckDuckGo(Options{Endpoint: ts.URL}).Search(context.Background(), "q", 10)
	if err == nil {
		t.Fatal("got nil error, want error")
	}
	if want := "HTTP status 429"; !strings.Contains(err.Error(), want) {
		t.Errorf("got error %q, want contains %q", err, want)
	}
}

func TestDuckDuckGo_Search_canceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewDuckDuckGo(Options{Endpoint: ts.URL}).Search(ctx, "q", 10); err == nil {
		t.Error("got nil error, want context error")
	}
}
