package lyricsite

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/sourcegraph/lyricsite/internal/records"
)

// Check renders the detail page of every record and reports problems (such as template errors and
// broken links). Only links within the site are followed; absolute URLs to other hosts are skipped.
func (s *Site) Check(ctx context.Context) (problems []string, err error) {
	problemPrefix := func(r records.Record) string {
		return fmt.Sprintf("%s: ", s.DocumentURL(r.ID, r.Title))
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	addProblem := func(problem string) {
		mu.Lock()
		problems = append(problems, problem)
		mu.Unlock()
	}
	handler := s.Handler()
	for _, record := range s.Records.All() {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(record records.Record) {
			defer wg.Done()
			r := record
			data, err := s.renderDocumentPage(&DocumentPageData{Record: &r, Rank: r.ID})
			if err != nil {
				addProblem(problemPrefix(record) + err.Error())
				return
			}
			doc, err := html.Parse(bytes.NewReader(data))
			if err != nil {
				addProblem(problemPrefix(record) + err.Error())
				return
			}
			pageURL := &url.URL{Path: s.DocumentURL(record.ID, record.Title)}
			for _, p := range s.checkPage(handler, pageURL, doc) {
				addProblem(problemPrefix(record) + p)
			}
		}(record)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return problems, nil
}

func (s *Site) checkPage(handler http.Handler, pageURL *url.URL, doc *html.Node) (problems []string) {
	walkOpt := walkHTMLDocumentOptions{
		url: func(urlStr string) {
			if s.CheckIgnoreURLPattern != nil && s.CheckIgnoreURLPattern.MatchString(urlStr) {
				return
			}

			u, err := url.Parse(urlStr)
			if err != nil {
				problems = append(problems, fmt.Sprintf("invalid URL %q", urlStr))
				return
			}
			if u.IsAbs() || u.Host != "" {
				return // external link
			}
			if u.Path == "" {
				return // fragment or query on the same page
			}

			rr := httptest.NewRecorder()
			req, err := http.NewRequest("HEAD", pageURL.ResolveReference(u).String(), nil)
			if err != nil {
				problems = append(problems, fmt.Sprintf("invalid request URI %q", urlStr))
				return
			}
			handler.ServeHTTP(rr, req)
			if rr.Code != http.StatusOK {
				problems = append(problems, fmt.Sprintf("broken link to %s", urlStr))
			}
		},
	}
	walkHTMLDocument(doc, walkOpt)
	return problems
}

type walkHTMLDocumentOptions struct {
	url func(url string) // called for each URL encountered
}

func walkHTMLDocument(node *html.Node, opt walkHTMLDocumentOptions) {
	if node.Type == html.ElementNode {
		switch node.DataAtom {
		case atom.A, atom.Link:
			if href, ok := getAttribute(node, "href"); ok {
				opt.url(href)
			}
		case atom.Img, atom.Script:
			if src, ok := getAttribute(node, "src"); ok {
				opt.url(src)
			}
		}
	}

	for c := node.FirstChild; c != nil; c = c.NextSibling {
		walkHTMLDocument(c, opt)
	}
}

func getAttribute(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
