package websearch

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultEndpoint is the DuckDuckGo HTML (no JavaScript) search endpoint.
const DefaultEndpoint = "https://html.duckduckgo.com/html/"

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "Mozilla/5.0 (compatible; lyricsite/1.0)"
)

// Options configures a DuckDuckGo searcher. Zero values select defaults.
type Options struct {
	Endpoint  string
	Timeout   time.Duration
	UserAgent string
}

// DuckDuckGo is a Searcher that scrapes DuckDuckGo's HTML results page.
type DuckDuckGo struct {
	client   *resty.Client
	endpoint string
}

var _ Searcher = (*DuckDuckGo)(nil)

// NewDuckDuckGo returns a new DuckDuckGo searcher.
func NewDuckDuckGo(opt Options) *DuckDuckGo {
	if opt.Endpoint == "" {
		opt.Endpoint = DefaultEndpoint
	}
	if opt.Timeout <= 0 {
		opt.Timeout = defaultTimeout
	}
	if opt.UserAgent == "" {
		opt.UserAgent = defaultUserAgent
	}
	client := resty.New().
		SetHeader("User-Agent", opt.UserAgent).
		SetHeader("Accept", "text/html").
		SetTimeout(opt.Timeout).
		SetRetryCount(0)
	return &DuckDuckGo{client: client, endpoint: opt.Endpoint}
}

// Search implements Searcher.
func (d *DuckDuckGo) Search(ctx context.Context, query string, max int) ([]Result, error) {
	if max <= 0 {
		max = DefaultMaxResults
	}
	resp, err := d.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get(d.endpoint)
	if err != nil {
		return nil, errors.WithMessage(err, "query DuckDuckGo")
	}
	if resp.IsError() {
		return nil, errors.Errorf("DuckDuckGo search error (HTTP status %d)", resp.StatusCode())
	}
	results, err := parseResults(resp.Body())
	if err != nil {
		return nil, errors.WithMessage(err, "parse DuckDuckGo results")
	}
	if len(results) > max {
		results = results[:max]
	}
	return results, nil
}

// parseResults extracts the organic (non-ad) results from a DuckDuckGo HTML results page.
func parseResults(data []byte) ([]Result, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var results []Result
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && hasClass(node, "result") {
			if !hasClass(node, "result--ad") {
				if r, ok := parseResult(node); ok {
					results = append(results, r)
				}
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return results, nil
}

func parseResult(node *html.Node) (Result, bool) {
	var r Result
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch {
			case node.DataAtom == atom.A && hasClass(node, "result__a") && r.URL == "":
				href, _ := getAttribute(node, "href")
				r.URL = resolveResultURL(href)
				r.Title = textContent(node)
				return
			case hasClass(node, "result__snippet") && r.Body == "":
				r.Body = textContent(node)
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return r, r.URL != "" && r.Title != ""
}

// resolveResultURL unwraps DuckDuckGo's redirect links (//duckduckgo.com/l/?uddg=TARGET) to the
// target URL.
func resolveResultURL(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if strings.HasSuffix(u.Host, "duckduckgo.com") && strings.HasPrefix(u.Path, "/l/") {
		if target := u.Query().Get("uddg"); target != "" {
			return target
		}
	}
	return href
}

func hasClass(n *html.Node, class string) bool {
	v, ok := getAttribute(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func getAttribute(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// textContent returns the text of the node and its descendants, with runs of whitespace collapsed.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
