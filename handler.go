package lyricsite

import (
	"net/http"
	"path"
	"strings"

	"github.com/sourcegraph/lyricsite/internal/search"
)

// Handler returns an http.Handler that serves the site.
func (s *Site) Handler() http.Handler {
	m := http.NewServeMux()

	const (
		cacheMaxAge0     = "max-age=0"
		cacheMaxAgeShort = "max-age=60"
		cacheMaxAgeLong  = "max-age=300"
	)
	isNoCacheRequest := func(r *http.Request) bool {
		return r.Header.Get("Cache-Control") == "no-cache"
	}
	setCacheControl := func(w http.ResponseWriter, r *http.Request, cacheControl string) {
		if isNoCacheRequest(r) {
			w.Header().Set("Cache-Control", cacheMaxAge0)
		} else {
			w.Header().Set("Cache-Control", cacheControl)
		}
	}
	isGetOrHead := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Method != "GET" && r.Method != "HEAD" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return false
		}
		return true
	}

	// Serve assets using http.FileServer.
	if s.AssetsBase != nil && s.Assets != nil {
		assetsFileServer := http.FileServer(s.Assets)
		m.Handle(s.AssetsBase.Path, http.StripPrefix(s.AssetsBase.Path, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			setCacheControl(w, r, cacheMaxAgeLong)
			assetsFileServer.ServeHTTP(w, r)
		})))
	}

	basePath := s.basePath()

	// Serve search.
	m.Handle(path.Join(basePath, "search"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isGetOrHead(w, r) {
			return
		}

		source, err := search.ParseSource(r.URL.Query().Get("source"))
		if err != nil {
			w.Header().Set("Cache-Control", cacheMaxAge0)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data := SearchPageData{
			Query:  strings.TrimSpace(r.URL.Query().Get("q")),
			Source: source,
		}

		// HEAD requests don't search, so that checking a link to a search page never hits the web
		// search service.
		var respData []byte
		if r.Method == "GET" {
			data.Results, err = s.Search(r.Context(), source, data.Query)
			if err != nil {
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "search error: "+err.Error(), http.StatusInternalServerError)
				return
			}
			respData, err = s.renderSearchPage(&data)
			if err != nil {
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		setCacheControl(w, r, cacheMaxAgeShort)
		if r.Method == "GET" {
			_, _ = w.Write(respData)
		}
	}))

	// Serve record detail pages.
	docPath := path.Join(basePath, "doc") + "/"
	m.Handle(docPath, http.StripPrefix(docPath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isGetOrHead(w, r) {
			return
		}

		var data DocumentPageData
		if id, ok := parseDocumentPath(r.URL.Path); ok {
			if record, ok := s.Record(id); ok {
				data.Record = record
				data.Rank = record.ID
			}
		}

		var respData []byte
		if r.Method == "GET" {
			var err error
			respData, err = s.renderDocumentPage(&data)
			if err != nil {
				w.Header().Set("Cache-Control", cacheMaxAge0)
				http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		// Don't cache errors; do cache on success.
		if data.Record == nil {
			w.Header().Set("Cache-Control", cacheMaxAge0)
			w.WriteHeader(http.StatusNotFound)
		} else {
			setCacheControl(w, r, cacheMaxAgeShort)
		}
		if r.Method == "GET" {
			_, _ = w.Write(respData)
		}
	})))

	// Redirect the root to the search page.
	m.Handle(basePath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != basePath {
			http.NotFound(w, r)
			return
		}
		if !isGetOrHead(w, r) {
			return
		}
		http.Redirect(w, r, s.searchPath(), http.StatusFound)
	}))

	return m
}
