package lyricsite

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"os"

	"github.com/pkg/errors"
	"github.com/sourcegraph/lyricsite/internal/search"
)

const (
	rootTemplateName     = "root"
	documentTemplateName = "document"
	searchTemplateName   = "search"
)

func (s *Site) getTemplate(name string, extraFuncs template.FuncMap) (*template.Template, error) {
	tmpl := template.New(rootTemplateName)
	tmpl.Funcs(template.FuncMap{
		"asset": func(path string) string {
			if s.AssetsBase == nil {
				return path
			}
			return s.AssetsBase.ResolveReference(&url.URL{Path: path}).String()
		},
		"docURL": s.DocumentURL,
		"searchURL": func(queryStr, source string) string {
			return s.SearchURL(queryStr, search.Source(source))
		},
		"searchPath": func() string { return s.searchPath() },
	})
	tmpl.Funcs(extraFuncs)

	// Read root and named template files.
	names := []string{rootTemplateName, name}
	for _, name := range names {
		path := "/" + name + ".html"
		data, err := ReadFile(s.Templates, path)
		if name == rootTemplateName && os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("read template %s", path))
		}
		if _, err := tmpl.Parse(string(data)); err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("parse template %s", path))
		}
	}
	return tmpl, nil
}

func (s *Site) renderTemplate(name string, extraFuncs template.FuncMap, data interface{}) ([]byte, error) {
	tmpl, err := s.getTemplate(name, extraFuncs)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.WithMessage(err, fmt.Sprintf("execute template %s", name))
	}
	return buf.Bytes(), nil
}
