package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"

	"kinoteka/proj/internal/domain/filters"
	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/services/movies"
)

//go:embed "templates"
var templateFS embed.FS

// PageData is the context handed to every HTML page. GenreYear feeds the
// filter sidebar shared by the list and detail views; QueryFragment carries
// the applied filter/search parameters for pagination links
// ("year=1999&genre=2&" style, matching the original page contexts).
type PageData struct {
	GenreYear *movies.GenreYearContext
	Movies    []models.Movie
	Metadata  filters.Metadata
	Movie     *models.Movie
	Reviews   []models.Review
	Stars     []models.RatingStar
	Actor     *models.Actor
	Query     string
	// QueryFragment is built server-side from whitelisted parameters, so it
	// is safe to splice into pagination hrefs unescaped.
	QueryFragment template.URL
}

type TemplateCache struct {
	pages map[string]*template.Template
}

// NewTemplateCache parses every page template against the base layout once
// at startup.
func NewTemplateCache() (*TemplateCache, error) {
	pages, err := fs.Glob(templateFS, "templates/pages/*.gohtml")
	if err != nil {
		return nil, err
	}
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
	cache := &TemplateCache{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		name := filepath.Base(page)
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/base.gohtml", page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		cache.pages[name] = tmpl
	}
	return cache, nil
}

// Render writes a page to the response. The template is executed into a
// buffer first so a rendering error can still produce a clean 500 instead of
// a half-written body.
func (tc *TemplateCache) Render(w http.ResponseWriter, status int, page string, data *PageData) error {
	tmpl, ok := tc.pages[page]
	if !ok {
		return fmt.Errorf("template %s does not exist", page)
	}
	buff := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buff, "base", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buff.WriteTo(w)
	return err
}
