// Package view renders the portfolio and the admin pages from embedded html/template files.
package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate is the full document; PortfolioTemplate is the #root fragment swapped on
// theme toggle.
const (
	PageTemplate      = "index.html"
	PortfolioTemplate = "portfolio"
)

// ErrUnknownSection is returned when a section id has no template.
var ErrUnknownSection = errors.New("unknown section")

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Template exposes the parsed set, for gin's SetHTMLTemplate.
func (r *Renderer) Template() *template.Template { return r.tmpl }

// Render executes the named template.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// RenderPage writes the full document.
func (r *Renderer) RenderPage(w io.Writer, p Page) error {
	return r.Render(w, PageTemplate, p)
}

// RenderSection writes a single section fragment.
func (r *Renderer) RenderSection(w io.Writer, id string, p Page) error {
	s, ok := LookupSection(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	return r.Render(w, s.Template(), p)
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"icon": Icon,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("2006-01-02 15:04")
		},
	}
}
