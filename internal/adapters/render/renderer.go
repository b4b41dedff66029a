package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"conferenceschedule/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"clock": func(t time.Time) string { return t.Format("15:04") },
	"date":  func(t time.Time) string { return t.Format("Monday 2 January 2006") },
	"join":  strings.Join,
}

// pageRenderer implements domain.PageRenderer over the embedded page templates.
type pageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses the embedded templates once.
func NewPageRenderer() (domain.PageRenderer, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &pageRenderer{tmpl: tmpl}, nil
}

func (r *pageRenderer) Render(w io.Writer, name string, data any) error {
	if r.tmpl.Lookup(name) == nil {
		return fmt.Errorf("unknown page template %q", name)
	}
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
