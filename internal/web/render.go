// Package web renders the server-side views. Templates are embedded at build
// time and parsed once; every page shares the layout, which carries the
// current user and the drained flash queues.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/mkamath/wanderstay/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{
	"error",
	"listings_index",
	"listings_show",
	"listings_new",
	"listings_edit",
	"login",
	"signup",
}

// PageData is what every template receives. Data holds the page-specific
// payload.
type PageData struct {
	Title       string
	CurrentUser *domain.User
	Success     []string
	Error       []string
	Data        any
}

type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes a page. The template executes into a buffer first so a
// rendering failure can still become a proper error response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown template %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
