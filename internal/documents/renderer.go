package documents

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/shareregistry/backoffice/web"
)

// PDFClient exposes the subset of the pdf client used by the renderer.
type PDFClient interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// Renderer executes a document template and converts the HTML to PDF.
type Renderer struct {
	templates map[Kind]*template.Template
	client    PDFClient
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006")
}

// NewRenderer parses every document template.
func NewRenderer(client PDFClient) (*Renderer, error) {
	if client == nil {
		return nil, fmt.Errorf("documents renderer: pdf client required")
	}
	funcMap := template.FuncMap{
		"formatDate": formatDate,
		"formatDatePtr": func(t *time.Time) string {
			if t == nil {
				return "-"
			}
			return formatDate(*t)
		},
		"formatDecimal": func(v float64) string {
			return fmt.Sprintf("%0.2f", v)
		},
		"formatPercent": func(v float64) string {
			return fmt.Sprintf("%0.2f%%", v)
		},
	}
	r := &Renderer{templates: make(map[Kind]*template.Template, len(kinds)), client: client}
	for kind, info := range kinds {
		tpl, err := template.New(info.file).Funcs(funcMap).ParseFS(web.Templates,
			"templates/documents/layout.html", "templates/documents/"+info.file)
		if err != nil {
			return nil, fmt.Errorf("documents renderer: parse %s: %w", info.file, err)
		}
		r.templates[kind] = tpl
	}
	return r, nil
}

// HTML executes the template of kind.
func (r *Renderer) HTML(kind Kind, data View) (string, error) {
	tpl, ok := r.templates[kind]
	if !ok {
		return "", unknownKind(kind)
	}
	buf := &bytes.Buffer{}
	if err := tpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("documents renderer: execute %s: %w", kind, err)
	}
	return buf.String(), nil
}

// Render executes the template and converts the HTML to PDF bytes.
func (r *Renderer) Render(ctx context.Context, kind Kind, data View) ([]byte, error) {
	html, err := r.HTML(kind, data)
	if err != nil {
		return nil, err
	}
	return r.client.RenderHTML(ctx, html)
}
