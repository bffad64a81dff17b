// Package view renders the HTML pages. Templates are embedded so the binary
// ships self-contained; every page replaces the whole content region, nothing
// is patched in place.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/kate00gas/restaurant-delivery/internal/core/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer satisfies echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"price":    domain.FormatPrice,
		"subtotal": domain.FormatSubtotal,
		"datetime": domain.FormatTimestamp,
		"orDash": func(s string) string {
			if s == "" {
				return "N/A"
			}
			return s
		},
		"yesno": func(b bool) string {
			if b {
				return "Yes"
			}
			return "No"
		},
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
