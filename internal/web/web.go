// Package web renders the bonus-malus HTML form and its result.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FormValues echoes the submitted raw values back into the form.
type FormValues struct {
	FirstName        string
	LastName         string
	Age              string
	DrivingYears     string
	AccidentsAtFault string
	Usage            string
}

// Result is what the result panel shows after a successful calculation.
type Result struct {
	FirstName        string
	DrivingYears     int
	AccidentsAtFault int
	Score            int
}

type Page struct {
	Form   FormValues
	Result *Result
	Error  string
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web.NewRenderer: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("web.Render: %w", err)
	}
	return nil
}
