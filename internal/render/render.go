// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page template is paired with the shared base layout at parse time;
// templates are embedded so the binary is self-contained.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"swapstation/internal/nav"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title string         // Page title for the <title> tag
	Page  nav.Page       // Active page, used for nav highlighting
	Theme string         // "light" or "dark" for theme-aware pages
	Data  map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
}

// funcMap exposes the few helpers templates need.
var funcMap = template.FuncMap{
	// rawHTML marks upstream article bodies as pre-rendered HTML. Only
	// feed content fetched from our own headless CMS passes through it.
	"rawHTML": func(s string) template.HTML { return template.HTML(s) },
	"path": func(page nav.Page) string {
		p, err := nav.Path(page, nav.None())
		if err != nil {
			return "/"
		}
		return p
	},
	"articlePath": func(slug string) string {
		p, err := nav.Path(nav.PageSingleNews, nav.ForArticle(slug))
		if err != nil {
			return "/news"
		}
		return p
	},
	"categoryPath": func(category string) string {
		p, err := nav.Path(nav.PageNewsCategory, nav.ForCategory(category))
		if err != nil {
			return "/news"
		}
		return p
	},
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem, each paired with the base layout.
func New() (*Renderer, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read templates dir: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "base.html" || !strings.HasSuffix(name, ".html") {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the named page template into a buffer and returns the
// HTML. Buffering keeps partial output off the wire when execution fails.
func (r *Renderer) Render(name string, data PageData) ([]byte, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Write renders the named template and writes it as an HTML response.
func (r *Renderer) Write(w http.ResponseWriter, status int, name string, data PageData) error {
	html, err := r.Render(name, data)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(html)
	return err
}
