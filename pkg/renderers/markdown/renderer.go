// Package markdown renders a brief as the bullet-list scope document.
package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-briefgen/pkg/brief"
	rendertemplate "github.com/goliatone/go-briefgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-briefgen/pkg/render/template/gotemplate"
)

const templateName = "templates/brief"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the human-readable markdown document for a brief.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the markdown renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("markdown renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "markdown"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/markdown"
}

// Render emits one bullet line per field in schema order, created_utc last.
// Empty optional values keep their label with an empty value so the document
// shape never varies.
func (r *Renderer) Render(ctx context.Context, b *brief.Brief) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("markdown renderer: brief is required")
	}

	entries := b.Entries()
	rows := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, map[string]any{
			"label": entry.Label,
			"value": entry.Value,
		})
	}

	out, err := r.templates.RenderTemplate(templateName, map[string]any{
		"entries": rows,
	})
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return []byte(out), nil
}
