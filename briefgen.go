// Package briefgen generates project-scoping briefs: it prompts through a
// fixed question schema (or applies a pre-supplied answers file), stamps the
// creation time, and renders the result as a markdown document plus a JSON
// record.
package briefgen

import (
	"context"
	"fmt"

	"github.com/goliatone/go-briefgen/pkg/brief"
	"github.com/goliatone/go-briefgen/pkg/render"
	"github.com/goliatone/go-briefgen/pkg/renderers/jsondoc"
	"github.com/goliatone/go-briefgen/pkg/renderers/markdown"
	"github.com/goliatone/go-briefgen/pkg/schema"
)

// Brief aliases the answer record exported via the root package for
// convenience.
type Brief = brief.Brief

// Field aliases one schema question.
type Field = schema.Field

// Schema aliases the ordered question list.
type Schema = schema.Schema

// ProjectBrief exposes the canonical alignment-checklist schema.
func ProjectBrief() *Schema {
	return schema.ProjectBrief()
}

// DefaultRegistry returns a registry with the built-in markdown and json
// renderers registered.
func DefaultRegistry() (*render.Registry, error) {
	md, err := markdown.New()
	if err != nil {
		return nil, fmt.Errorf("briefgen: markdown renderer: %w", err)
	}

	registry := render.NewRegistry()
	if err := registry.Register(md); err != nil {
		return nil, err
	}
	if err := registry.Register(jsondoc.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// Generate renders a finalized brief using the named built-in renderer. It is
// the simplest entry point for callers that already hold a brief.
func Generate(ctx context.Context, b *Brief, rendererName string) ([]byte, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, b)
}
