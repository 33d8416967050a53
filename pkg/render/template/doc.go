// Package template defines the renderer-agnostic template seam used by the
// document renderers, plus the pongo2-backed engine adapter.
package template
