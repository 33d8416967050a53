package template

import (
	"io"
)

// TemplateRenderer is the engine contract document renderers rely on. Render
// resolves a named template or inline content, RenderTemplate always loads by
// name, and RenderString always parses inline content. Any supplied writers
// receive the rendered output in addition to the returned string.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
