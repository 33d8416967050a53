package briefgen

import (
	"io/fs"

	"github.com/goliatone/go-briefgen/pkg/renderers/markdown"
)

// EmbeddedTemplates exposes the built-in document templates so callers can
// reuse or restyle them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return markdown.TemplatesFS()
}
