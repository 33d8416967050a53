package markdown

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// restyle the document without forking the renderer.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
