package render

import (
	"context"

	"github.com/goliatone/go-briefgen/pkg/brief"
)

// Renderer converts a finalized brief into one byte representation (markdown
// document, JSON record, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, b *brief.Brief) ([]byte, error)
}
