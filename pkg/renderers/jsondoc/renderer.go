// Package jsondoc serializes a brief as an ordered, indented JSON record.
package jsondoc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-briefgen/pkg/brief"
)

// Renderer produces the machine-readable JSON record for a brief. Keys are
// emitted in schema order with created_utc last; encoding/json map output
// sorts keys, which would lose the declared order, so the object is assembled
// entry by entry.
type Renderer struct{}

// New constructs the JSON renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "json"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render emits a flat string-valued JSON object with two-space indentation.
func (r *Renderer) Render(ctx context.Context, b *brief.Brief) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("json renderer: brief is required")
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	entries := b.Entries()
	for i, entry := range entries {
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, fmt.Errorf("json renderer: encode key %q: %w", entry.Key, err)
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("json renderer: encode value for %q: %w", entry.Key, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(entries)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}
