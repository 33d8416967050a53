package schema

import (
	"fmt"
	"strings"
)

// FieldType is the simplified enum for question kinds.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeChoice FieldType = "choice"
)

// Field models one named question inside the brief. Choice fields carry their
// enumerated options in canonical casing; answers are normalized against them.
type Field struct {
	Name     string    `json:"name"`
	Prompt   string    `json:"prompt"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Default  string    `json:"default,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// HasDefault reports whether the field declares a fallback for empty input.
func (f Field) HasDefault() bool {
	return f.Default != ""
}

// Label converts the field name into the human-friendly form used by the
// document renderer: underscores become spaces and each word is title-cased.
func (f Field) Label() string {
	words := strings.Split(f.Name, "_")
	segments := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(word))
	}
	return strings.Join(segments, " ")
}

func titleCase(word string) string {
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// IsYesNo reports whether the option set is exactly {yes, no}, which unlocks
// the y/n shorthand during normalization.
func (f Field) IsYesNo() bool {
	if len(f.Options) != 2 {
		return false
	}
	seen := map[string]bool{}
	for _, opt := range f.Options {
		seen[strings.ToLower(opt)] = true
	}
	return seen["yes"] && seen["no"]
}

// Schema is the ordered question list. Order is significant: collection and
// rendering both walk it front to back.
type Schema struct {
	fields []Field
	index  map[string]int
}

// New builds a schema from an ordered field list.
func New(fields []Field) (*Schema, error) {
	index := make(map[string]int, len(fields))
	for i, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, fmt.Errorf("schema: field %d has no name", i)
		}
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("schema: duplicate field %q", name)
		}
		if field.Type == FieldTypeChoice && len(field.Options) == 0 {
			return nil, fmt.Errorf("schema: choice field %q has no options", name)
		}
		index[name] = i
	}
	return &Schema{fields: fields, index: index}, nil
}

// MustNew panics on an invalid field list. Used for compile-time schemas.
func MustNew(fields []Field) *Schema {
	s, err := New(fields)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the ordered field list.
func (s *Schema) Fields() []Field {
	return s.fields
}

// Len reports the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Lookup resolves a field by name.
func (s *Schema) Lookup(name string) (Field, bool) {
	idx, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[idx], true
}
