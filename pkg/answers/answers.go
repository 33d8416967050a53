// Package answers fills a brief from a YAML file instead of a terminal
// session, for non-interactive callers that supply every required field up
// front.
package answers

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-briefgen/pkg/brief"
	"github.com/goliatone/go-briefgen/pkg/schema"
)

// Load parses a flat field-name to answer mapping from a YAML file.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("answers: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes the raw YAML document. Keys must be scalar strings.
func Parse(data []byte) (map[string]string, error) {
	out := make(map[string]string)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("answers: parse: %w", err)
	}
	return out, nil
}

// Apply builds a brief from the provided answers without prompting. Every
// answer runs through the same normalization the interactive path uses.
// Unknown keys are rejected so typos surface instead of silently dropping a
// field; missing required fields fail with one error listing them all.
func Apply(s *schema.Schema, values map[string]string) (*brief.Brief, error) {
	for key := range values {
		if _, ok := s.Lookup(key); !ok {
			return nil, fmt.Errorf("answers: unknown field %q", key)
		}
	}

	b := brief.New(s)
	var missing []string
	for _, field := range s.Fields() {
		raw := values[field.Name]
		if err := b.Set(field.Name, raw); err != nil {
			if field.Required && strings.TrimSpace(raw) == "" {
				missing = append(missing, field.Name)
				continue
			}
			return nil, err
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("answers: missing required fields: %s", strings.Join(missing, ", "))
	}
	return b, nil
}
