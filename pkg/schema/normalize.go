package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRequired signals that a required field received empty input and has no
// default to fall back on. Callers decide whether to re-prompt or fail.
var ErrRequired = errors.New("schema: value is required")

// ErrNoMatch signals that a choice field received input outside its option
// set. The error message lists the valid options.
type ErrNoMatch struct {
	Field   string
	Input   string
	Options []string
}

func (e *ErrNoMatch) Error() string {
	return fmt.Sprintf("schema: %s: %q is not one of: %s", e.Field, e.Input, strings.Join(e.Options, "/"))
}

// Normalize applies a field's empty-input and choice rules to raw input and
// returns the value that would be stored in the brief.
//
// Text fields: input is trimmed; empty input yields the default when one is
// declared, the empty string when the field is optional, and ErrRequired
// otherwise. Choice fields: empty input follows the same rules, then the
// value is matched case-insensitively against the option set and returned in
// canonical casing; yes/no fields additionally accept the y/n shorthand.
func Normalize(field Field, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		if field.HasDefault() {
			return field.Default, nil
		}
		if !field.Required {
			return "", nil
		}
		return "", ErrRequired
	}

	if field.Type != FieldTypeChoice {
		return value, nil
	}

	lower := strings.ToLower(value)
	for _, opt := range field.Options {
		if strings.ToLower(opt) == lower {
			return opt, nil
		}
	}
	if field.IsYesNo() {
		switch lower {
		case "y":
			return "yes", nil
		case "n":
			return "no", nil
		}
	}
	return "", &ErrNoMatch{Field: field.Name, Input: value, Options: field.Options}
}
