// Package brief holds the collected answer record and its finalization rules.
package brief

import (
	"fmt"
	"time"

	"github.com/goliatone/go-briefgen/pkg/schema"
)

// TimestampLayout is the seconds-precision portion of the created_utc value.
// The record always carries an explicit +00:00 offset; see FormatTimestamp.
const TimestampLayout = "2006-01-02T15:04:05"

// FormatTimestamp renders t as the ISO-8601 string stored under created_utc.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout) + "+00:00"
}

// Entry is one rendered key/value pair, in schema order.
type Entry struct {
	Key   string
	Label string
	Value string
}

// Brief is the answer record for one run: the schema it was collected
// against, the stored values, and the creation timestamp assigned at
// finalization. Values only enter through Set, which normalizes them, so a
// finalized brief always satisfies the schema's constraints.
type Brief struct {
	schema  *schema.Schema
	values  map[string]string
	created string
}

// New creates an empty brief bound to a schema.
func New(s *schema.Schema) *Brief {
	return &Brief{
		schema: s,
		values: make(map[string]string, s.Len()),
	}
}

// Schema returns the schema the brief was collected against.
func (b *Brief) Schema() *schema.Schema {
	return b.schema
}

// Set normalizes raw input against the named field and stores the result.
func (b *Brief) Set(name, raw string) error {
	field, ok := b.schema.Lookup(name)
	if !ok {
		return fmt.Errorf("brief: unknown field %q", name)
	}
	value, err := schema.Normalize(field, raw)
	if err != nil {
		return fmt.Errorf("brief: field %q: %w", name, err)
	}
	b.values[name] = value
	return nil
}

// Value returns the stored value for a field name.
func (b *Brief) Value(name string) (string, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Finalize stamps created_utc from the given time. The timestamp is assigned
// exactly once; later calls do not move it.
func (b *Brief) Finalize(now time.Time) {
	if b.created != "" {
		return
	}
	b.created = FormatTimestamp(now)
}

// Finalized reports whether the creation timestamp has been assigned.
func (b *Brief) Finalized() bool {
	return b.created != ""
}

// CreatedUTC returns the creation timestamp, empty until Finalize runs.
func (b *Brief) CreatedUTC() string {
	return b.created
}

// Entries returns every key/value pair in schema order, with created_utc
// last. Unanswered fields appear with an empty value so renders stay aligned
// with the schema.
func (b *Brief) Entries() []Entry {
	fields := b.schema.Fields()
	entries := make([]Entry, 0, len(fields)+1)
	for _, field := range fields {
		entries = append(entries, Entry{
			Key:   field.Name,
			Label: field.Label(),
			Value: b.values[field.Name],
		})
	}
	entries = append(entries, Entry{
		Key:   schema.CreatedKey,
		Label: createdLabel,
		Value: b.created,
	})
	return entries
}

const createdLabel = "Created Utc"
