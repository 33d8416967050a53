// Package prompt drives the interactive question loop over a brief schema.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-briefgen/pkg/brief"
	"github.com/goliatone/go-briefgen/pkg/schema"
)

// Collector walks a schema in order and fills a brief from terminal input.
type Collector struct {
	driver Driver
}

// Option configures the collector.
type Option func(*Collector)

// WithDriver overrides the terminal driver used for prompting.
func WithDriver(driver Driver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// NewCollector constructs a collector with the survey driver by default.
func NewCollector(options ...Option) *Collector {
	c := &Collector{driver: NewSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Collect prompts for every field in schema order and returns the populated
// brief. Invalid or empty-required input re-prompts on the same field;
// exhausted input on a required field with no default fails fast instead of
// looping.
func (c *Collector) Collect(ctx context.Context, s *schema.Schema) (*brief.Brief, error) {
	b := brief.New(s)
	for _, field := range s.Fields() {
		if err := c.collectField(ctx, b, field); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (c *Collector) collectField(ctx context.Context, b *brief.Brief, field schema.Field) error {
	message := field.Prompt
	if field.Type == schema.FieldTypeChoice {
		message = fmt.Sprintf("%s (%s)", field.Prompt, strings.Join(field.Options, "/"))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := c.driver.Input(ctx, InputConfig{
			Message: message,
			Default: field.Default,
		})
		exhausted := errors.Is(err, ErrInputExhausted)
		if err != nil && !exhausted {
			return fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}
		if exhausted {
			// End of input counts as an empty line for this field.
			raw = ""
		}

		err = b.Set(field.Name, raw)
		if err == nil {
			return nil
		}

		if errors.Is(err, schema.ErrRequired) {
			if exhausted {
				return fmt.Errorf("prompt: field %q is required but input is exhausted: %w", field.Name, ErrInputExhausted)
			}
			if err := c.driver.Info(ctx, "This field is required."); err != nil {
				return err
			}
			continue
		}

		var noMatch *schema.ErrNoMatch
		if errors.As(err, &noMatch) {
			if err := c.driver.Info(ctx, fmt.Sprintf("Please choose one of: %s", strings.Join(field.Options, "/"))); err != nil {
				return err
			}
			continue
		}

		return err
	}
}
