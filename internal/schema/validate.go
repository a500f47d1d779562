package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError describes why an externally-sourced schema was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid form schema: " + e.Reason
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Normalize prepares an externally-sourced schema (generation response,
// imported JSON) for use as the live schema. It resolves the type /
// componentName dual representation, rejects structurally broken components,
// and recomputes row widths. The input is not modified.
//
// Generators are inconsistent about which of type and componentName they
// populate, so either one is accepted; the other is re-derived from the
// authoritative lookup. Properties the type cannot carry (options on plain
// inputs, placeholders on choice controls) are dropped. Anything missing
// (id, both identity fields) is rejected rather than repaired.
func Normalize(in Schema) (Schema, error) {
	out := make(Schema, 0, len(in))
	seen := make(map[string]struct{})

	for ri, row := range in {
		if len(row) == 0 {
			return nil, validationErrorf("row %d is empty", ri)
		}

		normalized := make(Row, 0, len(row))
		for ci, c := range row {
			c = c.Clone()

			c.ID = strings.TrimSpace(c.ID)
			if c.ID == "" {
				return nil, validationErrorf("component at row %d column %d has no id", ri, ci)
			}
			if _, dup := seen[c.ID]; dup {
				return nil, validationErrorf("duplicate component id %q", c.ID)
			}
			seen[c.ID] = struct{}{}

			if !c.Type.IsValid() {
				derived, ok := TypeFromDisplayName(c.ComponentName)
				if !ok {
					if c.Type == "" && c.ComponentName == "" {
						return nil, validationErrorf("component %q has neither type nor componentName", c.ID)
					}
					return nil, validationErrorf("component %q has unknown type %q", c.ID, string(c.Type))
				}
				c.Type = derived
			}
			c.ComponentName = c.Type.DisplayName()

			if c.Type.HasOptions() {
				if err := checkOptionValues(c); err != nil {
					return nil, err
				}
			} else {
				c.Options = nil
			}
			if !c.Type.HasPlaceholder() {
				c.Placeholder = ""
			}

			normalized = append(normalized, c)
		}

		out = append(out, normalizeRowWidths(normalized))
	}

	return out, nil
}

// Validate checks the invariants of a schema already in canonical form:
// unique non-empty ids, known types, no empty rows, unique option values.
func Validate(s Schema) error {
	seen := make(map[string]struct{})
	for ri, row := range s {
		if len(row) == 0 {
			return validationErrorf("row %d is empty", ri)
		}
		for ci, c := range row {
			if strings.TrimSpace(c.ID) == "" {
				return validationErrorf("component at row %d column %d has no id", ri, ci)
			}
			if _, dup := seen[c.ID]; dup {
				return validationErrorf("duplicate component id %q", c.ID)
			}
			seen[c.ID] = struct{}{}
			if !c.Type.IsValid() {
				return validationErrorf("component %q has unknown type %q", c.ID, string(c.Type))
			}
			if c.Type.HasOptions() {
				if err := checkOptionValues(c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkOptionValues(c Component) error {
	values := make(map[string]struct{}, len(c.Options))
	for _, opt := range c.Options {
		if _, dup := values[opt.Value]; dup {
			return validationErrorf("component %q repeats option value %q", c.ID, opt.Value)
		}
		values[opt.Value] = struct{}{}
	}
	return nil
}

// ParseJSON decodes schema JSON text. The decoded value still has to pass
// Normalize before it may replace a live schema.
func ParseJSON(data []byte) (Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, validationErrorf("not valid JSON: %v", err)
	}
	return s, nil
}

// RequiredFields lists the field names of required components, in layout
// order. This is the extent of runtime form validation the builder offers.
func RequiredFields(s Schema) []string {
	var fields []string
	for _, row := range s {
		for _, c := range row {
			if !c.Required {
				continue
			}
			name := c.Name
			if name == "" {
				name = c.ID
			}
			fields = append(fields, name)
		}
	}
	return fields
}
