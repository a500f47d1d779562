package schema

import "strings"

// ComponentType identifies one of the closed set of form controls the
// builder can place on the canvas.
type ComponentType string

const (
	TypeTextField ComponentType = "textField"
	TypeEmail     ComponentType = "email"
	TypeNumber    ComponentType = "number"
	TypeCheckbox  ComponentType = "checkbox"
	TypeRadio     ComponentType = "radio"
	TypeDropdown  ComponentType = "dropdown"
	TypeTextarea  ComponentType = "textarea"
)

// displayNames maps each component type to its canonical display-name tag.
// External generators sometimes populate only the display name, so the
// mapping is authoritative in both directions.
var displayNames = map[ComponentType]string{
	TypeTextField: "Text Field",
	TypeEmail:     "Email Field",
	TypeNumber:    "Number Field",
	TypeCheckbox:  "Checkbox",
	TypeRadio:     "Radio Button",
	TypeDropdown:  "Dropdown",
	TypeTextarea:  "Textarea",
}

// IsValid reports whether t is a member of the closed type enumeration.
func (t ComponentType) IsValid() bool {
	_, ok := displayNames[t]
	return ok
}

// DisplayName returns the canonical component name for t, or an empty string
// for unknown types.
func (t ComponentType) DisplayName() string {
	return displayNames[t]
}

// HasOptions reports whether components of type t carry an options list.
func (t ComponentType) HasOptions() bool {
	return t == TypeRadio || t == TypeDropdown
}

// HasPlaceholder reports whether components of type t accept placeholder text.
func (t ComponentType) HasPlaceholder() bool {
	switch t {
	case TypeTextField, TypeEmail, TypeNumber, TypeTextarea:
		return true
	}
	return false
}

// TypeFromDisplayName resolves a display-name tag back to its component type.
// Matching is case-insensitive since generator output is not consistent about
// casing.
func TypeFromDisplayName(name string) (ComponentType, bool) {
	trimmed := strings.TrimSpace(name)
	for t, display := range displayNames {
		if strings.EqualFold(display, trimmed) {
			return t, true
		}
	}
	return "", false
}

// AllTypes returns the component types in canvas-palette order.
func AllTypes() []ComponentType {
	return []ComponentType{
		TypeTextField,
		TypeEmail,
		TypeNumber,
		TypeCheckbox,
		TypeRadio,
		TypeDropdown,
		TypeTextarea,
	}
}

// Option is one selectable entry of a radio or dropdown component.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Component is a single form field definition.
type Component struct {
	ID            string        `json:"id"`
	Type          ComponentType `json:"type"`
	ComponentName string        `json:"componentName,omitempty"`
	Label         string        `json:"label"`
	Name          string        `json:"name,omitempty"`
	ClassName     string        `json:"className,omitempty"`
	Placeholder   string        `json:"placeholder,omitempty"`
	Required      bool          `json:"required"`
	Options       []Option      `json:"options,omitempty"`
	Width         string        `json:"width,omitempty"`
	Height        string        `json:"height,omitempty"`
	ShowLabel     *bool         `json:"showLabel,omitempty"`
}

// ShowsLabel reports whether the component label is rendered. Absence of the
// flag means "show".
func (c Component) ShowsLabel() bool {
	return c.ShowLabel == nil || *c.ShowLabel
}

// Row is an ordered group of components rendered side by side. A persisted
// row always holds at least one component.
type Row []Component

// Schema is the ordered-rows-of-components form definition. Row order is the
// vertical layout order.
type Schema []Row

// Patch carries a partial property update for one component. Nil fields are
// left untouched. Width is absent deliberately: it is derived from row
// membership and only ever written by the redistribution routine.
type Patch struct {
	Label       *string   `json:"label,omitempty"`
	Name        *string   `json:"name,omitempty"`
	ClassName   *string   `json:"className,omitempty"`
	Placeholder *string   `json:"placeholder,omitempty"`
	Required    *bool     `json:"required,omitempty"`
	Options     *[]Option `json:"options,omitempty"`
	Height      *string   `json:"height,omitempty"`
	ShowLabel   *bool     `json:"showLabel,omitempty"`
}
