package constants

import "github.com/AnanduApillAi/kendo-forms/internal/schema"

const (
	// DefaultTextClassName is applied to free-text-like inputs.
	DefaultTextClassName = "form-control"
	// DefaultCheckClassName is applied to single checkboxes.
	DefaultCheckClassName = "form-check"
	// DefaultCheckGroupClassName is applied to radio groups.
	DefaultCheckGroupClassName = "form-check-group"
	// DefaultSelectClassName is applied to dropdowns.
	DefaultSelectClassName = "form-select"

	// DefaultTextareaHeight is the initial height of a textarea component.
	DefaultTextareaHeight = "100px"
)

// ComponentDefaults describes one palette entry: the properties a component
// of that type starts with when dropped onto the canvas.
type ComponentDefaults struct {
	Type        schema.ComponentType `json:"type"`
	Name        string               `json:"name"`
	Label       string               `json:"label"`
	ClassName   string               `json:"className"`
	Placeholder string               `json:"placeholder,omitempty"`
	Height      string               `json:"height,omitempty"`
	Options     []schema.Option      `json:"options,omitempty"`
}

var componentDefaults = map[schema.ComponentType]ComponentDefaults{
	schema.TypeTextField: {
		Type:        schema.TypeTextField,
		Name:        "textField",
		Label:       "Text Field",
		ClassName:   DefaultTextClassName,
		Placeholder: "Enter text...",
	},
	schema.TypeEmail: {
		Type:        schema.TypeEmail,
		Name:        "email",
		Label:       "Email",
		ClassName:   DefaultTextClassName,
		Placeholder: "Enter email...",
	},
	schema.TypeNumber: {
		Type:        schema.TypeNumber,
		Name:        "number",
		Label:       "Number",
		ClassName:   DefaultTextClassName,
		Placeholder: "Enter number...",
	},
	schema.TypeCheckbox: {
		Type:      schema.TypeCheckbox,
		Name:      "checkbox",
		Label:     "Checkbox",
		ClassName: DefaultCheckClassName,
	},
	schema.TypeRadio: {
		Type:      schema.TypeRadio,
		Name:      "radioGroup",
		Label:     "Radio Group",
		ClassName: DefaultCheckGroupClassName,
		Options:   defaultOptionSet(),
	},
	schema.TypeDropdown: {
		Type:      schema.TypeDropdown,
		Name:      "dropdown",
		Label:     "Dropdown",
		ClassName: DefaultSelectClassName,
		Options:   defaultOptionSet(),
	},
	schema.TypeTextarea: {
		Type:        schema.TypeTextarea,
		Name:        "textarea",
		Label:       "Text Area",
		ClassName:   DefaultTextClassName,
		Placeholder: "Enter text...",
		Height:      DefaultTextareaHeight,
	},
}

func defaultOptionSet() []schema.Option {
	return []schema.Option{
		{Label: "Option 1", Value: "option1"},
		{Label: "Option 2", Value: "option2"},
		{Label: "Option 3", Value: "option3"},
	}
}

// DefaultsFor returns the palette defaults for a component type.
func DefaultsFor(t schema.ComponentType) (ComponentDefaults, bool) {
	d, ok := componentDefaults[t]
	if !ok {
		return ComponentDefaults{}, false
	}
	if d.Options != nil {
		options := make([]schema.Option, len(d.Options))
		copy(options, d.Options)
		d.Options = options
	}
	return d, true
}

// NewComponent builds a fresh component of the given type with palette
// defaults applied. The id is left empty for the schema ops to assign.
func NewComponent(t schema.ComponentType) (schema.Component, bool) {
	d, ok := DefaultsFor(t)
	if !ok {
		return schema.Component{}, false
	}
	return schema.Component{
		Type:          d.Type,
		ComponentName: d.Type.DisplayName(),
		Label:         d.Label,
		Name:          d.Name,
		ClassName:     d.ClassName,
		Placeholder:   d.Placeholder,
		Height:        d.Height,
		Options:       d.Options,
	}, true
}

// Palette returns the palette entries in canvas order.
func Palette() []ComponentDefaults {
	types := schema.AllTypes()
	out := make([]ComponentDefaults, 0, len(types))
	for _, t := range types {
		d, _ := DefaultsFor(t)
		out = append(out, d)
	}
	return out
}
