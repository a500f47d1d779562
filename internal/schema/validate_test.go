package schema

import (
	"strings"
	"testing"
)

func TestNormalize_DerivesTypeFromComponentName(t *testing.T) {
	in := Schema{
		{Component{ID: "a", ComponentName: "Email Field", Label: "Email"}},
	}

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0][0].Type != TypeEmail {
		t.Fatalf("expected type to be derived from componentName, got %q", out[0][0].Type)
	}
}

func TestNormalize_RederivesComponentNameFromType(t *testing.T) {
	in := Schema{
		{Component{ID: "a", Type: TypeDropdown, ComponentName: "Select Box", Options: []Option{{Label: "A", Value: "a"}}}},
	}

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0][0].ComponentName != "Dropdown" {
		t.Fatalf("type is authoritative for the display name, got %q", out[0][0].ComponentName)
	}
}

func TestNormalize_DropsInapplicableProperties(t *testing.T) {
	in := Schema{
		{Component{ID: "a", Type: TypeCheckbox, Label: "Agree", Placeholder: "stray", Options: []Option{{Label: "X", Value: "x"}}}},
	}

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0][0].Placeholder != "" {
		t.Fatalf("checkboxes carry no placeholder, got %q", out[0][0].Placeholder)
	}
	if out[0][0].Options != nil {
		t.Fatalf("checkboxes carry no options, got %v", out[0][0].Options)
	}
}

func TestNormalize_RejectsMissingID(t *testing.T) {
	in := Schema{{Component{Type: TypeTextField}}}

	if _, err := Normalize(in); err == nil {
		t.Fatalf("expected rejection of component without id")
	}
}

func TestNormalize_RejectsUnknownIdentity(t *testing.T) {
	in := Schema{{Component{ID: "a", Type: "mystery", ComponentName: "Mystery"}}}

	_, err := Normalize(in)
	if err == nil {
		t.Fatalf("expected rejection of unknown type")
	}
	if !strings.Contains(err.Error(), "unknown type") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestNormalize_RejectsEmptyRow(t *testing.T) {
	in := Schema{{}}

	if _, err := Normalize(in); err == nil {
		t.Fatalf("expected rejection of empty row")
	}
}

func TestNormalize_RejectsDuplicateIDs(t *testing.T) {
	in := Schema{
		{Component{ID: "a", Type: TypeTextField}},
		{Component{ID: "a", Type: TypeEmail}},
	}

	if _, err := Normalize(in); err == nil {
		t.Fatalf("expected rejection of duplicate ids")
	}
}

func TestNormalize_RejectsDuplicateOptionValues(t *testing.T) {
	in := Schema{
		{Component{ID: "a", Type: TypeRadio, Options: []Option{
			{Label: "One", Value: "same"},
			{Label: "Two", Value: "same"},
		}}},
	}

	if _, err := Normalize(in); err == nil {
		t.Fatalf("expected rejection of repeated option values")
	}
}

func TestNormalize_StripsOptionsFromOptionlessTypes(t *testing.T) {
	in := Schema{
		{Component{ID: "a", Type: TypeTextField, Options: []Option{{Label: "x", Value: "x"}}}},
	}

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0][0].Options != nil {
		t.Fatalf("text fields must not carry options")
	}
}

func TestNormalize_RecomputesWidths(t *testing.T) {
	in := Schema{
		{
			Component{ID: "a", Type: TypeTextField, Width: "72%"},
			Component{ID: "b", Type: TypeEmail, Width: "13%"},
		},
	}

	out, err := Normalize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range out[0] {
		if c.Width != "50%" {
			t.Fatalf("component %d: expected recomputed width 50%%, got %q", i, c.Width)
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := Schema{
		{Component{ID: "a", Type: TypeTextField, Width: "72%"}},
	}

	if _, err := Normalize(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in[0][0].Width != "72%" {
		t.Fatalf("Normalize must not mutate its input")
	}
}

func TestValidate_AcceptsCanonicalSchema(t *testing.T) {
	in := Schema{
		{Component{ID: "a", Type: TypeTextField, Width: "100%"}},
		{Component{ID: "b", Type: TypeRadio, Options: []Option{{Label: "One", Value: "one"}}}},
	}

	if err := Validate(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseJSON_RejectsMalformedInput(t *testing.T) {
	if _, err := ParseJSON([]byte(`{"not":"an array"}`)); err == nil {
		t.Fatalf("expected error for non-array JSON")
	}
	if _, err := ParseJSON([]byte(`[{"id":"a"}]`)); err == nil {
		t.Fatalf("expected error for array of objects instead of array of arrays")
	}
}

func TestRequiredFields(t *testing.T) {
	in := Schema{
		{Component{ID: "a", Type: TypeTextField, Name: "name", Required: true}},
		{Component{ID: "b", Type: TypeEmail, Name: "email"}},
		{Component{ID: "c", Type: TypeCheckbox, Required: true}},
	}

	fields := RequiredFields(in)
	if len(fields) != 2 {
		t.Fatalf("expected 2 required fields, got %v", fields)
	}
	if fields[0] != "name" || fields[1] != "c" {
		t.Fatalf("unexpected required fields: %v", fields)
	}
}
