package constants

import (
	"testing"

	"github.com/AnanduApillAi/kendo-forms/internal/schema"
)

func TestNewComponent_AppliesPaletteDefaults(t *testing.T) {
	c, ok := NewComponent(schema.TypeDropdown)
	if !ok {
		t.Fatalf("dropdown is a palette type")
	}
	if c.ID != "" {
		t.Fatalf("id assignment belongs to the schema ops, got %q", c.ID)
	}
	if c.ComponentName != "Dropdown" {
		t.Fatalf("expected display name Dropdown, got %q", c.ComponentName)
	}
	if c.ClassName != DefaultSelectClassName {
		t.Fatalf("expected class %q, got %q", DefaultSelectClassName, c.ClassName)
	}
	if len(c.Options) != 3 {
		t.Fatalf("expected 3 default options, got %d", len(c.Options))
	}
}

func TestNewComponent_UnknownType(t *testing.T) {
	if _, ok := NewComponent("hologram"); ok {
		t.Fatalf("unknown types must be rejected")
	}
}

func TestDefaultsFor_ReturnsIndependentOptions(t *testing.T) {
	first, _ := DefaultsFor(schema.TypeRadio)
	first.Options[0].Label = "mutated"

	second, _ := DefaultsFor(schema.TypeRadio)
	if second.Options[0].Label != "Option 1" {
		t.Fatalf("palette defaults must not be mutable through returned copies, got %q", second.Options[0].Label)
	}
}

func TestPalette_CoversEveryType(t *testing.T) {
	entries := Palette()
	types := schema.AllTypes()
	if len(entries) != len(types) {
		t.Fatalf("expected %d palette entries, got %d", len(types), len(entries))
	}
	for i, entry := range entries {
		if entry.Type != types[i] {
			t.Fatalf("palette order diverged at %d: %q vs %q", i, entry.Type, types[i])
		}
	}
}

func TestSampleSchema_SatisfiesInvariants(t *testing.T) {
	sample := SampleSchema()
	if err := schema.Validate(sample); err != nil {
		t.Fatalf("sample form must be valid: %v", err)
	}
	if len(sample) != 2 {
		t.Fatalf("expected the two-row starter form, got %d rows", len(sample))
	}
}
