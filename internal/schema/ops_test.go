package schema

import "testing"

func textField(id string) Component {
	return Component{
		ID:          id,
		Type:        TypeTextField,
		Label:       "Text Field",
		Name:        "textField",
		ClassName:   "form-control",
		Placeholder: "Enter text...",
	}
}

func TestAppendComponent_CreatesSingleComponentRow(t *testing.T) {
	var s Schema

	s.AppendComponent(textField("a"))

	if len(s) != 1 {
		t.Fatalf("expected 1 row, got %d", len(s))
	}
	if len(s[0]) != 1 {
		t.Fatalf("expected 1 component in row, got %d", len(s[0]))
	}
	if s[0][0].Width != "100%" {
		t.Fatalf("expected width 100%%, got %q", s[0][0].Width)
	}
}

func TestAppendComponent_AssignsMissingID(t *testing.T) {
	var s Schema

	c := textField("")
	s.AppendComponent(c)

	if s[0][0].ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
}

func TestAppendComponent_RegeneratesCollidingID(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))

	s.AppendComponent(textField("a"))

	if got := s[1][0].ID; got == "a" || got == "" {
		t.Fatalf("expected a colliding id to be replaced, got %q", got)
	}
	if s[0][0].ID != "a" {
		t.Fatalf("the existing component keeps its id")
	}
}

func TestInsertInlineComponent_RegeneratesCollidingID(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))

	if err := s.InsertInlineComponent(textField("a"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s[0][1].ID; got == "a" || got == "" {
		t.Fatalf("expected a colliding id to be replaced, got %q", got)
	}
}

func TestInsertInlineComponent_RedistributesWidths(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))

	if err := s.InsertInlineComponent(Component{ID: "b", Type: TypeEmail}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s[0]) != 2 {
		t.Fatalf("expected 2 components in row 0, got %d", len(s[0]))
	}
	for i, c := range s[0] {
		if c.Width != "50%" {
			t.Fatalf("component %d: expected width 50%%, got %q", i, c.Width)
		}
	}

	if err := s.InsertInlineComponent(Component{ID: "c", Type: TypeNumber}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range s[0] {
		if c.Width != "33.33%" {
			t.Fatalf("component %d: expected width 33.33%%, got %q", i, c.Width)
		}
	}
}

func TestInsertInlineComponent_RejectsOutOfRangeRow(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))

	if err := s.InsertInlineComponent(textField("b"), 1); err != ErrRowOutOfRange {
		t.Fatalf("expected ErrRowOutOfRange, got %v", err)
	}
	if err := s.InsertInlineComponent(textField("b"), -1); err != ErrRowOutOfRange {
		t.Fatalf("expected ErrRowOutOfRange, got %v", err)
	}
	if s.ComponentCount() != 1 {
		t.Fatalf("schema must be untouched after rejected insert, got %d components", s.ComponentCount())
	}
}

func TestInsertRowAt_ClampsIndex(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))
	s.AppendComponent(textField("b"))

	s.InsertRowAt(textField("top"), -5)
	if s[0][0].ID != "top" {
		t.Fatalf("expected negative index to clamp to 0, got row 0 id %q", s[0][0].ID)
	}

	s.InsertRowAt(textField("bottom"), 99)
	if s[len(s)-1][0].ID != "bottom" {
		t.Fatalf("expected oversized index to clamp to end")
	}
}

func TestInsertRowAt_MiddlePreservesOrder(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))
	s.AppendComponent(textField("b"))

	s.InsertRowAt(textField("mid"), 1)

	got := []string{s[0][0].ID, s[1][0].ID, s[2][0].ID}
	want := []string{"a", "mid", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestUpdateComponent_MergesPatch(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))

	label := "Full Name"
	required := true
	ok := s.UpdateComponent("a", Patch{Label: &label, Required: &required})
	if !ok {
		t.Fatalf("expected update to find component")
	}

	c := s[0][0]
	if c.Label != "Full Name" || !c.Required {
		t.Fatalf("patch was not applied: %+v", c)
	}
	if c.Placeholder != "Enter text..." {
		t.Fatalf("unpatched fields must survive, got placeholder %q", c.Placeholder)
	}
}

func TestUpdateComponent_MissingIDIsNoOp(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))

	label := "x"
	if ok := s.UpdateComponent("missing", Patch{Label: &label}); ok {
		t.Fatalf("expected no-op for stale id")
	}
	if s[0][0].Label != "Text Field" {
		t.Fatalf("schema must be untouched, got label %q", s[0][0].Label)
	}
}

func TestRemoveComponent_PrunesEmptiedRow(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))
	s.AppendComponent(textField("b"))

	if ok := s.RemoveComponent("b"); !ok {
		t.Fatalf("expected removal to find component")
	}

	if len(s) != 1 {
		t.Fatalf("expected emptied row to be pruned, got %d rows", len(s))
	}
	for _, row := range s {
		if len(row) == 0 {
			t.Fatalf("no row may be empty")
		}
	}
}

func TestRemoveComponent_RecomputesSurvivorWidths(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))
	s.InsertInlineComponent(textField("b"), 0)
	s.InsertInlineComponent(textField("c"), 0)

	s.RemoveComponent("b")

	if len(s[0]) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(s[0]))
	}
	for i, c := range s[0] {
		if c.Width != "50%" {
			t.Fatalf("survivor %d: expected width 50%%, got %q", i, c.Width)
		}
	}
}

func TestRemoveComponent_MissingIDIsNoOp(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))

	if ok := s.RemoveComponent("missing"); ok {
		t.Fatalf("expected no-op for stale id")
	}
	if len(s) != 1 {
		t.Fatalf("schema must be untouched")
	}
}

func TestMoveRow_SpliceSemantics(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))
	s.AppendComponent(textField("b"))
	s.AppendComponent(textField("c"))

	if err := s.MoveRow(0, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := []string{s[0][0].ID, s[1][0].ID, s[2][0].ID}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row order mismatch: got %v, want %v", got, want)
		}
	}
}

func TestMoveRow_OutOfRangeIsReported(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))

	if err := s.MoveRow(0, 3); err != ErrRowOutOfRange {
		t.Fatalf("expected ErrRowOutOfRange, got %v", err)
	}
	if err := s.MoveRow(-1, 0); err != ErrRowOutOfRange {
		t.Fatalf("expected ErrRowOutOfRange, got %v", err)
	}
}

func TestReorderWithinRow_SplicesAndKeepsWidths(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))
	s.InsertInlineComponent(textField("b"), 0)
	s.InsertInlineComponent(textField("c"), 0)

	if err := s.ReorderWithinRow(0, 2, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := []string{s[0][0].ID, s[0][1].ID, s[0][2].ID}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column order mismatch: got %v, want %v", got, want)
		}
	}
	for i, c := range s[0] {
		if c.Width != "33.33%" {
			t.Fatalf("component %d: expected width 33.33%%, got %q", i, c.Width)
		}
	}
}

func TestReorderWithinRow_OutOfRangeColumn(t *testing.T) {
	var s Schema
	s.AppendComponent(textField("a"))

	if err := s.ReorderWithinRow(0, 0, 1); err != ErrColumnOutOfRange {
		t.Fatalf("expected ErrColumnOutOfRange, got %v", err)
	}
	if err := s.ReorderWithinRow(2, 0, 0); err != ErrRowOutOfRange {
		t.Fatalf("expected ErrRowOutOfRange, got %v", err)
	}
}

func TestIDUniquenessAcrossMutations(t *testing.T) {
	var s Schema
	for i := 0; i < 5; i++ {
		s.AppendComponent(Component{Type: TypeTextField})
	}
	s.InsertInlineComponent(Component{Type: TypeEmail}, 0)
	s.InsertInlineComponent(Component{Type: TypeNumber}, 2)

	seen := make(map[string]bool)
	for _, row := range s {
		for _, c := range row {
			if c.ID == "" {
				t.Fatalf("component without id")
			}
			if seen[c.ID] {
				t.Fatalf("duplicate id %q", c.ID)
			}
			seen[c.ID] = true
		}
	}
}

func TestClone_IsIndependent(t *testing.T) {
	var s Schema
	c := textField("a")
	c.Options = []Option{{Label: "One", Value: "one"}}
	s.AppendComponent(c)

	snapshot := s.Clone()

	label := "mutated"
	s.UpdateComponent("a", Patch{Label: &label})
	s[0][0].Options[0].Value = "changed"

	if snapshot[0][0].Label != "Text Field" {
		t.Fatalf("snapshot label changed with live schema")
	}
	if snapshot[0][0].Options[0].Value != "one" {
		t.Fatalf("snapshot options alias the live schema")
	}
}

func TestEqual(t *testing.T) {
	var a, b Schema
	a.AppendComponent(textField("a"))
	b.AppendComponent(textField("a"))

	if !Equal(a, b) {
		t.Fatalf("expected structurally equal schemas to compare equal")
	}

	label := "other"
	b.UpdateComponent("a", Patch{Label: &label})
	if Equal(a, b) {
		t.Fatalf("expected differing schemas to compare unequal")
	}

	if !Equal(nil, Schema{}) {
		t.Fatalf("nil and empty schemas are the same form")
	}
}

func TestWidthForCount(t *testing.T) {
	cases := map[int]string{1: "100%", 2: "50%", 3: "33.33%", 4: "25%", 5: "20%", 6: "16.67%"}
	for n, want := range cases {
		if got := widthForCount(n); got != want {
			t.Fatalf("widthForCount(%d) = %q, want %q", n, got, want)
		}
	}
}
