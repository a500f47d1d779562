package builder

import (
	"testing"

	"github.com/AnanduApillAi/kendo-forms/internal/schema"
)

func TestLedger_AppendOrderAndTimestamps(t *testing.T) {
	s := NewSession()

	for i := 0; i < 4; i++ {
		s.AppendEntry("prompt", i%2 == 0, s.Schema(), "")
	}

	history := s.History()
	if len(history) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.Before(history[i-1].Timestamp) {
			t.Fatalf("timestamps must be non-decreasing")
		}
	}
}

func TestLedger_FailedEntryHasNoSnapshot(t *testing.T) {
	s := NewSession()
	s.AppendComponent(sampleComponent("a", schema.TypeTextField))

	entry := s.AppendEntry("add a field", false, s.Schema(), "")

	if entry.FormState != nil {
		t.Fatalf("failed entries must not store a snapshot")
	}
}

func TestLedger_SuccessOnEmptySchemaStoresSnapshot(t *testing.T) {
	s := NewSession()

	entry := s.AppendEntry("just chatting", true, s.Schema(), "hello")

	if entry.FormState == nil {
		t.Fatalf("success entries must carry a snapshot even for an empty form")
	}
	if !s.IsCurrent(entry) {
		t.Fatalf("a freshly appended success entry must be current")
	}

	s.AppendComponent(sampleComponent("a", schema.TypeTextField))
	if s.IsCurrent(entry) {
		t.Fatalf("entry must stop being current after a manual edit")
	}

	restored, err := s.RestoreEntry(entry.ID)
	if err != nil {
		t.Fatalf("unexpected restore error: %v", err)
	}
	if len(restored) != 0 {
		t.Fatalf("expected restore to the empty form, got %d rows", len(restored))
	}
}

func TestLedger_SnapshotIsIndependentOfLiveSchema(t *testing.T) {
	s := NewSession()
	s.AppendComponent(sampleComponent("a", schema.TypeTextField))

	s.AppendEntry("create", true, s.Schema(), "done")

	label := "mutated"
	s.UpdateComponent("a", schema.Patch{Label: &label})

	history := s.History()
	if history[0].FormState[0][0].Label != "textField" {
		t.Fatalf("stored snapshot changed after live mutation")
	}
}

func TestLedger_IsCurrent(t *testing.T) {
	s := NewSession()
	s.AppendComponent(sampleComponent("a", schema.TypeTextField))

	entry := s.AppendEntry("create", true, s.Schema(), "done")

	if !s.IsCurrent(entry) {
		t.Fatalf("entry recorded against the live schema must be current")
	}

	label := "manual edit"
	s.UpdateComponent("a", schema.Patch{Label: &label})

	if s.IsCurrent(entry) {
		t.Fatalf("manual mutation must invalidate currency")
	}
}

func TestLedger_IsCurrentFalseWithoutSnapshot(t *testing.T) {
	s := NewSession()

	entry := s.AppendEntry("failed", false, nil, "")

	if s.IsCurrent(entry) {
		t.Fatalf("entries without snapshots are never current")
	}
}

func TestLedger_RestoreReplacesSchemaKeepsEntries(t *testing.T) {
	s := NewSession()

	s.AppendComponent(sampleComponent("a", schema.TypeTextField))
	e1 := s.AppendEntry("first", true, s.Schema(), "")

	s.AppendComponent(sampleComponent("b", schema.TypeEmail))
	e2 := s.AppendEntry("second", true, s.Schema(), "")

	restored, err := s.RestoreEntry(e1.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(restored) != 1 || restored[0][0].ID != "a" {
		t.Fatalf("restore did not bring back the first snapshot: %+v", restored)
	}

	if len(s.History()) != 2 {
		t.Fatalf("restore must not drop ledger entries")
	}
	if !s.IsCurrent(e1) {
		t.Fatalf("restored entry must be current")
	}
	if s.IsCurrent(e2) {
		t.Fatalf("later entry must no longer be current")
	}
}

func TestLedger_RestoreWithoutSnapshotIsReported(t *testing.T) {
	s := NewSession()
	entry := s.AppendEntry("failed", false, nil, "")

	if _, err := s.RestoreEntry(entry.ID); err != ErrNoSnapshot {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
	if _, err := s.RestoreEntry("missing"); err != ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestLedger_HistoryTail(t *testing.T) {
	s := NewSession()
	prompts := []string{"one", "two", "three", "four", "five", "six", "seven"}
	for _, p := range prompts {
		s.AppendEntry(p, true, s.Schema(), "ok")
	}

	tail := s.HistoryTail(5)
	if len(tail) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(tail))
	}
	if tail[0].Prompt != "three" || tail[4].Prompt != "seven" {
		t.Fatalf("expected the most recent entries oldest-first, got %q..%q", tail[0].Prompt, tail[4].Prompt)
	}

	if got := s.HistoryTail(0); got != nil {
		t.Fatalf("zero-width tail must be empty")
	}
	if got := s.HistoryTail(50); len(got) != len(prompts) {
		t.Fatalf("oversized tail returns everything, got %d", len(got))
	}
}
