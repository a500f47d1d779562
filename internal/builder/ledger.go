package builder

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AnanduApillAi/kendo-forms/internal/schema"
)

var (
	ErrEntryNotFound = errors.New("chat entry not found")
	ErrNoSnapshot    = errors.New("chat entry has no stored form state")
)

// ChatEntry is one append-only record of a prompt-driven edit attempt.
// FormState is present only for successful attempts and holds the schema the
// form was set to immediately after the entry was recorded.
type ChatEntry struct {
	ID        string        `json:"id"`
	Prompt    string        `json:"prompt"`
	Timestamp time.Time     `json:"timestamp"`
	Result    bool          `json:"result"`
	Message   string        `json:"message,omitempty"`
	FormState schema.Schema `json:"formState,omitempty"`
}

// AppendEntry records an attempt in the ledger. Successful attempts always
// store a deep copy of the snapshot so later schema mutation never rewrites
// history; failed attempts store none. Timestamps are clamped to be
// non-decreasing in insertion order.
func (s *Session) AppendEntry(prompt string, result bool, snapshot schema.Schema, message string) ChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if n := len(s.ledger); n > 0 && now.Before(s.ledger[n-1].Timestamp) {
		now = s.ledger[n-1].Timestamp
	}

	entry := ChatEntry{
		ID:        uuid.New().String(),
		Prompt:    prompt,
		Timestamp: now,
		Result:    result,
		Message:   message,
	}
	if result {
		// An empty schema is still a restorable state, so success turns
		// always carry a snapshot even before the first component lands.
		entry.FormState = snapshot.Clone()
		if entry.FormState == nil {
			entry.FormState = schema.Schema{}
		}
	}

	s.ledger = append(s.ledger, entry)
	s.touch()
	return entry
}

// History returns a copy of the ledger in insertion order.
func (s *Session) History() []ChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ChatEntry, len(s.ledger))
	for i, e := range s.ledger {
		out[i] = e
		out[i].FormState = e.FormState.Clone()
	}
	return out
}

// HistoryTail returns up to n of the most recent ledger entries, oldest
// first. Used to bound the conversation context sent to the generator.
func (s *Session) HistoryTail(n int) []ChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || len(s.ledger) == 0 {
		return nil
	}
	start := len(s.ledger) - n
	if start < 0 {
		start = 0
	}

	out := make([]ChatEntry, len(s.ledger)-start)
	copy(out, s.ledger[start:])
	return out
}

// IsCurrent reports whether the entry's snapshot structurally equals the live
// schema. Entries without a snapshot are never current, and a manual edit
// since the last entry leaves no entry current.
func (s *Session) IsCurrent(entry ChatEntry) bool {
	if entry.FormState == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return schema.Equal(entry.FormState, s.schema)
}

// RestoreEntry replaces the live schema with a fresh copy of the entry's
// snapshot. The ledger itself is never rewritten: entries recorded after the
// restored one stay in place.
func (s *Session) RestoreEntry(entryID string) (schema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.ledger {
		if e.ID != entryID {
			continue
		}
		if e.FormState == nil {
			return nil, ErrNoSnapshot
		}
		s.schema = e.FormState.Clone()
		s.selectedID = ""
		s.touch()
		return s.schema.Clone(), nil
	}
	return nil, ErrEntryNotFound
}
