package builder

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AnanduApillAi/kendo-forms/internal/schema"
)

var (
	ErrGenerationInFlight = errors.New("a generation request is already in flight for this session")
	ErrComponentNotFound  = errors.New("component not found")
	ErrNoDraft            = errors.New("no customization draft is open")
	ErrOptionOutOfRange   = errors.New("option index out of range")
)

// Session owns the mutable state of one open builder: the live schema, the
// chat ledger, the current selection and the customization draft. All access
// goes through its methods; the embedded mutex makes each operation atomic
// with respect to the others.
type Session struct {
	ID string

	mu         sync.Mutex
	schema     schema.Schema
	selectedID string
	ledger     []ChatEntry
	generating bool
	draft      *Draft
	lastActive time.Time
}

// NewSession creates an empty builder session.
func NewSession() *Session {
	return &Session{
		ID:         uuid.New().String(),
		lastActive: time.Now(),
	}
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

// IdleSince returns the time of the session's last operation.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Schema returns an independent copy of the live schema.
func (s *Session) Schema() schema.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schema.Clone()
}

// SelectedID returns the id of the component currently being edited, or an
// empty string.
func (s *Session) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// Select marks a component as the customization target. An empty id clears
// the selection.
func (s *Session) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
	s.touch()
}

// AppendComponent adds a new single-component row at the end of the schema.
func (s *Session) AppendComponent(c schema.Component) schema.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema.AppendComponent(c)
	s.touch()
	return s.schema.Clone()
}

// InsertRowAt inserts a new single-component row at the given position.
func (s *Session) InsertRowAt(c schema.Component, index int) schema.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema.InsertRowAt(c, index)
	s.touch()
	return s.schema.Clone()
}

// InsertInlineComponent appends a component to an existing row.
func (s *Session) InsertInlineComponent(c schema.Component, rowIndex int) (schema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.schema.InsertInlineComponent(c, rowIndex); err != nil {
		return nil, err
	}
	s.touch()
	return s.schema.Clone(), nil
}

// UpdateComponent merges a partial property update into a component. Stale
// ids are a silent no-op.
func (s *Session) UpdateComponent(id string, patch schema.Patch) schema.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema.UpdateComponent(id, patch)
	s.touch()
	return s.schema.Clone()
}

// Customize applies a staged patch to a component and clears the selection.
func (s *Session) Customize(id string, patch schema.Patch) schema.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema.UpdateComponent(id, patch)
	s.selectedID = ""
	s.touch()
	return s.schema.Clone()
}

// RemoveComponent deletes a component, pruning its row if it empties. A
// removed component that was selected also clears the selection.
func (s *Session) RemoveComponent(id string) schema.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.schema.RemoveComponent(id) && s.selectedID == id {
		s.selectedID = ""
	}
	s.touch()
	return s.schema.Clone()
}

// MoveRow reorders rows with splice semantics.
func (s *Session) MoveRow(sourceIndex, destIndex int) (schema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.schema.MoveRow(sourceIndex, destIndex); err != nil {
		return nil, err
	}
	s.touch()
	return s.schema.Clone(), nil
}

// ReorderWithinRow reorders components inside one row.
func (s *Session) ReorderWithinRow(rowIndex, sourceCol, destCol int) (schema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.schema.ReorderWithinRow(rowIndex, sourceCol, destCol); err != nil {
		return nil, err
	}
	s.touch()
	return s.schema.Clone(), nil
}

// ReplaceSchema swaps the live schema wholesale. Callers are responsible for
// normalizing externally-sourced schemas first.
func (s *Session) ReplaceSchema(next schema.Schema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema = next.Clone()
	s.touch()
}

// BeginGeneration marks the session as having an outstanding generation
// request. At most one request may be in flight; a second submission is
// rejected, not queued.
func (s *Session) BeginGeneration() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return ErrGenerationInFlight
	}
	s.generating = true
	s.touch()
	return nil
}

// EndGeneration returns the session to the idle state.
func (s *Session) EndGeneration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
	s.touch()
}

// Generating reports whether a generation request is outstanding.
func (s *Session) Generating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating
}
