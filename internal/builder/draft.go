package builder

import "github.com/AnanduApillAi/kendo-forms/internal/schema"

// Draft is a staging copy of one component's editable properties. The
// customization surface edits the draft freely; nothing reaches the live
// schema until Commit applies the whole patch in a single update.
type Draft struct {
	ComponentID string          `json:"componentId"`
	Label       string          `json:"label"`
	Name        string          `json:"name"`
	ClassName   string          `json:"className"`
	Placeholder string          `json:"placeholder"`
	Required    bool            `json:"required"`
	Options     []schema.Option `json:"options,omitempty"`
	Height      string          `json:"height,omitempty"`
	ShowLabel   bool            `json:"showLabel"`
}

func draftFromComponent(c schema.Component) *Draft {
	d := &Draft{
		ComponentID: c.ID,
		Label:       c.Label,
		Name:        c.Name,
		ClassName:   c.ClassName,
		Placeholder: c.Placeholder,
		Required:    c.Required,
		Height:      c.Height,
		ShowLabel:   c.ShowsLabel(),
	}
	if c.Options != nil {
		d.Options = make([]schema.Option, len(c.Options))
		copy(d.Options, c.Options)
	}
	return d
}

func (d *Draft) clone() *Draft {
	out := *d
	if d.Options != nil {
		out.Options = make([]schema.Option, len(d.Options))
		copy(out.Options, d.Options)
	}
	return &out
}

func (d *Draft) patch() schema.Patch {
	options := make([]schema.Option, len(d.Options))
	copy(options, d.Options)

	label := d.Label
	name := d.Name
	className := d.ClassName
	placeholder := d.Placeholder
	required := d.Required
	height := d.Height
	show := d.ShowLabel
	return schema.Patch{
		Label:       &label,
		Name:        &name,
		ClassName:   &className,
		Placeholder: &placeholder,
		Required:    &required,
		Options:     &options,
		Height:      &height,
		ShowLabel:   &show,
	}
}

// BeginCustomize loads a component into a fresh draft and selects it. An
// already-open draft is discarded.
func (s *Session) BeginCustomize(componentID string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.schema.FindComponent(componentID)
	if !ok {
		return nil, ErrComponentNotFound
	}

	s.draft = draftFromComponent(c)
	s.selectedID = componentID
	s.touch()
	return s.draft.clone(), nil
}

// DraftFields carries the scalar edits of the customization surface. Nil
// fields leave the draft value as is.
type DraftFields struct {
	Label       *string `json:"label,omitempty"`
	Name        *string `json:"name,omitempty" binding:"omitempty,field_name"`
	ClassName   *string `json:"className,omitempty"`
	Placeholder *string `json:"placeholder,omitempty"`
	Required    *bool   `json:"required,omitempty"`
	Height      *string `json:"height,omitempty"`
	ShowLabel   *bool   `json:"showLabel,omitempty"`
}

// UpdateDraft edits scalar fields of the open draft.
func (s *Session) UpdateDraft(fields DraftFields) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil, ErrNoDraft
	}
	if fields.Label != nil {
		s.draft.Label = *fields.Label
	}
	if fields.Name != nil {
		s.draft.Name = *fields.Name
	}
	if fields.ClassName != nil {
		s.draft.ClassName = *fields.ClassName
	}
	if fields.Placeholder != nil {
		s.draft.Placeholder = *fields.Placeholder
	}
	if fields.Required != nil {
		s.draft.Required = *fields.Required
	}
	if fields.Height != nil {
		s.draft.Height = *fields.Height
	}
	if fields.ShowLabel != nil {
		s.draft.ShowLabel = *fields.ShowLabel
	}
	s.touch()
	return s.draft.clone(), nil
}

// AddDraftOption appends an option to the open draft.
func (s *Session) AddDraftOption(opt schema.Option) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil, ErrNoDraft
	}
	s.draft.Options = append(s.draft.Options, opt)
	s.touch()
	return s.draft.clone(), nil
}

// RemoveDraftOption deletes the option at the given index from the draft.
func (s *Session) RemoveDraftOption(index int) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil, ErrNoDraft
	}
	if index < 0 || index >= len(s.draft.Options) {
		return nil, ErrOptionOutOfRange
	}
	s.draft.Options = append(s.draft.Options[:index], s.draft.Options[index+1:]...)
	s.touch()
	return s.draft.clone(), nil
}

// UpdateDraftOption edits the option at the given index of the draft.
func (s *Session) UpdateDraftOption(index int, opt schema.Option) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil, ErrNoDraft
	}
	if index < 0 || index >= len(s.draft.Options) {
		return nil, ErrOptionOutOfRange
	}
	s.draft.Options[index] = opt
	s.touch()
	return s.draft.clone(), nil
}

// CommitCustomize applies the open draft to its component in one update and
// clears both the draft and the selection. A component deleted while its
// draft was open makes the commit a silent no-op on the schema, matching the
// stale-id semantics of updates.
func (s *Session) CommitCustomize() (schema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil, ErrNoDraft
	}
	s.schema.UpdateComponent(s.draft.ComponentID, s.draft.patch())
	s.draft = nil
	s.selectedID = ""
	s.touch()
	return s.schema.Clone(), nil
}

// CancelCustomize discards the open draft without touching the schema.
func (s *Session) CancelCustomize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
	s.selectedID = ""
	s.touch()
}
