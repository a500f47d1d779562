package schema

import (
	"errors"
	"math"
	"strconv"

	"github.com/google/uuid"
)

var (
	ErrRowOutOfRange    = errors.New("row index out of range")
	ErrColumnOutOfRange = errors.New("column index out of range")
)

// AppendComponent adds c as a new single-component row at the end of the
// schema. A missing or colliding id is replaced here so every component
// entering the schema through this path is uniquely addressable.
func (s *Schema) AppendComponent(c Component) {
	s.ensureUniqueID(&c)
	c.Width = widthForCount(1)
	*s = append(*s, Row{c})
}

// InsertRowAt inserts c as a new single-component row at index, clamped into
// [0, len]. Used when a drag-drop delivers a component at a specific vertical
// position.
func (s *Schema) InsertRowAt(c Component, index int) {
	s.ensureUniqueID(&c)
	c.Width = widthForCount(1)

	if index < 0 {
		index = 0
	}
	if index > len(*s) {
		index = len(*s)
	}

	rows := *s
	rows = append(rows, Row{})
	copy(rows[index+1:], rows[index:])
	rows[index] = Row{c}
	*s = rows
}

// InsertInlineComponent appends c to the end of the row at rowIndex and
// redistributes widths across the whole row.
func (s *Schema) InsertInlineComponent(c Component, rowIndex int) error {
	if rowIndex < 0 || rowIndex >= len(*s) {
		return ErrRowOutOfRange
	}

	s.ensureUniqueID(&c)
	row := append((*s)[rowIndex], c)
	(*s)[rowIndex] = normalizeRowWidths(row)
	return nil
}

// UpdateComponent merges patch into the component with the given id. Returns
// false when no component matches; stale ids are a silent no-op for callers.
func (s Schema) UpdateComponent(id string, patch Patch) bool {
	for ri := range s {
		for ci := range s[ri] {
			if s[ri][ci].ID != id {
				continue
			}
			applyPatch(&s[ri][ci], patch)
			return true
		}
	}
	return false
}

// RemoveComponent deletes the component with the given id. A row emptied by
// the removal is pruned immediately; remaining members of a shrunk row get
// their widths recomputed.
func (s *Schema) RemoveComponent(id string) bool {
	for ri := range *s {
		for ci := range (*s)[ri] {
			if (*s)[ri][ci].ID != id {
				continue
			}

			row := (*s)[ri]
			row = append(row[:ci], row[ci+1:]...)
			if len(row) == 0 {
				*s = append((*s)[:ri], (*s)[ri+1:]...)
			} else {
				(*s)[ri] = normalizeRowWidths(row)
			}
			return true
		}
	}
	return false
}

// MoveRow removes the row at sourceIndex and reinserts it so it lands at
// visual position destIndex.
func (s *Schema) MoveRow(sourceIndex, destIndex int) error {
	if sourceIndex < 0 || sourceIndex >= len(*s) {
		return ErrRowOutOfRange
	}
	if destIndex < 0 || destIndex >= len(*s) {
		return ErrRowOutOfRange
	}

	rows := *s
	moved := rows[sourceIndex]
	rows = append(rows[:sourceIndex], rows[sourceIndex+1:]...)

	rows = append(rows, Row{})
	copy(rows[destIndex+1:], rows[destIndex:])
	rows[destIndex] = moved
	*s = rows
	return nil
}

// ReorderWithinRow splices the component at sourceCol to destCol inside one
// row, then recomputes the row's widths.
func (s Schema) ReorderWithinRow(rowIndex, sourceCol, destCol int) error {
	if rowIndex < 0 || rowIndex >= len(s) {
		return ErrRowOutOfRange
	}
	row := s[rowIndex]
	if sourceCol < 0 || sourceCol >= len(row) {
		return ErrColumnOutOfRange
	}
	if destCol < 0 || destCol >= len(row) {
		return ErrColumnOutOfRange
	}

	moved := row[sourceCol]
	row = append(row[:sourceCol], row[sourceCol+1:]...)

	row = append(row, Component{})
	copy(row[destCol+1:], row[destCol:])
	row[destCol] = moved

	s[rowIndex] = normalizeRowWidths(row)
	return nil
}

// FindComponent returns a copy of the component with the given id.
func (s Schema) FindComponent(id string) (Component, bool) {
	for _, row := range s {
		for _, c := range row {
			if c.ID == id {
				return c.Clone(), true
			}
		}
	}
	return Component{}, false
}

// ComponentCount returns the total number of components across all rows.
func (s Schema) ComponentCount() int {
	n := 0
	for _, row := range s {
		n += len(row)
	}
	return n
}

func applyPatch(c *Component, patch Patch) {
	if patch.Label != nil {
		c.Label = *patch.Label
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.ClassName != nil {
		c.ClassName = *patch.ClassName
	}
	if patch.Placeholder != nil {
		c.Placeholder = *patch.Placeholder
	}
	if patch.Required != nil {
		c.Required = *patch.Required
	}
	if patch.Options != nil {
		options := make([]Option, len(*patch.Options))
		copy(options, *patch.Options)
		c.Options = options
	}
	if patch.Height != nil {
		c.Height = *patch.Height
	}
	if patch.ShowLabel != nil {
		show := *patch.ShowLabel
		c.ShowLabel = &show
	}
}

// normalizeRowWidths is the single routine that writes component widths.
// Every mutation that changes row membership goes through it.
func normalizeRowWidths(row Row) Row {
	width := widthForCount(len(row))
	for i := range row {
		row[i].Width = width
	}
	return row
}

func widthForCount(n int) string {
	if n <= 1 {
		return "100%"
	}
	w := 100.0 / float64(n)
	if w == math.Trunc(w) {
		return strconv.Itoa(int(w)) + "%"
	}
	return strconv.FormatFloat(w, 'f', 2, 64) + "%"
}

// ensureUniqueID assigns a fresh id when c arrives without one or with an id
// a component in the schema already holds. A duplicate id would leave one of
// the two unaddressable by every id-keyed operation.
func (s Schema) ensureUniqueID(c *Component) {
	for c.ID == "" || s.containsID(c.ID) {
		c.ID = uuid.New().String()
	}
}

func (s Schema) containsID(id string) bool {
	for _, row := range s {
		for _, existing := range row {
			if existing.ID == id {
				return true
			}
		}
	}
	return false
}
