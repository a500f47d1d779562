package schema

import "reflect"

// Clone returns an independent deep copy of the schema. Snapshots stored in
// the chat ledger must never alias the live schema.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	out := make(Schema, len(s))
	for i, row := range s {
		cloned := make(Row, len(row))
		for j, c := range row {
			cloned[j] = c.Clone()
		}
		out[i] = cloned
	}
	return out
}

// Clone returns a deep copy of the component. An empty options slice is
// canonicalized to nil; JSON round trips cannot tell the two apart.
func (c Component) Clone() Component {
	out := c
	if len(c.Options) > 0 {
		out.Options = make([]Option, len(c.Options))
		copy(out.Options, c.Options)
	} else {
		out.Options = nil
	}
	if c.ShowLabel != nil {
		show := *c.ShowLabel
		out.ShowLabel = &show
	}
	return out
}

// Equal reports structural equality between two schemas. Used by the
// ledger's "is this the version currently on screen" annotation. Nil and
// empty slices compare equal, as do an absent showLabel flag and an explicit
// true; both render identically.
func Equal(a, b Schema) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !componentsEqual(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

func componentsEqual(a, b Component) bool {
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if a.Options[i] != b.Options[i] {
			return false
		}
	}
	if a.ShowsLabel() != b.ShowsLabel() {
		return false
	}
	// The remaining fields are plain values; blank the compared-above ones
	// and let the struct comparison cover the rest.
	a.Options, b.Options = nil, nil
	a.ShowLabel, b.ShowLabel = nil, nil
	return reflect.DeepEqual(a, b)
}
