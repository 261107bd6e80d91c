package field

import (
	"net/url"
	"slices"
)

// Set is an ordered, in-memory collection of fields. It implements Accessor.
type Set struct {
	fields []Field
}

// NewSet builds a set preserving the given order.
func NewSet(fields ...Field) *Set {
	return &Set{fields: slices.Clone(fields)}
}

// Select returns the fields matching selector.
func (s *Set) Select(selector string) ([]Field, error) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	return sel.Filter(s.fields), nil
}

// Fields returns a copy of every field in the set.
func (s *Set) Fields() []Field {
	return slices.Clone(s.fields)
}

// Len returns the number of fields in the set.
func (s *Set) Len() int {
	return len(s.fields)
}

// Lookup returns the first field with the given id.
func (s *Set) Lookup(id string) (Field, bool) {
	for _, f := range s.fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// FromForm builds a set from submitted form values. Keys are visited in
// sorted order; a key with several values contributes one field per value.
// A key without values contributes one empty field so required checks still
// see it.
func FromForm(values url.Values, labels Labels) *Set {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		label := labels.For(k)
		vals := values[k]
		if len(vals) == 0 {
			fields = append(fields, Field{ID: k, Label: label})
			continue
		}
		for _, v := range vals {
			fields = append(fields, Field{ID: k, Label: label, Value: v})
		}
	}
	return &Set{fields: fields}
}
