package variables

import (
	"maps"
	"slices"
)

// Field is the per-variable entry of a template's variable_schema.
type Field struct {
	Type     Type `json:"type"`
	Required bool `json:"required"`
}

// Schema maps variable names to their declared type and requiredness.
type Schema map[string]Field

// Schema returns the mapping for the named variables, or nil when there
// are none. A later row wins over an earlier row with the same name.
func (l *List) Schema() Schema {
	var s Schema
	for v := range l.Named() {
		if s == nil {
			s = make(Schema)
		}
		s[v.Name] = Field{Type: v.Type, Required: v.Required}
	}
	return s
}

// FromSchema rebuilds a List from a stored schema, ordered by name.
func FromSchema(s Schema) *List {
	l := NewList()
	for _, name := range slices.Sorted(maps.Keys(s)) {
		f := s[name]
		id := l.Add()
		l.Update(id, Patch{Name: &name, Type: &f.Type, Required: &f.Required})
	}
	return l
}
