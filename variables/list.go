package variables

import (
	"iter"
	"slices"
	"strings"
)

// List is the ordered, in-memory variable list of one template draft.
// The zero value is ready to use; a nil *List reads as empty.
type List struct {
	next  ID
	items []Variable
}

func NewList() *List { return &List{} }

// Add appends an empty string-typed variable and returns its ID.
func (l *List) Add() ID {
	l.next++
	l.items = append(l.items, Variable{ID: l.next, Type: TypeString})
	return l.next
}

// Remove deletes the variable with id. Unknown ids are ignored.
func (l *List) Remove(id ID) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// Update applies p to the variable with id. Names are trimmed and types
// are normalized; unknown ids are ignored.
func (l *List) Update(id ID, p Patch) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	v := &l.items[i]
	if p.Name != nil {
		v.Name = strings.TrimSpace(*p.Name)
	}
	if p.Type != nil {
		v.Type = ParseType(string(*p.Type))
	}
	if p.Required != nil {
		v.Required = *p.Required
	}
	return true
}

func (l *List) Get(id ID) (Variable, bool) {
	i := l.index(id)
	if i < 0 {
		return Variable{}, false
	}
	return l.items[i], true
}

// Lookup returns the first named variable called name.
func (l *List) Lookup(name string) (Variable, bool) {
	for v := range l.Named() {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Len counts every row, named or not.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// All returns a copy of every row in insertion order.
func (l *List) All() []Variable {
	if l == nil {
		return nil
	}
	return slices.Clone(l.items)
}

// Named yields the variables with a non-empty name in insertion order.
func (l *List) Named() iter.Seq[Variable] {
	return func(yield func(Variable) bool) {
		if l == nil {
			return
		}
		for _, v := range l.items {
			if v.Named() && !yield(v) {
				return
			}
		}
	}
}

// Reset drops every row. IDs keep increasing across resets.
func (l *List) Reset() { l.items = nil }

// Match returns the named variables whose name starts with partial,
// compared case-insensitively, in insertion order. limit <= 0 means no
// cap.
func (l *List) Match(partial string, limit int) []Variable {
	prefix := strings.ToLower(partial)
	var out []Variable
	for v := range l.Named() {
		if limit > 0 && len(out) == limit {
			break
		}
		if strings.HasPrefix(strings.ToLower(v.Name), prefix) {
			out = append(out, v)
		}
	}
	return out
}

func (l *List) index(id ID) int {
	if l == nil {
		return -1
	}
	return slices.IndexFunc(l.items, func(v Variable) bool { return v.ID == id })
}
