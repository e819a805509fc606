package variables

import (
	"iter"

	"github.com/iw2rmb/tmplvars/placeholder"
)

// Chip is the display form of one named variable.
type Chip struct {
	ID    ID
	Name  string
	Type  Type
	Token string
}

// StyleKey tags the chip with its type for host styling.
func (c Chip) StyleKey() string { return "var." + string(c.Type) }

// DragPayload is the text a host transfers when the chip is dragged.
func (c Chip) DragPayload() string { return c.Token }

// Chips yields one chip per named variable. The sequence reads the list
// each time it is ranged over.
func (l *List) Chips() iter.Seq[Chip] {
	return func(yield func(Chip) bool) {
		for v := range l.Named() {
			chip := Chip{ID: v.ID, Name: v.Name, Type: v.Type, Token: placeholder.Token(v.Name)}
			if !yield(chip) {
				return
			}
		}
	}
}
