package buffer

// Edit is the most recent text mutation. Undo and redo record the whole
// document as replaced.
type Edit struct {
	Version  uint64
	Before   Range
	After    Range
	Inserted string
	Deleted  string
}

// LastEdit returns the most recent effective text change.
func (b *Buffer) LastEdit() (Edit, bool) {
	return b.lastEdit, b.lastEdit.Version != 0
}

func (b *Buffer) recordEdit(e Edit) {
	e.Version = b.version
	b.lastEdit = e
}
