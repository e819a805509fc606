package buffer

// Offsets count grapheme clusters from the start of the document, with
// each line break counting as one cluster. They are the caret values the
// placeholder scanner and host text surfaces work in.

// Offset returns the grapheme offset of p. p is clamped first.
func (b *Buffer) Offset(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + p.GraphemeCol
}

// PosAt returns the position of grapheme offset off, clamped into the
// document.
func (b *Buffer) PosAt(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, GraphemeCol: off}
		}
		off -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: b.lineLen(last)}
}

// Len returns the document length in grapheme offsets.
func (b *Buffer) Len() int {
	last := len(b.lines) - 1
	return b.Offset(Pos{Row: last, GraphemeCol: b.lineLen(last)})
}

// ClustersBefore returns the clusters preceding p in document order, with
// "\n" standing for each line break.
func (b *Buffer) ClustersBefore(p Pos) []string {
	p = b.clampPos(p)
	out := make([]string, 0, b.Offset(p))
	for row := 0; row < p.Row; row++ {
		out = append(out, b.lines[row]...)
		out = append(out, "\n")
	}
	return append(out, b.lines[p.Row][:p.GraphemeCol]...)
}

// SelectOffsets selects the grapheme offset range [start, end).
func (b *Buffer) SelectOffsets(start, end int) {
	b.SetSelection(Range{Start: b.PosAt(start), End: b.PosAt(end)})
}

// SetCursorOffset moves the cursor to grapheme offset off.
func (b *Buffer) SetCursorOffset(off int) {
	b.SetCursor(b.PosAt(off))
}
