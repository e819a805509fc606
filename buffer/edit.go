package buffer

import (
	"strings"

	"github.com/iw2rmb/tmplvars/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
// The cursor ends up immediately after the inserted text.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// Replace replaces the text in r with s and moves the cursor after s.
// It reports whether the document changed.
func (b *Buffer) Replace(r Range, s string) bool {
	return b.edit(r, s)
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with the previous line.
		b.edit(Range{Start: Pos{Row: row - 1, GraphemeCol: b.lineLen(row - 1)}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col < b.lineLen(row):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	case row < len(b.lines)-1:
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
	}
}

// TextInRange returns the document text covered by r.
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

func (b *Buffer) edit(r Range, text string) bool {
	prev := b.snapshot()

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		b.settleOnUnchanged(r)
		return false
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.recordEdit(applied)
	return true
}

// settleOnUnchanged places the cursor after r when the replacement text
// equals what r already holds, so the caret contract of edit holds even
// though the document is untouched.
func (b *Buffer) settleOnUnchanged(r Range) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	_, hadSel := b.Selection()
	if !hadSel && b.cursor == r.End {
		return
	}
	b.cursor = r.End
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied Edit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := textForLinesRange(b.lines, r)
	if deleted == text {
		return b.cursor, Edit{}, false
	}

	prefix := b.lines[r.Start.Row][:r.Start.GraphemeCol]
	suffix := b.lines[r.End.Row][r.End.GraphemeCol:]

	ins := splitLines(text)
	repl := make([][]string, len(ins))
	for i, part := range ins {
		var line []string
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, part...)
		if i == len(ins)-1 {
			nextCursor = Pos{Row: r.Start.Row + i, GraphemeCol: len(line)}
			line = append(line, suffix...)
		}
		repl[i] = line
	}

	out := make([][]string, 0, len(b.lines)-(r.End.Row-r.Start.Row)+len(repl)-1)
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)
	b.lines = out

	applied = Edit{
		Before:   r,
		After:    Range{Start: r.Start, End: nextCursor},
		Inserted: text,
		Deleted:  deleted,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		line := lines[row]
		from, to := 0, len(line)
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line[from:to]))
	}
	return sb.String()
}
