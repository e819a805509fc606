package buffer

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, extends the selection; if false clears it
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	next := b.clampPos(b.moveCursor(prevCursor, m))

	// Collapsing a selection with left/right lands on its edge.
	if !m.Extend && (m.Dir == DirLeft || m.Dir == DirRight) && m.Unit == MoveGrapheme {
		if r, ok := b.Selection(); ok {
			next = r.Start
			if m.Dir == DirRight {
				next = r.End
			}
		}
	}

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && selectionStateEqual(prevSel, nextSel) {
		return
	}
	b.cursor = next
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		last := len(b.lines) - 1
		switch m.Dir {
		case DirHome, DirUp, DirLeft:
			return Pos{}
		default:
			return Pos{Row: last, GraphemeCol: b.lineLen(last)}
		}
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		if p.GraphemeCol > 0 {
			return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol - 1}
		}
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, GraphemeCol: b.lineLen(p.Row - 1)}
		}
	case DirRight:
		if p.GraphemeCol < b.lineLen(p.Row) {
			return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol + 1}
		}
		if p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1}
		}
	case DirUp, DirDown, DirHome, DirEnd:
		return b.moveLine(p, dir)
	}
	return p
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirUp:
		if p.Row == 0 {
			return Pos{}
		}
		return Pos{Row: p.Row - 1, GraphemeCol: p.GraphemeCol}
	case DirDown:
		if p.Row >= len(b.lines)-1 {
			return Pos{Row: p.Row, GraphemeCol: b.lineLen(p.Row)}
		}
		return Pos{Row: p.Row + 1, GraphemeCol: p.GraphemeCol}
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, GraphemeCol: b.lineLen(p.Row)}
	default:
		return b.moveGrapheme(p, dir)
	}
}
