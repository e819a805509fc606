package editor

import (
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/tmplvars/buffer"
	"github.com/iw2rmb/tmplvars/placeholder"
)

// visualRow is one screen row of a logical line: clusters [start, end).
type visualRow struct {
	row   int
	start int
	end   int
	last  bool
}

// textLayout maps buffer positions to soft-wrapped screen cells.
type textLayout struct {
	lines  [][]string
	widths [][]int
	tokens [][]bool
	rows   []visualRow
}

func (m Model) layoutText() textLayout {
	if m.buf == nil {
		return textLayout{}
	}
	// One column stays free for the cursor at the end of a full row.
	wrapAt := m.viewport.Width - 1
	if wrapAt <= 0 {
		wrapAt = int(^uint(0) >> 1)
	}

	n := m.buf.LineCount()
	l := textLayout{
		lines:  make([][]string, n),
		widths: make([][]int, n),
		tokens: make([][]bool, n),
	}
	for row := range n {
		clusters := m.buf.LineClusters(row)
		widths := make([]int, len(clusters))
		for i, cl := range clusters {
			widths[i] = clusterWidth(cl, m.cfg.TabWidth)
		}
		l.lines[row] = clusters
		l.widths[row] = widths
		l.tokens[row] = tokenMask(clusters)
		l.rows = append(l.rows, wrapLine(row, widths, wrapAt)...)
	}
	return l
}

func clusterWidth(cl string, tabWidth int) int {
	if cl == "\t" {
		return tabWidth
	}
	return max(runewidth.StringWidth(cl), 1)
}

func wrapLine(row int, widths []int, wrapAt int) []visualRow {
	var out []visualRow
	start, used := 0, 0
	for i, w := range widths {
		if used+w > wrapAt && i > start {
			out = append(out, visualRow{row: row, start: start, end: i})
			start, used = i, 0
		}
		used += w
	}
	return append(out, visualRow{row: row, start: start, end: len(widths), last: true})
}

// tokenMask marks the clusters that belong to a closed placeholder.
func tokenMask(clusters []string) []bool {
	mask := make([]bool, len(clusters))
	if len(clusters) == 0 {
		return mask
	}
	byteStarts := make([]int, len(clusters)+1)
	text := ""
	for i, cl := range clusters {
		byteStarts[i] = len(text)
		text += cl
	}
	byteStarts[len(clusters)] = len(text)

	i := 0
	for _, ref := range placeholder.Scan(text) {
		for i < len(clusters) && byteStarts[i] < ref.Start {
			i++
		}
		for j := i; j < len(clusters) && byteStarts[j] < ref.End; j++ {
			mask[j] = true
		}
	}
	return mask
}

// screenPos returns the content cell of p, before viewport scrolling.
func (l textLayout) screenPos(p buffer.Pos) (x, y int, ok bool) {
	for y, vr := range l.rows {
		if vr.row != p.Row {
			continue
		}
		if p.GraphemeCol < vr.start {
			continue
		}
		if p.GraphemeCol < vr.end || (vr.last && p.GraphemeCol == vr.end) {
			x := 0
			for i := vr.start; i < p.GraphemeCol; i++ {
				x += l.widths[vr.row][i]
			}
			return x, y, true
		}
	}
	return 0, 0, false
}

// screenToPos returns the buffer position under content cell (x, y).
func (l textLayout) screenToPos(x, y int) buffer.Pos {
	if len(l.rows) == 0 {
		return buffer.Pos{}
	}
	y = min(max(y, 0), len(l.rows)-1)
	vr := l.rows[y]
	used := 0
	for i := vr.start; i < vr.end; i++ {
		w := l.widths[vr.row][i]
		if x < used+w {
			return buffer.Pos{Row: vr.row, GraphemeCol: i}
		}
		used += w
	}
	col := vr.end
	if !vr.last && col > vr.start {
		col--
	}
	return buffer.Pos{Row: vr.row, GraphemeCol: col}
}
