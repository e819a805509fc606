package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/tmplvars/variables"
)

// popup is the placed suggestion list in viewport cells.
type popup struct {
	x, y  int
	width int
	first int // candidate index of the first row
	rows  []string
}

func (p popup) view() string { return strings.Join(p.rows, "\n") }

// contains reports the candidate index under viewport cell (x, y).
func (p popup) contains(x, y int) (int, bool) {
	if x < p.x || x >= p.x+p.width || y < p.y || y >= p.y+len(p.rows) {
		return 0, false
	}
	return p.first + y - p.y, true
}

func (m Model) popupLayout(l textLayout) (popup, bool) {
	s := m.suggest
	if !s.Visible() || m.buf == nil || !m.focused {
		return popup{}, false
	}
	vw, vh := m.viewport.Width, m.viewport.Height
	if vw <= 0 || vh <= 0 {
		return popup{}, false
	}

	ax, ay, ok := l.screenPos(m.buf.PosAt(s.Span.Start))
	if !ok {
		return popup{}, false
	}
	ay -= m.viewport.YOffset
	if ay < 0 || ay >= vh {
		return popup{}, false
	}

	want := len(s.Candidates)
	below := vh - (ay + 1)
	above := ay
	n, showBelow := want, true
	if n > below {
		switch {
		case above >= n:
			showBelow = false
		case above > below:
			showBelow, n = false, above
		default:
			n = below
		}
	}
	if n <= 0 {
		return popup{}, false
	}

	// Keep the active row inside the window.
	first := 0
	if s.ActiveIndex >= n {
		first = s.ActiveIndex - n + 1
	}

	width := 0
	for _, v := range s.Candidates[first : first+n] {
		width = max(width, rowWidth(v))
	}
	width = min(width, m.cfg.PopupMaxWidth, vw)
	if width <= 0 {
		return popup{}, false
	}

	rows := make([]string, 0, n)
	for i := first; i < first+n; i++ {
		rows = append(rows, m.renderSuggestionRow(s.Candidates[i], i == s.ActiveIndex, width))
	}

	y := ay + 1
	if !showBelow {
		y = ay - n
	}
	x := min(ax, max(vw-width, 0))
	return popup{x: max(x, 0), y: max(y, 0), width: width, first: first, rows: rows}, true
}

// rowWidth is " name type ".
func rowWidth(v variables.Variable) int {
	return runewidth.StringWidth(v.Name) + len(v.Type) + 3
}

func (m Model) renderSuggestionRow(v variables.Variable, active bool, width int) string {
	base := m.cfg.Style.Suggestion
	if active {
		base = m.cfg.Style.SuggestionSelected
	}
	typ := string(v.Type)
	nameW := width - len(typ) - 3
	if nameW < 1 {
		// Too narrow for the type column.
		name := runewidth.Truncate(v.Name, max(width-2, 0), "…")
		return base.Render(runewidth.FillRight(" "+name, width))
	}

	name := runewidth.FillRight(runewidth.Truncate(v.Name, nameW, "…"), nameW)
	return base.Render(" "+name+" ") +
		m.cfg.Style.SuggestionType.Inherit(base).Render(typ) +
		base.Render(" ")
}
