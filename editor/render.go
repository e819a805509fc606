package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/tmplvars/buffer"
	"github.com/iw2rmb/tmplvars/draft"
)

const noChipsText = "No variables yet"

type cellKind int

const (
	cellText cellKind = iota
	cellToken
	cellSelected
	cellCursor
)

// View renders the content viewport with the suggestion popup on top of
// it, followed by the chip strip and the optional counter.
func (m Model) View() string {
	base := m.viewport.View()
	if p, ok := m.popupLayout(m.layoutText()); ok {
		base = overlay.Composite(p.view(), base, overlay.Left, overlay.Top, p.x, p.y)
	}

	parts := []string{base, m.renderChips().view}
	if m.cfg.ContentLimit > 0 {
		parts = append(parts, m.renderCounter())
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderContent(l textLayout) string {
	if m.buf == nil {
		return ""
	}
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	out := make([]string, 0, len(l.rows))
	for _, vr := range l.rows {
		var (
			sb   strings.Builder
			run  strings.Builder
			kind = cellText
		)
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(m.cellStyle(kind).Render(run.String()))
				run.Reset()
			}
		}
		for i := vr.start; i < vr.end; i++ {
			p := buffer.Pos{Row: vr.row, GraphemeCol: i}
			k := cellText
			switch {
			case m.focused && p == cursor:
				k = cellCursor
			case selOK && inRange(sel, p):
				k = cellSelected
			case l.tokens[vr.row][i]:
				k = cellToken
			}
			if k != kind {
				flush()
				kind = k
			}
			cl := l.lines[vr.row][i]
			if cl == "\t" {
				cl = strings.Repeat(" ", l.widths[vr.row][i])
			}
			run.WriteString(cl)
		}
		flush()
		if vr.last && m.focused && cursor.Row == vr.row && cursor.GraphemeCol == vr.end {
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m Model) cellStyle(k cellKind) lipgloss.Style {
	switch k {
	case cellCursor:
		return m.cfg.Style.Cursor
	case cellSelected:
		return m.cfg.Style.Selection
	case cellToken:
		return m.cfg.Style.Placeholder
	default:
		return m.cfg.Style.Text
	}
}

func inRange(r buffer.Range, p buffer.Pos) bool {
	return buffer.ComparePos(p, r.Start) >= 0 && buffer.ComparePos(p, r.End) < 0
}

// chipHit is the cell span of one rendered chip on the chip strip.
type chipHit struct {
	name  string
	start int
	end   int
}

type chipStrip struct {
	view string
	hits []chipHit
}

func (m Model) renderChips() chipStrip {
	var (
		parts []string
		hits  []chipHit
		x     int
	)
	for chip := range m.vars.Chips() {
		if len(parts) > 0 {
			x++ // separator
		}
		s := m.cfg.Style.chipStyle(chip.Type).Render(chip.Token)
		w := lipgloss.Width(s)
		hits = append(hits, chipHit{name: chip.Name, start: x, end: x + w})
		parts = append(parts, s)
		x += w
	}
	if len(parts) == 0 {
		return chipStrip{view: m.cfg.Style.NoChips.Render(noChipsText)}
	}

	view := strings.Join(parts, " ")
	if m.viewport.Width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.viewport.Width).Render(view)
	}
	return chipStrip{view: view, hits: hits}
}

func (m Model) chipAt(x int) (string, bool) {
	for _, h := range m.renderChips().hits {
		if x >= h.start && x < h.end {
			return h.name, true
		}
	}
	return "", false
}

func (m Model) renderCounter() string {
	if m.buf == nil {
		return ""
	}
	text := m.buf.Text()
	st := m.cfg.Style.Counter
	if draft.Length(text) > m.cfg.ContentLimit {
		st = m.cfg.Style.CounterOver
	}
	return st.Render(draft.Counter(text, m.cfg.ContentLimit))
}
