package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tmplvars/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if tea.MouseEvent(msg).IsWheel() {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused || m.buf == nil {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		l := m.layoutText()
		if p, ok := m.popupLayout(l); ok {
			if i, hit := p.contains(msg.X, msg.Y); hit {
				return m.CommitSuggestion(i), nil
			}
		}
		if msg.Y == m.viewport.Height {
			if name, ok := m.chipAt(msg.X); ok {
				m, _ = m.ClickChip(name)
			}
			return m, nil
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}

		p := l.screenToPos(msg.X, msg.Y+m.viewport.YOffset)
		if msg.Shift {
			anchor := m.buf.Cursor()
			if r, ok := m.buf.Selection(); ok {
				anchor = r.Start
			}
			m.mouseAnchor = anchor
			m.buf.SetSelection(buffer.Range{Start: anchor, End: p})
		} else {
			m.mouseAnchor = p
			m.buf.SetCursor(p)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p := m.layoutText().screenToPos(x, y+m.viewport.YOffset)
		m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	m.syncFromBuffer()
	return m, nil
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = min(max(x, 0), m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = min(max(y, 0), m.viewport.Height-1)
	}
	return x, y
}
