package editor

import "go.uber.org/zap"

// Clipboard provides editor-level clipboard integration. A terminal has
// no drag and drop, so hosts copy a chip's drag payload to the clipboard
// and the author pastes it into the content.
//
// Clipboard failures never reach the UI; they are logged at debug.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	r, ok := m.buf.Selection()
	if !ok {
		return
	}
	if s := m.buf.TextInRange(r); s != "" {
		if err := m.cfg.Clipboard.WriteText(s); err != nil {
			m.logger().Debug("clipboard write failed", zap.Error(err))
		}
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	if _, ok := m.buf.Selection(); !ok {
		return
	}
	m.copySelection()
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.logger().Debug("clipboard read failed", zap.Error(err))
		return
	}
	if s != "" {
		m.buf.InsertText(normalizeNewlines(s))
	}
}
