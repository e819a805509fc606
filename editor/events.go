package editor

import (
	"github.com/iw2rmb/tmplvars/buffer"
	"github.com/iw2rmb/tmplvars/draft"
)

// ChangeEvent is passed to Config.OnChange after every buffer version bump.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Offset      int

	Selection    buffer.Range
	HasSelection bool

	// Edit is the latest text mutation; its Version lags Version when the
	// event was raised by a caret or selection move.
	Edit buffer.Edit

	Text   string
	Length int

	// Counter is the "length/limit" label, empty without a content limit.
	Counter string
}

func buildChangeEvent(b *buffer.Buffer, limit int) ChangeEvent {
	text := b.Text()
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Offset:      b.Offset(b.Cursor()),
		Text:        text,
		Length:      draft.Length(text),
	}
	ev.Selection, ev.HasSelection = b.Selection()
	ev.Edit, _ = b.LastEdit()
	if limit > 0 {
		ev.Counter = draft.Counter(text, limit)
	}
	return ev
}

func (m *Model) emitChange() {
	if m.cfg.OnChange == nil || m.buf == nil {
		return
	}
	m.cfg.OnChange(buildChangeEvent(m.buf, m.cfg.ContentLimit))
}
