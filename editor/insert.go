package editor

import (
	"strings"

	"go.uber.org/zap"

	"github.com/iw2rmb/tmplvars/placeholder"
	"github.com/iw2rmb/tmplvars/variables"
)

// InsertPlaceholder replaces the selection (or inserts at the caret) with
// the `{#name#}` token for name and leaves the caret after it. The name
// is not checked against the variable list.
func (m Model) InsertPlaceholder(name string) (Model, error) {
	if m.buf == nil {
		m.logger().Warn("insert placeholder on editor without buffer", zap.String("name", name))
		return m, ErrNoBuffer
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return m, ErrEmptyName
	}

	m.buf.InsertText(placeholder.Token(name))
	m.suggest = hiddenSuggestions()
	m.syncFromBuffer()
	return m, nil
}

// InsertVariable inserts the placeholder for the variable row id.
func (m Model) InsertVariable(id variables.ID) (Model, error) {
	v, ok := m.vars.Get(id)
	if !ok || !v.Named() {
		return m, ErrEmptyName
	}
	return m.InsertPlaceholder(v.Name)
}

// ClickChip handles a click on the chip for name.
func (m Model) ClickChip(name string) (Model, error) {
	return m.InsertPlaceholder(name)
}

// DropText inserts dropped text, typically a chip's drag payload, at the
// caret.
func (m Model) DropText(text string) Model {
	if m.buf == nil {
		m.logger().Warn("drop on editor without buffer")
		return m
	}
	m.buf.InsertText(text)
	m.syncFromBuffer()
	m.suggest = hiddenSuggestions()
	return m
}

// CommitSuggestion replaces the open "{#partial" before the caret with
// the token of candidate i and hides the popup. Out-of-range indices are
// ignored.
func (m Model) CommitSuggestion(i int) Model {
	if !m.suggest.Visible() || i < 0 || i >= len(m.suggest.Candidates) {
		return m
	}
	name := m.suggest.Candidates[i].Name

	// The span is re-read from the buffer; without an open tag the token
	// goes in at the caret.
	if span, ok := placeholder.OpenBefore(m.buf.ClustersBefore(m.buf.Cursor())); ok {
		m.buf.SelectOffsets(span.Start, span.End)
	}
	m.logger().Debug("suggestion committed", zap.String("variable", name), zap.Int("index", i))

	m, _ = m.InsertPlaceholder(name)
	m.suggest = hiddenSuggestions()
	return m
}

func (m Model) commitActive() Model {
	i := m.suggest.ActiveIndex
	if i < 0 {
		i = 0
	}
	return m.CommitSuggestion(i)
}
