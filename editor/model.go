package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/tmplvars/buffer"
	"github.com/iw2rmb/tmplvars/placeholder"
	"github.com/iw2rmb/tmplvars/variables"
)

// Model is a Bubble Tea component for editing template content with
// variable placeholders.
//
// Model is a value type like other Bubble Tea components; the buffer and
// the variable list are shared pointers, so copies observe each other's
// document and variable edits but keep their own suggestion state.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	vars *variables.List
	log  *zap.Logger

	focused bool
	suggest SuggestionState

	viewport viewport.Model

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	vars := cfg.Variables
	if vars == nil {
		vars = variables.NewList()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		vars:     vars,
		log:      cfg.Logger,
		focused:  true,
		suggest:  hiddenSuggestions(),
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Variables() *variables.List { return m.vars }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the total area of the component. The last rows are taken
// by the chip strip and, when a content limit is configured, the counter.
func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height-m.chromeHeight(), 0)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

// Blur drops focus and hides the suggestion popup.
func (m Model) Blur() Model {
	m.suggest = hiddenSuggestions()
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) SuggestionState() SuggestionState {
	if !m.suggest.Visible() {
		return hiddenSuggestions()
	}
	return cloneSuggestionState(m.suggest)
}

// BufferChanged recomputes the suggestion state from the buffer text and
// caret. Hosts that mutate the buffer directly call it after each change;
// keys handled by Update call it implicitly.
func (m Model) BufferChanged() Model {
	if m.buf == nil {
		m.logger().Warn("buffer changed on editor without buffer")
		return m
	}
	m.recomputeSuggestions()
	m.syncFromBuffer()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// Pick up host mutations made outside of the editor.
		m.syncFromBuffer()
		return m, nil
	}
}

func (m Model) logger() *zap.Logger {
	if m.log == nil {
		return zap.NewNop()
	}
	return m.log
}

func (m Model) chromeHeight() int {
	h := 1 // chip strip
	if m.cfg.ContentLimit > 0 {
		h++
	}
	return h
}

// syncFromBuffer refreshes derived state after the buffer version moved
// and reports whether it did.
func (m *Model) syncFromBuffer() bool {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	m.lastBufVersion = ver
	m.recomputeSuggestions()
	m.rebuildContent()
	m.followCursor()
	m.emitChange()
	return true
}

func (m *Model) recomputeSuggestions() {
	if m.buf == nil {
		m.suggest = hiddenSuggestions()
		return
	}
	clusters := m.buf.ClustersBefore(m.buf.Cursor())
	span, ok := placeholder.OpenBefore(clusters)
	if !ok {
		m.suggest = hiddenSuggestions()
		return
	}
	m.suggest = suggestionsForSpan(m.vars, span, m.cfg.MaxSuggestions)
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent(m.layoutText()))
}

func (m *Model) followCursor() {
	if m.buf == nil || m.viewport.Height <= 0 {
		return
	}
	_, y, ok := m.layoutText().screenPos(m.buf.Cursor())
	if !ok {
		return
	}
	top := m.viewport.YOffset
	switch {
	case y < top:
		m.viewport.SetYOffset(y)
	case y >= top+m.viewport.Height:
		m.viewport.SetYOffset(y - m.viewport.Height + 1)
	}
}
