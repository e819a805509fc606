package editor

import (
	"iter"

	"go.uber.org/zap"

	"github.com/iw2rmb/tmplvars/variables"
)

// AddVariable appends an empty string-typed variable row.
func (m Model) AddVariable() (Model, variables.ID) {
	if m.vars == nil {
		m.vars = variables.NewList()
	}
	id := m.vars.Add()
	m.logger().Debug("variable added", zap.Uint64("id", uint64(id)))
	m.refreshCandidates()
	return m, id
}

// RemoveVariable deletes the row id. Placeholders already in the text
// are left alone.
func (m Model) RemoveVariable(id variables.ID) Model {
	if m.vars.Remove(id) {
		m.logger().Debug("variable removed", zap.Uint64("id", uint64(id)))
	}
	m.refreshCandidates()
	return m
}

func (m Model) UpdateVariable(id variables.ID, p variables.Patch) Model {
	m.vars.Update(id, p)
	m.refreshCandidates()
	return m
}

// Chips yields the chips for the current variable list.
func (m Model) Chips() iter.Seq[variables.Chip] {
	return m.vars.Chips()
}

// Schema returns the variable_schema mapping for the current list.
func (m Model) Schema() variables.Schema {
	return m.vars.Schema()
}

// refreshCandidates rematches a visible popup so renamed or removed
// variables do not linger in it. A hidden popup stays hidden.
func (m *Model) refreshCandidates() {
	if !m.suggest.Visible() {
		return
	}
	active, _ := m.suggest.Active()
	m.suggest = suggestionsForSpan(m.vars, m.suggest.Span, m.cfg.MaxSuggestions)
	for i, c := range m.suggest.Candidates {
		if c.ID == active.ID {
			m.suggest.ActiveIndex = i
			break
		}
	}
}
