package editor

import (
	"slices"

	"github.com/iw2rmb/tmplvars/placeholder"
	"github.com/iw2rmb/tmplvars/variables"
)

// SuggestionState is the autocomplete popup state. It is rebuilt from the
// buffer on every edit or caret move.
//
// Hidden state is ActiveIndex == -1 with no candidates.
type SuggestionState struct {
	ActiveIndex int
	Candidates  []variables.Variable

	// Span is the open "{#partial" run the candidates were matched
	// against.
	Span placeholder.Span
}

func hiddenSuggestions() SuggestionState {
	return SuggestionState{ActiveIndex: -1}
}

func (s SuggestionState) Visible() bool {
	return len(s.Candidates) > 0 && s.ActiveIndex >= 0 && s.ActiveIndex < len(s.Candidates)
}

// Active returns the highlighted candidate.
func (s SuggestionState) Active() (variables.Variable, bool) {
	if !s.Visible() {
		return variables.Variable{}, false
	}
	return s.Candidates[s.ActiveIndex], true
}

func (s SuggestionState) step(delta int) SuggestionState {
	n := len(s.Candidates)
	if n == 0 {
		return hiddenSuggestions()
	}
	s.ActiveIndex = ((s.ActiveIndex+delta)%n + n) % n
	return s
}

func cloneSuggestionState(s SuggestionState) SuggestionState {
	s.Candidates = slices.Clone(s.Candidates)
	return s
}

// ComputeSuggestions derives the popup state for text with the caret at
// grapheme offset caret. Candidates are the named variables whose name
// starts with the open placeholder's partial text, case-insensitively, in
// insertion order and capped at limit (<= 0 means 8).
func ComputeSuggestions(vars *variables.List, text string, caret, limit int) SuggestionState {
	span, ok := placeholder.OpenBeforeText(text, caret)
	if !ok {
		return hiddenSuggestions()
	}
	return suggestionsForSpan(vars, span, limit)
}

func suggestionsForSpan(vars *variables.List, span placeholder.Span, limit int) SuggestionState {
	if vars == nil {
		return hiddenSuggestions()
	}
	if limit <= 0 {
		limit = defaultMaxSuggestions
	}
	candidates := vars.Match(span.Partial, limit)
	if len(candidates) == 0 {
		return hiddenSuggestions()
	}
	return SuggestionState{ActiveIndex: 0, Candidates: candidates, Span: span}
}
