package editor

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tmplvars/variables"
)

// Style controls the editor's rendering.
type Style struct {
	Text        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style

	Chip      lipgloss.Style
	ChipTypes map[variables.Type]lipgloss.Style
	NoChips   lipgloss.Style

	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style
	SuggestionType     lipgloss.Style

	Counter     lipgloss.Style
	CounterOver lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return Style{
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),

		Chip: lipgloss.NewStyle().Padding(0, 1),
		ChipTypes: map[variables.Type]lipgloss.Style{
			variables.TypeString:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			variables.TypeInteger: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			variables.TypeFloat:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			variables.TypeDate:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
			variables.TypeTime:    lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
			variables.TypeBoolean: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			variables.TypeEmail:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
			variables.TypePhone:   lipgloss.NewStyle().Foreground(lipgloss.Color("43")),
		},
		NoChips: muted.Italic(true),

		Suggestion:         lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		SuggestionSelected: lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("255")),
		SuggestionType:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Counter:     muted,
		CounterOver: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

func (st Style) isZero() bool { return reflect.DeepEqual(st, Style{}) }

func (st Style) chipStyle(t variables.Type) lipgloss.Style {
	if typed, ok := st.ChipTypes[t]; ok {
		return typed.Inherit(st.Chip)
	}
	return st.Chip
}
