package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/tmplvars/variables"
)

const (
	defaultMaxSuggestions = 8
	defaultPopupMaxWidth  = 40
	defaultTabWidth       = 4
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Variables is the list the editor reads chips and candidates from.
	// Nil means a fresh empty list owned by the editor.
	Variables *variables.List

	// MaxSuggestions caps the candidate list. <= 0 means 8.
	MaxSuggestions int

	// ContentLimit is shown by the character counter. <= 0 hides it.
	ContentLimit int

	PopupMaxWidth int
	TabWidth      int

	Style            Style
	KeyMap           KeyMap
	SuggestionKeyMap SuggestionKeyMap

	// Clipboard backs the copy, cut and paste keys. Nil disables them.
	Clipboard Clipboard

	// Forwarded to buffer.Options.
	HistoryLimit int

	// OnChange is called after any buffer change: text, cursor or
	// selection.
	OnChange func(ChangeEvent)

	Logger *zap.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = defaultMaxSuggestions
	}
	if cfg.PopupMaxWidth <= 0 {
		cfg.PopupMaxWidth = defaultPopupMaxWidth
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.Style.isZero() {
		cfg.Style = DefaultStyle()
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.SuggestionKeyMap.isZero() {
		cfg.SuggestionKeyMap = DefaultSuggestionKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
