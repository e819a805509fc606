package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Save key.Binding
	Quit key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Add            key.Binding
	Remove         key.Binding
	Rename         key.Binding
	CycleType      key.Binding
	ToggleRequired key.Binding
	Insert         key.Binding
	Copy           key.Binding
	Cancel         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		Up:    key.NewBinding(key.WithKeys("up", "k")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Left:  key.NewBinding(key.WithKeys("left", "h")),
		Right: key.NewBinding(key.WithKeys("right", "l")),

		Add:            key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Remove:         key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Rename:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "rename")),
		CycleType:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "type")),
		ToggleRequired: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "required")),
		Insert:         key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Copy:           key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy token")),
		Cancel:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
