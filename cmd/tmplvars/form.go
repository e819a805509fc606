package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/tmplvars/draft"
	"github.com/iw2rmb/tmplvars/editor"
	"github.com/iw2rmb/tmplvars/internal/config"
	"github.com/iw2rmb/tmplvars/variables"
)

type field int

const (
	fieldTitle field = iota
	fieldCategory
	fieldScope
	fieldVariables
	fieldContent
	fieldCount
)

// headerRows is the number of lines above the variable rows.
const headerRows = 4

var (
	labelStyle   = lipgloss.NewStyle().Width(13).Foreground(lipgloss.Color("245"))
	focusedLabel = labelStyle.Foreground(lipgloss.Color("212")).Bold(true)
	rowSelected  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// categoryOptions starts with the unselected value.
var categoryOptions = append([]draft.Category{""}, draft.Categories...)

// form is the template authoring screen: title, category, class scope,
// variable rows and the content editor.
type form struct {
	log  *zap.Logger
	keys keyMap
	clip editor.Clipboard

	focus    field
	title    textinput.Model
	scope    textinput.Model
	category int

	vars      *variables.List
	row       int
	renaming  bool
	nameInput textinput.Model

	editor editor.Model

	width, height int
	status        string
	saved         *draft.Template
}

func newForm(cfg config.Config, log *zap.Logger, clip editor.Clipboard, initial *draft.Template) form {
	if log == nil {
		log = zap.NewNop()
	}

	f := form{
		log:       log,
		keys:      defaultKeyMap(),
		clip:      clip,
		title:     textinput.New(),
		scope:     textinput.New(),
		nameInput: textinput.New(),
		vars:      variables.NewList(),
	}
	f.title.Prompt = ""
	f.title.Placeholder = "Template title"
	f.scope.Prompt = ""
	f.scope.Placeholder = "optional"
	f.nameInput.Prompt = ""
	f.nameInput.Placeholder = "variable name"

	content := ""
	if initial != nil {
		f.title.SetValue(initial.Title)
		if initial.ClassScope != nil {
			f.scope.SetValue(*initial.ClassScope)
		}
		for i, c := range categoryOptions {
			if c == initial.Category {
				f.category = i
			}
		}
		f.vars = variables.FromSchema(initial.VariableSchema)
		content = initial.Content
	}

	f.editor = editor.New(editor.Config{
		Text:           content,
		Variables:      f.vars,
		MaxSuggestions: cfg.Editor.MaxSuggestions,
		ContentLimit:   cfg.Editor.ContentLimit,
		PopupMaxWidth:  cfg.Editor.PopupMaxWidth,
		Clipboard:      clip,
		Logger:         log,
		OnChange: func(ev editor.ChangeEvent) {
			log.Debug("content changed",
				zap.Int("length", ev.Length),
				zap.Int("caret", ev.Offset),
			)
		},
	})
	_ = f.setFocus(fieldTitle)
	return f
}

func (f form) Init() tea.Cmd { return textinput.Blink }

func (f form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width, f.height = msg.Width, msg.Height
		f.resize()
		return f, nil
	case tea.KeyMsg:
		return f.updateKey(msg)
	case tea.MouseMsg:
		msg.Y -= f.editorTop()
		if msg.Y < 0 {
			return f, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && f.focus != fieldContent {
			_ = f.setFocus(fieldContent)
		}
		f.editor, cmd = f.editor.Update(msg)
		return f, cmd
	}

	// Blink ticks and other messages go to whichever input owns the cursor.
	var inputCmd tea.Cmd
	switch {
	case f.renaming:
		f.nameInput, inputCmd = f.nameInput.Update(msg)
	case f.focus == fieldTitle:
		f.title, inputCmd = f.title.Update(msg)
	case f.focus == fieldScope:
		f.scope, inputCmd = f.scope.Update(msg)
	}
	f.editor, cmd = f.editor.Update(msg)
	return f, tea.Batch(inputCmd, cmd)
}

func (f form) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, f.keys.Quit) {
		return f, tea.Quit
	}
	// The suggestion popup gets the first look at keys so enter and tab
	// commit a variable instead of moving focus.
	if f.focus == fieldContent {
		if next, handled := f.editor.HandleKey(msg); handled {
			f.editor = next
			return f, nil
		}
	}
	if f.renaming {
		return f.updateRename(msg)
	}

	switch {
	case key.Matches(msg, f.keys.Save):
		return f.save()
	case key.Matches(msg, f.keys.Next):
		return f, f.setFocus((f.focus + 1) % fieldCount)
	case key.Matches(msg, f.keys.Prev):
		return f, f.setFocus((f.focus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldScope:
		f.scope, cmd = f.scope.Update(msg)
	case fieldCategory:
		n := len(categoryOptions)
		switch {
		case key.Matches(msg, f.keys.Left):
			f.category = (f.category + n - 1) % n
		case key.Matches(msg, f.keys.Right):
			f.category = (f.category + 1) % n
		}
	case fieldVariables:
		cmd = f.updateVariables(msg)
	case fieldContent:
		f.editor, cmd = f.editor.Update(msg)
	}
	return f, cmd
}

func (f *form) updateVariables(msg tea.KeyMsg) tea.Cmd {
	rows := f.vars.All()
	switch {
	case key.Matches(msg, f.keys.Add):
		f.editor, _ = f.editor.AddVariable()
		f.row = f.vars.Len() - 1
		f.resize()
		return f.startRename()
	case len(rows) == 0:
		return nil
	}

	f.row = min(max(f.row, 0), len(rows)-1)
	v := rows[f.row]
	switch {
	case key.Matches(msg, f.keys.Up):
		f.row = max(f.row-1, 0)
	case key.Matches(msg, f.keys.Down):
		f.row = min(f.row+1, len(rows)-1)
	case key.Matches(msg, f.keys.Remove):
		f.editor = f.editor.RemoveVariable(v.ID)
		f.row = max(min(f.row, f.vars.Len()-1), 0)
		f.resize()
	case key.Matches(msg, f.keys.Rename):
		return f.startRename()
	case key.Matches(msg, f.keys.CycleType):
		f.editor = f.editor.UpdateVariable(v.ID, variables.TypePatch(v.Type.Next()))
	case key.Matches(msg, f.keys.ToggleRequired):
		f.editor = f.editor.UpdateVariable(v.ID, variables.RequiredPatch(!v.Required))
	case key.Matches(msg, f.keys.Insert):
		next, err := f.editor.InsertVariable(v.ID)
		if err != nil {
			f.reportInputError(err)
			return nil
		}
		f.editor = next
		f.status = ""
	case key.Matches(msg, f.keys.Copy):
		f.copyToken(v)
	}
	return nil
}

// copyToken puts the chip's drag payload on the clipboard so it can be
// pasted into the content.
func (f *form) copyToken(v variables.Variable) {
	if f.clip == nil {
		return
	}
	for chip := range f.editor.Chips() {
		if chip.ID != v.ID {
			continue
		}
		if err := f.clip.WriteText(chip.DragPayload()); err != nil {
			f.status = "clipboard unavailable"
			f.log.Warn("clipboard write failed", zap.Error(err))
			return
		}
		f.status = "copied " + chip.Token
		return
	}
	f.reportInputError(editor.ErrEmptyName)
}

func (f *form) startRename() tea.Cmd {
	rows := f.vars.All()
	if f.row < 0 || f.row >= len(rows) {
		return nil
	}
	f.renaming = true
	f.nameInput.SetValue(rows[f.row].Name)
	f.nameInput.CursorEnd()
	return f.nameInput.Focus()
}

func (f form) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, f.keys.Rename):
		rows := f.vars.All()
		if f.row >= 0 && f.row < len(rows) {
			f.editor = f.editor.UpdateVariable(rows[f.row].ID, variables.NamePatch(f.nameInput.Value()))
		}
		fallthrough
	case key.Matches(msg, f.keys.Cancel):
		f.renaming = false
		f.nameInput.Blur()
		return f, nil
	}

	var cmd tea.Cmd
	f.nameInput, cmd = f.nameInput.Update(msg)
	return f, cmd
}

func (f form) save() (tea.Model, tea.Cmd) {
	t := draft.New(draft.Fields{
		Title:      f.title.Value(),
		Category:   string(categoryOptions[f.category]),
		Content:    f.editor.Buffer().Text(),
		ClassScope: f.scope.Value(),
	}, f.vars)

	if err := t.Validate(); err != nil {
		f.reportInputError(err)
		return f, nil
	}
	if missing := t.Undeclared(); len(missing) > 0 {
		f.log.Warn("content uses undeclared variables", zap.Strings("names", missing))
	}

	f.log.Info("template saved",
		zap.String("title", t.Title),
		zap.String("category", string(t.Category)),
		zap.Int("variables", len(t.VariableSchema)),
	)
	f.saved = &t
	return f, tea.Quit
}

// reportInputError shows a user-correctable error in the status line.
// Anything else is a bug and is logged too.
func (f *form) reportInputError(err error) {
	f.status = err.Error()

	var (
		draftErr  *draft.InputError
		editorErr *editor.UserInputError
	)
	if errors.As(err, &draftErr) || errors.As(err, &editorErr) {
		f.log.Debug("input rejected", zap.Error(err))
		return
	}
	f.log.Error("unexpected error", zap.Error(err))
}

func (f *form) setFocus(next field) tea.Cmd {
	f.focus = next
	f.title.Blur()
	f.scope.Blur()
	f.editor = f.editor.Blur()

	switch next {
	case fieldTitle:
		return f.title.Focus()
	case fieldScope:
		return f.scope.Focus()
	case fieldContent:
		f.editor = f.editor.Focus()
	}
	return nil
}

// editorTop is the screen row of the first editor line.
func (f form) editorTop() int {
	return headerRows + max(f.vars.Len(), 1) + 1
}

func (f *form) resize() {
	if f.width <= 0 || f.height <= 0 {
		return
	}
	inputWidth := max(f.width-lipgloss.Width(labelStyle.Render(""))-1, 1)
	f.title.Width = inputWidth
	f.scope.Width = inputWidth

	// Status and help lines sit below the editor.
	f.editor = f.editor.SetSize(f.width, max(f.height-f.editorTop()-2, 3))
}

func (f form) View() string {
	var b strings.Builder

	label := func(fd field, s string) string {
		if f.focus == fd {
			return focusedLabel.Render(s)
		}
		return labelStyle.Render(s)
	}

	category := string(categoryOptions[f.category])
	if category == "" {
		category = "choose"
	}
	fmt.Fprintf(&b, "%s %s\n", label(fieldTitle, "Title"), f.title.View())
	fmt.Fprintf(&b, "%s ‹ %s ›\n", label(fieldCategory, "Category"), category)
	fmt.Fprintf(&b, "%s %s\n", label(fieldScope, "Class scope"), f.scope.View())
	fmt.Fprintf(&b, "%s\n", label(fieldVariables, "Variables"))
	b.WriteString(f.viewRows())
	fmt.Fprintf(&b, "%s\n", label(fieldContent, "Content"))
	b.WriteString(f.editor.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(f.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(f.help()))
	return b.String()
}

func (f form) viewRows() string {
	rows := f.vars.All()
	if len(rows) == 0 {
		return helpStyle.Render("  press a to add a variable") + "\n"
	}

	var b strings.Builder
	for i, v := range rows {
		name := v.Name
		if f.renaming && i == f.row {
			name = f.nameInput.View()
		} else if name == "" {
			name = "(unnamed)"
		}
		req := ""
		if v.Required {
			req = " required"
		}
		line := fmt.Sprintf("  %s [%s]%s", name, v.Type, req)
		if f.focus == fieldVariables && i == f.row {
			line = rowSelected.Render("›" + line[1:])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (f form) help() string {
	switch {
	case f.renaming:
		return "enter confirm • esc cancel"
	case f.focus == fieldVariables:
		return "a add • x remove • enter rename • t type • r required • i insert • c copy • tab next • ctrl+s save"
	case f.focus == fieldContent:
		return "type {# for variables • ↑/↓ choose • enter/tab insert • esc dismiss • ctrl+v paste • ctrl+s save"
	default:
		return "tab next • shift+tab prev • ctrl+s save • ctrl+q quit"
	}
}
