package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tmplvars/draft"
	"github.com/iw2rmb/tmplvars/internal/config"
	"github.com/iw2rmb/tmplvars/variables"
)

func send(t *testing.T, f form, msgs ...tea.Msg) form {
	t.Helper()
	for _, msg := range msgs {
		next, _ := f.Update(msg)
		f = next.(form)
	}
	return f
}

func typed(s string) []tea.Msg {
	var out []tea.Msg
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestForm_AuthorAndSave(t *testing.T) {
	f := newForm(config.Defaults(), nil, nil, nil)
	f = send(t, f, tea.WindowSizeMsg{Width: 80, Height: 30})

	f = send(t, f, typed("Fee reminder")...)
	f = send(t, f, keyOf(tea.KeyTab), keyOf(tea.KeyRight), keyOf(tea.KeyRight)) // teacher
	f = send(t, f, keyOf(tea.KeyTab), keyOf(tea.KeyTab))                        // variables

	// Add "amount" as a required float.
	f = send(t, f, typed("a")...)
	f = send(t, f, typed("amount")...)
	f = send(t, f, keyOf(tea.KeyEnter))
	f = send(t, f, typed("ttr")...)

	f = send(t, f, keyOf(tea.KeyTab)) // content
	f = send(t, f, typed("Pay {#am")...)
	if !f.editor.SuggestionState().Visible() {
		t.Fatalf("expected suggestions after typing an open tag")
	}
	f = send(t, f, keyOf(tea.KeyTab)) // commits, does not move focus
	if f.focus != fieldContent {
		t.Fatalf("tab with suggestions must not move focus, focus=%d", f.focus)
	}

	next, cmd := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	f = next.(form)
	if f.saved == nil {
		t.Fatalf("save failed: %q", f.status)
	}
	if cmd == nil {
		t.Fatalf("save should quit")
	}

	got := *f.saved
	if got.Title != "Fee reminder" || got.Category != draft.CategoryTeacher {
		t.Fatalf("unexpected header: %+v", got)
	}
	if got.Content != "Pay {#amount#}" {
		t.Fatalf("content: got %q", got.Content)
	}
	want := variables.Field{Type: variables.TypeFloat, Required: true}
	if got.VariableSchema["amount"] != want {
		t.Fatalf("schema: got %+v, want %+v", got.VariableSchema, want)
	}
	if got.ClassScope != nil {
		t.Fatalf("empty class scope should be null, got %q", *got.ClassScope)
	}
}

func TestForm_SaveReportsInputError(t *testing.T) {
	f := newForm(config.Defaults(), nil, nil, nil)
	f = send(t, f, tea.KeyMsg{Type: tea.KeyCtrlS})

	if f.saved != nil {
		t.Fatalf("empty form must not save")
	}
	if !strings.Contains(f.status, "title") {
		t.Fatalf("status: got %q", f.status)
	}
}

func TestForm_InsertUnnamedVariableShowsError(t *testing.T) {
	f := newForm(config.Defaults(), nil, nil, nil)
	f = send(t, f, keyOf(tea.KeyShiftTab), keyOf(tea.KeyShiftTab)) // variables
	f = send(t, f, typed("a")...)
	f = send(t, f, keyOf(tea.KeyEsc))
	f = send(t, f, typed("i")...)

	if f.status == "" {
		t.Fatalf("expected a status message")
	}
	if got := f.editor.Buffer().Text(); got != "" {
		t.Fatalf("text: got %q", got)
	}
}

func TestForm_EditExistingTemplate(t *testing.T) {
	scope := "10-A"
	initial := draft.Template{
		Title:      "Hello",
		Category:   draft.CategoryStudent,
		Content:    "Hi {#name#}",
		ClassScope: &scope,
		VariableSchema: variables.Schema{
			"name": {Type: variables.TypeString, Required: true},
		},
	}
	f := newForm(config.Defaults(), nil, nil, &initial)
	if got := f.vars.Len(); got != 1 {
		t.Fatalf("variables: got %d, want 1", got)
	}
	if got := categoryOptions[f.category]; got != draft.CategoryStudent {
		t.Fatalf("category: got %q", got)
	}

	f = send(t, f, tea.KeyMsg{Type: tea.KeyCtrlS})
	if f.saved == nil {
		t.Fatalf("save failed: %q", f.status)
	}
	if f.saved.ClassScope == nil || *f.saved.ClassScope != "10-A" {
		t.Fatalf("class scope lost: %+v", f.saved.ClassScope)
	}
	if !strings.Contains(f.View(), "{#name#}") {
		t.Fatalf("view should show the chip:\n%s", f.View())
	}
}

type memClipboard struct{ text string }

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

func TestForm_CopyTokenThenPaste(t *testing.T) {
	clip := &memClipboard{}
	f := newForm(config.Defaults(), nil, clip, nil)
	f = send(t, f, keyOf(tea.KeyShiftTab), keyOf(tea.KeyShiftTab)) // variables
	f = send(t, f, typed("a")...)
	f = send(t, f, typed("due")...)
	f = send(t, f, keyOf(tea.KeyEnter))
	f = send(t, f, typed("c")...)
	if got, want := clip.text, "{#due#}"; got != want {
		t.Fatalf("clipboard: got %q, want %q", got, want)
	}

	f = send(t, f, keyOf(tea.KeyTab)) // content
	f = send(t, f, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got, want := f.editor.Buffer().Text(), "{#due#}"; got != want {
		t.Fatalf("content: got %q, want %q", got, want)
	}
}

func TestForm_ClickInContentFocusesEditor(t *testing.T) {
	f := newForm(config.Defaults(), nil, nil, nil)
	f = send(t, f, tea.WindowSizeMsg{Width: 80, Height: 30})

	f = send(t, f, tea.MouseMsg{X: 2, Y: f.editorTop() - 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if f.focus != fieldTitle {
		t.Fatalf("click above content: got focus %v, want %v", f.focus, fieldTitle)
	}

	f = send(t, f, tea.MouseMsg{X: 2, Y: f.editorTop(), Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if f.focus != fieldContent {
		t.Fatalf("focus: got %v, want %v", f.focus, fieldContent)
	}
	if !f.editor.Focused() {
		t.Fatalf("editor should be focused after a click in content")
	}

	f = send(t, f, typed("Hi")...)
	if got, want := f.editor.Buffer().Text(), "Hi"; got != want {
		t.Fatalf("content: got %q, want %q", got, want)
	}
}

func TestForm_BlinkReachesFocusedInput(t *testing.T) {
	f := newForm(config.Defaults(), nil, nil, nil)
	f.title.Cursor.BlinkSpeed = time.Millisecond

	blink := f.title.Cursor.BlinkCmd()()
	before := f.title.Cursor.Blink
	f = send(t, f, blink)
	if f.title.Cursor.Blink == before {
		t.Fatalf("title cursor did not blink")
	}
}
