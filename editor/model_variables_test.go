package editor

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tmplvars/variables"
)

func chipNames(m Model) []string {
	var out []string
	for c := range m.Chips() {
		out = append(out, c.Name)
	}
	return out
}

func TestAddVariable_IDsAreDistinctAndChipsNeedNames(t *testing.T) {
	m := New(Config{})
	m, a := m.AddVariable()
	m, b := m.AddVariable()
	if a == b {
		t.Fatalf("ids should differ: %d, %d", a, b)
	}
	if got := chipNames(m); len(got) != 0 {
		t.Fatalf("unnamed rows should have no chips, got %v", got)
	}

	m = m.UpdateVariable(b, variables.NamePatch("age"))
	m = m.UpdateVariable(a, variables.Patch{Name: ptr("amount"), Type: ptr(variables.TypeFloat)})
	if got, want := chipNames(m), []string{"amount", "age"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("chips: got %v, want %v", got, want)
	}
	if got, want := m.Schema()["amount"].Type, variables.TypeFloat; got != want {
		t.Fatalf("schema type: got %q, want %q", got, want)
	}
}

func TestAddVariable_ZeroModelGetsList(t *testing.T) {
	var m Model
	m, id := m.AddVariable()
	if _, ok := m.Variables().Get(id); !ok {
		t.Fatalf("variable %d not found", id)
	}
}

func TestRemoveVariable_LeavesTextAlone(t *testing.T) {
	vars := listWith("name")
	m := New(Config{Text: "Hi {#name#}", Variables: vars})
	id := vars.All()[0].ID

	m = m.RemoveVariable(id)
	if got, want := m.buf.Text(), "Hi {#name#}"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := chipNames(m); len(got) != 0 {
		t.Fatalf("chips after remove: got %v", got)
	}

	// Unknown ids are ignored.
	m = m.RemoveVariable(id)
	if m.Variables().Len() != 0 {
		t.Fatalf("list should stay empty")
	}
}

func TestRemoveVariable_RematchesVisiblePopup(t *testing.T) {
	vars := listWith("amount", "age")
	m := New(Config{Text: "{#a", Variables: vars})
	m.buf.SetCursorOffset(3)
	m = m.BufferChanged()

	m = m.RemoveVariable(vars.All()[0].ID)
	if got, want := candidateNames(m.SuggestionState()), []string{"age"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}

	m = m.RemoveVariable(vars.All()[0].ID)
	if m.SuggestionState().Visible() {
		t.Fatalf("popup should hide once nothing matches")
	}
}

func TestUpdateVariable_KeepsActiveCandidate(t *testing.T) {
	vars := listWith("amount", "age")
	m := New(Config{Text: "{#a", Variables: vars})
	m.buf.SetCursorOffset(3)
	m = m.BufferChanged()

	m, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	m = m.UpdateVariable(vars.All()[0].ID, variables.NamePatch("total"))
	st := m.SuggestionState()
	if got, want := candidateNames(st), []string{"age"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}
	if st.ActiveIndex != 0 {
		t.Fatalf("active index: got %d, want 0", st.ActiveIndex)
	}
}

func ptr[T any](v T) *T { return &v }
