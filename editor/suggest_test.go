package editor

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/iw2rmb/tmplvars/internal/grapheme"
	"github.com/iw2rmb/tmplvars/variables"
)

func listWith(names ...string) *variables.List {
	l := variables.NewList()
	for _, n := range names {
		id := l.Add()
		l.Update(id, variables.NamePatch(n))
	}
	return l
}

func candidateNames(s SuggestionState) []string {
	var out []string
	for _, v := range s.Candidates {
		out = append(out, v.Name)
	}
	return out
}

func TestComputeSuggestions_Scenarios(t *testing.T) {
	vars := listWith("amount", "age", "name")

	cases := []struct {
		name  string
		text  string
		caret int // -1 means end of text
		want  []string
	}{
		{name: "open prefix", text: "Pay {#a", caret: -1, want: []string{"amount", "age"}},
		{name: "case insensitive", text: "Pay {#A", caret: -1, want: []string{"amount", "age"}},
		{name: "empty partial", text: "{#", caret: -1, want: []string{"amount", "age", "name"}},
		{name: "after closed token", text: "Hi {#name#} there {#a", caret: -1, want: []string{"amount", "age"}},
		{name: "caret after close", text: "Hi {#name#} there", caret: 11},
		{name: "caret inside closed token", text: "Hi {#name#}", caret: 7, want: []string{"name"}},
		{name: "no match", text: "{#zz", caret: -1},
		{name: "no tag", text: "plain text", caret: -1},
		{name: "spans newline", text: "{#\nn", caret: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			caret := tc.caret
			if caret < 0 {
				caret = grapheme.Count(tc.text)
			}
			s := ComputeSuggestions(vars, tc.text, caret, 0)
			if got := candidateNames(s); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("candidates: got %v, want %v", got, tc.want)
			}
			if len(tc.want) == 0 {
				if s.ActiveIndex != -1 || s.Visible() {
					t.Fatalf("expected hidden state, got %+v", s)
				}
				return
			}
			if s.ActiveIndex != 0 {
				t.Fatalf("active index: got %d, want 0", s.ActiveIndex)
			}
		})
	}
}

func TestComputeSuggestions_SharedHashClosesTag(t *testing.T) {
	s := ComputeSuggestions(listWith("}x"), "{#}", 3, 0)
	if s.Visible() {
		t.Fatalf("expected hidden state, got %+v", s)
	}
}

func TestComputeSuggestions_SpanPointsAtOpenTag(t *testing.T) {
	s := ComputeSuggestions(listWith("amount"), "Hi {#name#} there {#a", 21, 0)
	if got, want := s.Span.Start, 18; got != want {
		t.Fatalf("span start: got %d, want %d", got, want)
	}
	if got, want := s.Span.Partial, "a"; got != want {
		t.Fatalf("partial: got %q, want %q", got, want)
	}
}

func TestComputeSuggestions_CapsCandidates(t *testing.T) {
	var names []string
	for i := range 12 {
		names = append(names, fmt.Sprintf("v%d", i))
	}
	vars := listWith(names...)

	if got, want := len(ComputeSuggestions(vars, "{#v", 3, 0).Candidates), 8; got != want {
		t.Fatalf("default cap: got %d, want %d", got, want)
	}
	if got, want := len(ComputeSuggestions(vars, "{#v", 3, 3).Candidates), 3; got != want {
		t.Fatalf("explicit cap: got %d, want %d", got, want)
	}
	if got, want := candidateNames(ComputeSuggestions(vars, "{#v", 3, 2)), []string{"v0", "v1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("insertion order: got %v, want %v", got, want)
	}
}

func TestComputeSuggestions_SkipsUnnamedRows(t *testing.T) {
	vars := listWith("amount")
	vars.Add()

	if got, want := candidateNames(ComputeSuggestions(vars, "{#", 2, 0)), []string{"amount"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}
	if s := ComputeSuggestions(nil, "{#", 2, 0); s.Visible() {
		t.Fatalf("nil list should hide suggestions, got %+v", s)
	}
}

func TestSuggestionState_StepWrapsAround(t *testing.T) {
	s := SuggestionState{ActiveIndex: 0, Candidates: make([]variables.Variable, 3)}

	if got := s.step(-1).ActiveIndex; got != 2 {
		t.Fatalf("prev from first: got %d, want 2", got)
	}
	if got := s.step(1).step(1).step(1).ActiveIndex; got != 0 {
		t.Fatalf("next past last: got %d, want 0", got)
	}
	if got := hiddenSuggestions().step(1); got.Visible() {
		t.Fatalf("stepping hidden state should stay hidden, got %+v", got)
	}
}
