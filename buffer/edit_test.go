package buffer

import "testing"

func TestInsertText_AtCursorMovesCursorAfterText(t *testing.T) {
	b := New("Pay now", Options{})
	b.SetCursor(Pos{GraphemeCol: 4})

	b.InsertText("{#amount#} ")

	if got, want := b.Text(), "Pay {#amount#} now"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 15}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if got, want := b.TextVersion(), uint64(1); got != want {
		t.Fatalf("text version: got %d, want %d", got, want)
	}
}

func TestInsertText_ReplacesSelection(t *testing.T) {
	b := New("Hello NAME!", Options{})
	b.SetSelection(Range{Start: Pos{GraphemeCol: 6}, End: Pos{GraphemeCol: 10}})

	b.InsertText("{#name#}")

	if got, want := b.Text(), "Hello {#name#}!"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 14}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("selection should be cleared after insert")
	}
}

func TestInsertText_EmptyWithSelectionDeletes(t *testing.T) {
	b := New("abcd", Options{})
	b.SetSelection(Range{Start: Pos{GraphemeCol: 1}, End: Pos{GraphemeCol: 3}})
	b.InsertText("")
	if got, want := b.Text(), "ad"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestInsertText_Multiline(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{GraphemeCol: 1})
	b.InsertText("x\ny\nz")

	if got, want := b.Text(), "ax\ny\nzb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 2, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestDeleteBackwardAndForward(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 0})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("join backward: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 2}); got != want {
		t.Fatalf("cursor after join: got %v, want %v", got, want)
	}

	b.DeleteForward()
	if got, want := b.Text(), "abd"; got != want {
		t.Fatalf("delete forward: got %q, want %q", got, want)
	}

	b.SetCursor(Pos{})
	before := b.Version()
	b.DeleteBackward()
	if b.Version() != before {
		t.Fatalf("backspace at doc start should be a no-op")
	}
}

func TestDeleteBackward_RemovesWholeGrapheme(t *testing.T) {
	b := New("éx", Options{})
	b.SetCursor(Pos{GraphemeCol: 1})
	b.DeleteBackward()
	if got, want := b.Text(), "x"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestReplace_RecordsLastEdit(t *testing.T) {
	b := New("Pay {#am", Options{})
	b.SetCursor(Pos{GraphemeCol: 8})

	if !b.Replace(Range{Start: Pos{GraphemeCol: 4}, End: Pos{GraphemeCol: 8}}, "{#amount#}") {
		t.Fatalf("replace should report a change")
	}
	if got, want := b.Text(), "Pay {#amount#}"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	e, ok := b.LastEdit()
	if !ok {
		t.Fatalf("expected last edit")
	}
	if e.Deleted != "{#am" || e.Inserted != "{#amount#}" {
		t.Fatalf("last edit: got %+v", e)
	}
	if got, want := e.After.End, (Pos{GraphemeCol: 14}); got != want {
		t.Fatalf("edit end: got %v, want %v", got, want)
	}
	if got, want := e.Version, b.Version(); got != want {
		t.Fatalf("edit version: got %d, want %d", got, want)
	}

	if b.Replace(Range{Start: Pos{GraphemeCol: 0}, End: Pos{GraphemeCol: 3}}, "Pay") {
		t.Fatalf("identical replacement should not report a change")
	}
}

func TestReplace_IdenticalTextCollapsesSelection(t *testing.T) {
	b := New("Hi {#a#} x", Options{})
	b.SetSelection(Range{Start: Pos{GraphemeCol: 8}, End: Pos{GraphemeCol: 3}})
	v, tv := b.Version(), b.TextVersion()

	b.InsertText("{#a#}")

	if got, want := b.Text(), "Hi {#a#} x"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 8}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("selection should be cleared")
	}
	if b.Version() == v {
		t.Fatalf("version should advance when the caret moves")
	}
	if got := b.TextVersion(); got != tv {
		t.Fatalf("text version: got %d, want %d", got, tv)
	}
	if b.CanUndo() {
		t.Fatalf("unchanged text should not record undo")
	}
}

func TestTextInRange(t *testing.T) {
	b := New("ab\ncd", Options{})
	got := b.TextInRange(Range{Start: Pos{Row: 1, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 1}})
	if want := "b\nc"; got != want {
		t.Fatalf("text in range: got %q, want %q", got, want)
	}
}
