package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ndo-cli/internal/model"
)

func TestEntry_NewItemCommit(t *testing.T) {
	m, f := newFileModel(t, "- a")

	m = press(m, runes("o"))
	if m.mode != modeEntry || !m.entry.isNew || m.entry.index != 1 {
		t.Fatalf("expected a new-item entry at 1; got mode=%v entry=%#v", m.mode, m.entry)
	}
	m = press(m, runes("abc"))
	if got := m.renderState().Items; len(got) != 2 || got[1].Text != "abc" {
		t.Fatalf("expected the draft in the preview; got %#v", got)
	}
	if m.ed.List.Len() != 1 {
		t.Fatalf("expected no list change before commit")
	}
	m = press(m, keyOf(tea.KeyEnter))
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode; got %v", m.mode)
	}
	if got := texts(m); !reflect.DeepEqual(got, []string{"a", "abc"}) {
		t.Fatalf("unexpected items %v", got)
	}
	if got := m.ed.List.Cursor(); got != 1 {
		t.Fatalf("expected cursor on the new item; got %d", got)
	}
	if got := readFile(t, f); got != "- a\n- abc\n" {
		t.Fatalf("expected autosave; got %q", got)
	}
	if undo, _ := m.ed.History.Depth(); undo != 1 {
		t.Fatalf("expected one history entry; got %d", undo)
	}
}

func TestEntry_NewItemContinuesKindAndIndent(t *testing.T) {
	m := newTestModel(t, nil, "- a", "  note")
	m = press(m, runes("j"), runes("o"), runes("n2"), keyOf(tea.KeyEnter))
	it, _ := m.ed.List.Item(2)
	if it.Kind != model.KindNote || it.Indent != 1 || it.Text != "n2" {
		t.Fatalf("unexpected new item %#v", it)
	}
}

func TestEntry_EmptyNewItemIsDropped(t *testing.T) {
	m := newTestModel(t, nil, "- a")
	m = press(m, runes("O"), keyOf(tea.KeyEnter))
	if m.ed.List.Len() != 1 || m.ed.History.CanUndo() {
		t.Fatalf("expected nothing inserted; got %v", texts(m))
	}
}

func TestEntry_CancelLeavesNoTrace(t *testing.T) {
	m := newTestModel(t, nil, "- a")
	m = press(m, runes("i"), runes("zzz"), keyOf(tea.KeyEsc))
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode; got %v", m.mode)
	}
	if got := texts(m); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected unchanged list; got %v", got)
	}
	if m.ed.History.CanUndo() {
		t.Fatalf("expected no history entry")
	}
}

func TestEntry_EditExisting(t *testing.T) {
	m := newTestModel(t, nil, "- a", "- b")
	m = press(m, runes("j"), runes("I"), runes(">"), keyOf(tea.KeyEnter))
	if got := texts(m); !reflect.DeepEqual(got, []string{"a", ">b"}) {
		t.Fatalf("expected insertion at the start; got %v", got)
	}

	// Clearing the text keeps the old text.
	m = press(m, runes("i"), keyOf(tea.KeyBackspace), keyOf(tea.KeyBackspace), keyOf(tea.KeyEnter))
	if got := texts(m); !reflect.DeepEqual(got, []string{"a", ">b"}) {
		t.Fatalf("expected the empty edit to be ignored; got %v", got)
	}
}

func TestEntry_IndentAndKindApplyOnCommit(t *testing.T) {
	m := newTestModel(t, nil, "- a", "- b")
	m = press(m, runes("j"), runes("i"), keyOf(tea.KeyTab), keyOf(tea.KeyCtrlT))
	if it, _ := m.ed.List.Item(1); it.Indent != 0 || it.Kind != model.KindTodo {
		t.Fatalf("expected the list untouched while editing; got %#v", it)
	}
	m = press(m, keyOf(tea.KeyEnter))
	it, _ := m.ed.List.Item(1)
	if it.Indent != 1 || it.Kind != model.KindNote || it.Text != "b" {
		t.Fatalf("unexpected committed item %#v", it)
	}
	if undo, _ := m.ed.History.Depth(); undo != 1 {
		t.Fatalf("expected one history entry; got %d", undo)
	}
}

func TestEntry_SplitAtCursor(t *testing.T) {
	m := newTestModel(t, nil, "+ hello world")
	m = press(m, runes("I"))
	for i := 0; i < 5; i++ {
		m = press(m, keyOf(tea.KeyRight))
	}
	m = press(m, keyOf(tea.KeyCtrlJ))
	if got := texts(m); !reflect.DeepEqual(got, []string{"hello", " world"}) {
		t.Fatalf("unexpected split %v", got)
	}
	if m.mode != modeEntry || m.entry.index != 1 || m.input.Position() != 0 {
		t.Fatalf("expected editing to continue on the tail; got mode=%v entry=%#v", m.mode, m.entry)
	}
	if it, _ := m.ed.List.Item(1); it.Completed {
		t.Fatalf("expected the tail to be incomplete")
	}
}

func TestEntry_BackspaceAtStartMerges(t *testing.T) {
	m := newTestModel(t, nil, "- ab", "- cd")
	m = press(m, runes("j"), runes("I"), keyOf(tea.KeyBackspace))
	if got := texts(m); !reflect.DeepEqual(got, []string{"abcd"}) {
		t.Fatalf("unexpected merge %v", got)
	}
	if m.mode != modeEntry || m.entry.index != 0 || m.input.Position() != 2 {
		t.Fatalf("expected editing at the join point; got entry=%#v pos=%d", m.entry, m.input.Position())
	}
	m = press(m, keyOf(tea.KeyEnter))
	m = press(m, runes("u"))
	if got := texts(m); !reflect.DeepEqual(got, []string{"ab", "cd"}) {
		t.Fatalf("expected undo to split them again; got %v", got)
	}
}

func TestEntry_EditThenSplitIsOneUndoStep(t *testing.T) {
	m := newTestModel(t, nil, "- ab")
	m = press(m, runes("I"), runes("x"), keyOf(tea.KeyCtrlJ), keyOf(tea.KeyEsc))
	if got := texts(m); !reflect.DeepEqual(got, []string{"x", "ab"}) {
		t.Fatalf("unexpected split %v", got)
	}
	if undo, _ := m.ed.History.Depth(); undo != 1 {
		t.Fatalf("expected one history entry; got %d", undo)
	}
	m = press(m, runes("u"))
	if got := texts(m); !reflect.DeepEqual(got, []string{"ab"}) {
		t.Fatalf("expected one undo to restore the original; got %v", got)
	}
}

func TestEntry_EditThenMergeIsOneUndoStep(t *testing.T) {
	m := newTestModel(t, nil, "- ab", "- cd")
	m = press(m, runes("j"), runes("I"), runes("x"), keyOf(tea.KeyLeft), keyOf(tea.KeyBackspace), keyOf(tea.KeyEsc))
	if got := texts(m); !reflect.DeepEqual(got, []string{"abxcd"}) {
		t.Fatalf("unexpected merge %v", got)
	}
	if undo, _ := m.ed.History.Depth(); undo != 1 {
		t.Fatalf("expected one history entry; got %d", undo)
	}
	m = press(m, runes("u"))
	if got := texts(m); !reflect.DeepEqual(got, []string{"ab", "cd"}) {
		t.Fatalf("expected one undo to restore both items; got %v", got)
	}
}

func TestEntry_BackspaceOnEmptyNewItemEditsAbove(t *testing.T) {
	m := newTestModel(t, nil, "- a")
	m = press(m, runes("o"), keyOf(tea.KeyBackspace))
	if m.mode != modeEntry || m.entry.isNew || m.entry.index != 0 {
		t.Fatalf("expected to edit the item above; got %#v", m.entry)
	}
	if m.ed.List.Len() != 1 {
		t.Fatalf("expected nothing inserted")
	}
}

func TestEntry_EmptyListEnterStartsNewItem(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, keyOf(tea.KeyEnter), runes("first"), keyOf(tea.KeyEnter))
	if got := texts(m); !reflect.DeepEqual(got, []string{"first"}) {
		t.Fatalf("unexpected items %v", got)
	}
	if it, _ := m.ed.List.Item(0); it.Kind != model.KindTodo {
		t.Fatalf("expected a todo; got %v", it.Kind)
	}
}
