package todos

import (
	"errors"
	"slices"
	"testing"

	"ndo-cli/internal/model"
)

func todo(text string, indent int) model.Item {
	return model.Item{Text: text, Kind: model.KindTodo, Indent: indent}
}

func texts(l *List) []string {
	var out []string
	for _, it := range l.Items() {
		out = append(out, it.Text)
	}
	return out
}

func newList(names ...string) *List {
	items := make([]model.Item, 0, len(names))
	for _, n := range names {
		items = append(items, model.NewTodo(n))
	}
	return New(items)
}

func TestInsertAfter_EmptyList(t *testing.T) {
	l := New(nil)
	if err := l.InsertAfter(-1, model.NewTodo("A")); err != nil {
		t.Fatalf("InsertAfter(-1): %v", err)
	}
	if err := l.InsertAfter(0, model.NewTodo("B")); err != nil {
		t.Fatalf("InsertAfter(0): %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("expected [A B]; got %v", got)
	}
	if l.Cursor() != 1 {
		t.Fatalf("expected cursor 1; got %d", l.Cursor())
	}
}

func TestInsert_OutOfRange(t *testing.T) {
	l := newList("a")
	var oor OutOfRangeError
	if err := l.InsertAfter(1, model.NewTodo("x")); !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError; got %v", err)
	}
	if err := l.InsertBefore(-1, model.NewTodo("x")); !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError; got %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("expected list untouched; got %v", texts(l))
	}
	if err := l.InsertBefore(1, model.NewTodo("z")); err != nil {
		t.Fatalf("InsertBefore(len): %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"a", "z"}) {
		t.Fatalf("expected append; got %v", got)
	}
}

func TestInsert_FirstItemIndentIsNormalized(t *testing.T) {
	l := newList("a")
	if err := l.InsertBefore(0, todo("nested", 3)); err != nil {
		t.Fatalf("InsertBefore: %v", err)
	}
	if it, _ := l.Item(0); it.Indent != 0 {
		t.Fatalf("expected first item at indent 0; got %d", it.Indent)
	}
}

func TestDelete_CursorFollowsNextSurvivor(t *testing.T) {
	l := newList("a", "b", "c", "d", "e")
	l.SetCursor(1)
	if err := l.Delete([]int{1, 2}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"a", "d", "e"}) {
		t.Fatalf("unexpected items %v", got)
	}
	if l.Cursor() != 1 {
		t.Fatalf("expected cursor on d (1); got %d", l.Cursor())
	}

	l.SetCursor(2)
	if err := l.Delete([]int{2}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if l.Cursor() != 1 {
		t.Fatalf("expected cursor clamped to last item; got %d", l.Cursor())
	}

	l.SetCursor(1)
	if err := l.Delete([]int{0}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if l.Cursor() != 0 || texts(l)[0] != "d" {
		t.Fatalf("expected cursor to stay on d; got %d %v", l.Cursor(), texts(l))
	}
}

func TestDelete_Errors(t *testing.T) {
	l := New(nil)
	if err := l.Delete([]int{0}); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList; got %v", err)
	}
	l = newList("a", "b")
	var oor OutOfRangeError
	if err := l.Delete([]int{0, 5}); !errors.As(err, &oor) || oor.Index != 5 {
		t.Fatalf("expected OutOfRangeError for 5; got %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("expected nothing deleted on error")
	}
}

func TestDelete_All(t *testing.T) {
	l := newList("a", "b")
	if err := l.Delete([]int{0, 1}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if l.Len() != 0 || l.Cursor() != 0 || l.Active() != nil {
		t.Fatalf("expected empty list with cursor 0; got len=%d cursor=%d", l.Len(), l.Cursor())
	}
}

func TestToggleComplete_Idempotent(t *testing.T) {
	l := New([]model.Item{model.NewTodo("t"), model.NewNote("n")})
	before := l.Items()
	if err := l.ToggleComplete([]int{0, 1}); err != nil {
		t.Fatalf("ToggleComplete: %v", err)
	}
	if it, _ := l.Item(0); !it.Completed {
		t.Fatalf("expected todo completed")
	}
	if it, _ := l.Item(1); it.Completed {
		t.Fatalf("expected note untouched")
	}
	l.ToggleComplete([]int{0, 1})
	if !slices.Equal(l.Items(), before) {
		t.Fatalf("expected double toggle to restore items")
	}
}

func TestIndent_FloorAndFirstItem(t *testing.T) {
	l := newList("a", "b")
	for range 3 {
		l.Indent([]int{1}, -1)
	}
	if it, _ := l.Item(1); it.Indent != 0 {
		t.Fatalf("expected floor 0; got %d", it.Indent)
	}
	l.Indent([]int{0, 1}, +1)
	l.Indent([]int{1}, +1)
	a, _ := l.Item(0)
	b, _ := l.Item(1)
	if a.Indent != 0 || b.Indent != 2 {
		t.Fatalf("expected indents 0 and 2; got %d and %d", a.Indent, b.Indent)
	}
}

func TestMove_Scenario(t *testing.T) {
	l := newList("X", "Y", "Z")
	l.SetCursor(0)
	if err := l.Move([]int{0}, Down, 1); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"Y", "X", "Z"}) {
		t.Fatalf("expected [Y X Z]; got %v", got)
	}
	if l.Cursor() != 1 {
		t.Fatalf("expected cursor to follow X to 1; got %d", l.Cursor())
	}
}

func TestMove_CarriesChildren(t *testing.T) {
	l := New([]model.Item{todo("p", 0), todo("c1", 1), todo("c2", 2), todo("q", 0), todo("r", 0)})
	if err := l.Move([]int{0}, Down, 1); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"q", "p", "c1", "c2", "r"}) {
		t.Fatalf("unexpected order %v", got)
	}
	if l.Cursor() != 1 {
		t.Fatalf("expected cursor on p; got %d", l.Cursor())
	}
	if err := l.Move([]int{1}, Down, 2); !errors.Is(err, ErrMoveOutOfBounds) {
		t.Fatalf("expected ErrMoveOutOfBounds; got %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"q", "p", "c1", "c2", "r"}) {
		t.Fatalf("expected failed move to leave list untouched; got %v", got)
	}
	if err := l.Move([]int{1}, Up, 1); err != nil {
		t.Fatalf("Move up: %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"p", "c1", "c2", "q", "r"}) {
		t.Fatalf("unexpected order after move up %v", got)
	}
}

func TestMove_SeparateBlocksAndSelection(t *testing.T) {
	l := newList("a", "b", "c", "d", "e")
	l.SetCursor(0)
	l.ToggleSelected(2)
	if err := l.Move(l.Active(), Down, 2); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"b", "d", "a", "e", "c"}) {
		t.Fatalf("unexpected order %v", got)
	}
	if l.Cursor() != 2 || !slices.Equal(l.Selection(), []int{4}) {
		t.Fatalf("expected cursor 2 and selection [4]; got %d %v", l.Cursor(), l.Selection())
	}
	if err := l.Move([]int{0}, Up, 1); !errors.Is(err, ErrMoveOutOfBounds) {
		t.Fatalf("expected ErrMoveOutOfBounds; got %v", err)
	}
}

func TestMergeWithPrevious(t *testing.T) {
	l := newList("foo", "bar")
	if _, err := l.MergeWithPrevious(0); !errors.Is(err, ErrNoPrevious) {
		t.Fatalf("expected ErrNoPrevious; got %v", err)
	}
	off, err := l.MergeWithPrevious(1)
	if err != nil {
		t.Fatalf("MergeWithPrevious: %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"foobar"}) || off != 3 || l.Cursor() != 0 {
		t.Fatalf("unexpected merge result %v offset=%d cursor=%d", got, off, l.Cursor())
	}
}

func TestJoinWithPrevious(t *testing.T) {
	l := newList("a", "b", "", "c")
	if err := l.JoinWithPrevious([]int{1, 2, 3}); err != nil {
		t.Fatalf("JoinWithPrevious: %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"a b c"}) {
		t.Fatalf("expected [a b c]; got %v", got)
	}
}

func TestMoveAndJoin_NoIndicesIsNoop(t *testing.T) {
	l := newList("a", "b", "c")
	if err := l.Move(nil, Down, 1); err != nil {
		t.Fatalf("Move(nil): %v", err)
	}
	if err := l.Move([]int{}, Up, 2); err != nil {
		t.Fatalf("Move([]): %v", err)
	}
	if err := l.JoinWithPrevious(nil); err != nil {
		t.Fatalf("JoinWithPrevious(nil): %v", err)
	}
	if got := texts(l); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected list unchanged; got %v", got)
	}
}

func TestSplit(t *testing.T) {
	l := New([]model.Item{{Text: "héllo world", Kind: model.KindTodo, Completed: true, Color: model.ColorRed, Indent: 0}})
	if err := l.Split(0, 5); err != nil {
		t.Fatalf("Split: %v", err)
	}
	a, _ := l.Item(0)
	b, _ := l.Item(1)
	if a.Text != "héllo" || b.Text != " world" {
		t.Fatalf("unexpected split %q / %q", a.Text, b.Text)
	}
	if !a.Completed || b.Completed || b.Color != model.ColorRed || b.Kind != model.KindTodo {
		t.Fatalf("unexpected split attributes %#v / %#v", a, b)
	}
	if l.Cursor() != 1 {
		t.Fatalf("expected cursor on second half; got %d", l.Cursor())
	}
	var oor OutOfRangeError
	if err := l.Split(0, 99); !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError; got %v", err)
	}
}

func TestExtendSelection(t *testing.T) {
	l := newList("a", "b", "c", "d")
	l.SetCursor(1)
	l.ExtendSelection(2)
	if !slices.Equal(l.Active(), []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3]; got %v", l.Active())
	}
	l.ExtendSelection(-3)
	if !slices.Equal(l.Active(), []int{0, 1}) {
		t.Fatalf("expected [0 1]; got %v", l.Active())
	}
	l.MoveCursor(1)
	if len(l.Selection()) != 0 {
		t.Fatalf("expected plain cursor move to clear selection")
	}
}

func TestSnapshotRestore(t *testing.T) {
	l := newList("a", "b")
	l.SetCursor(1)
	l.ToggleSelected(0)
	s := l.Snapshot()
	l.Delete([]int{0, 1})
	l.Restore(s)
	if got := texts(l); !slices.Equal(got, []string{"a", "b"}) || l.Cursor() != 1 || !slices.Equal(l.Selection(), []int{0}) {
		t.Fatalf("restore mismatch: %v cursor=%d sel=%v", got, l.Cursor(), l.Selection())
	}
}
