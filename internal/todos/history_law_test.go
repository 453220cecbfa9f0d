package todos

import (
	"testing"

	"ndo-cli/internal/history"
	"ndo-cli/internal/model"

	"pgregory.net/rapid"
)

// applyRandom runs one random mutation against l. Failing operations are allowed: they must
// leave the list untouched.
func applyRandom(t *rapid.T, l *List) {
	n := l.Len()
	idx := func(label string) int {
		if n == 0 {
			return 0
		}
		return rapid.IntRange(0, n-1).Draw(t, label)
	}
	switch rapid.IntRange(0, 9).Draw(t, "op") {
	case 0:
		l.InsertAfter(idx("at")-1, model.Item{Text: rapid.StringMatching(`[a-c]{0,3}`).Draw(t, "text"), Indent: rapid.IntRange(0, 2).Draw(t, "indent")})
	case 1:
		l.Delete([]int{idx("del")})
	case 2:
		l.ToggleComplete([]int{idx("toggle")})
	case 3:
		l.Move([]int{idx("move")}, rapid.SampledFrom([]Direction{Up, Down}).Draw(t, "dir"), rapid.IntRange(1, 2).Draw(t, "count"))
	case 4:
		l.Indent([]int{idx("indent")}, rapid.SampledFrom([]int{-1, 1}).Draw(t, "delta"))
	case 5:
		l.MergeWithPrevious(idx("merge"))
	case 6:
		l.Split(idx("split"), 0)
	case 7:
		l.Sort(nil, rapid.SampledFrom(SortKeys).Draw(t, "key"))
	case 8:
		l.SetColor([]int{idx("color")}, rapid.SampledFrom(model.Colors).Draw(t, "c"))
	case 9:
		if n > 0 {
			l.ToggleSelected(idx("sel"))
		}
	}
}

func TestUndoRedoInverseLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := New(nil)
		for i := range rapid.IntRange(0, 4).Draw(t, "seed") {
			l.InsertAfter(l.Len()-1, model.NewTodo(string(rune('a'+i))))
		}
		h := history.New(0)
		pre := l.Snapshot()

		steps := 0
		for range rapid.IntRange(1, 12).Draw(t, "steps") {
			h.Record(l.Snapshot())
			applyRandom(t, l)
			if h.Commit(l.Snapshot()) {
				steps++
			}
		}
		post := l.Snapshot()

		for range steps {
			s, err := h.Undo(l.Snapshot())
			if err != nil {
				t.Fatalf("Undo: %v", err)
			}
			l.Restore(s)
		}
		if !l.Snapshot().Equal(pre) {
			t.Fatalf("undo did not restore the initial state:\nwant %#v\ngot  %#v", pre, l.Snapshot())
		}
		for range steps {
			s, err := h.Redo(l.Snapshot())
			if err != nil {
				t.Fatalf("Redo: %v", err)
			}
			l.Restore(s)
		}
		if !l.Snapshot().Equal(post) {
			t.Fatalf("redo did not restore the final state:\nwant %#v\ngot  %#v", post, l.Snapshot())
		}
	})
}
