// Package todos holds the in-memory list: items, cursor, multi-selection and search state.
//
// Every mutating operation validates its arguments first and leaves the list untouched when
// it returns an error. None of them record history; callers frame them (see package editor).
package todos

import (
	"slices"

	"ndo-cli/internal/history"
	"ndo-cli/internal/model"
)

type List struct {
	items     []model.Item
	cursor    int
	selection []int // sorted, unique; may or may not contain the cursor
	anchor    int
	search    *Search
}

// New returns a list holding a normalized copy of items with the cursor on the first item.
func New(items []model.Item) *List {
	l := &List{}
	l.items = make([]model.Item, 0, len(items))
	for _, it := range items {
		l.items = append(l.items, it.Normalize())
	}
	l.normalize()
	return l
}

func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the items.
func (l *List) Items() []model.Item {
	return slices.Clone(l.items)
}

func (l *List) Item(i int) (model.Item, bool) {
	if i < 0 || i >= len(l.items) {
		return model.Item{}, false
	}
	return l.items[i], true
}

func (l *List) Cursor() int { return l.cursor }

// CursorItem returns the item under the cursor; ok is false when the list is empty.
func (l *List) CursorItem() (model.Item, bool) {
	return l.Item(l.cursor)
}

func (l *List) Selection() []int { return slices.Clone(l.selection) }

func (l *List) Selected(i int) bool {
	_, ok := slices.BinarySearch(l.selection, i)
	return ok
}

// Active returns the indices a command applies to: the selection plus the cursor, sorted.
func (l *List) Active() []int {
	if len(l.items) == 0 {
		return nil
	}
	out := slices.Clone(l.selection)
	if !l.Selected(l.cursor) {
		out = append(out, l.cursor)
		slices.Sort(out)
	}
	return out
}

// IsActive reports whether i is the cursor or part of the selection.
func (l *List) IsActive(i int) bool {
	return len(l.items) > 0 && (i == l.cursor || l.Selected(i))
}

func (l *List) Snapshot() history.Snapshot {
	return history.Snapshot{Items: l.items, Cursor: l.cursor, Selection: l.selection}.Clone()
}

// Restore replaces the whole state with s. The search, if any, is recomputed.
func (l *List) Restore(s history.Snapshot) {
	s = s.Clone()
	l.items = s.Items
	l.cursor = s.Cursor
	l.selection = s.Selection
	l.normalize()
	l.anchor = l.cursor
	l.refreshSearch()
}

// Replace swaps in a new item sequence (an external reload), keeping the cursor position
// where possible and dropping the selection.
func (l *List) Replace(items []model.Item) {
	l.items = make([]model.Item, 0, len(items))
	for _, it := range items {
		l.items = append(l.items, it.Normalize())
	}
	l.selection = nil
	l.normalize()
	l.anchor = l.cursor
	l.refreshSearch()
}

func (l *List) SetCursor(i int) {
	l.cursor = l.clampIndex(i)
	l.anchor = l.cursor
	l.selection = nil
}

func (l *List) MoveCursor(delta int) {
	l.SetCursor(l.cursor + delta)
}

// StepCursor moves the cursor without touching the selection.
func (l *List) StepCursor(delta int) {
	l.cursor = l.clampIndex(l.cursor + delta)
	l.anchor = l.cursor
}

// ExtendSelection moves the cursor by delta and selects the contiguous range between the
// anchor and the new cursor.
func (l *List) ExtendSelection(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.cursor = l.clampIndex(l.cursor + delta)
	lo, hi := min(l.anchor, l.cursor), max(l.anchor, l.cursor)
	l.selection = l.selection[:0]
	for i := lo; i <= hi; i++ {
		l.selection = append(l.selection, i)
	}
	if len(l.selection) == 1 {
		l.selection = nil
	}
}

func (l *List) SelectAll() {
	l.selection = nil
	for i := range l.items {
		l.selection = append(l.selection, i)
	}
}

func (l *List) ClearSelection() {
	l.selection = nil
	l.anchor = l.cursor
}

// ToggleSelected adds i to or removes it from the selection.
func (l *List) ToggleSelected(i int) error {
	if err := l.checkIndex("select", i); err != nil {
		return err
	}
	if pos, ok := slices.BinarySearch(l.selection, i); ok {
		l.selection = slices.Delete(l.selection, pos, pos+1)
	} else {
		l.selection = slices.Insert(l.selection, pos, i)
	}
	return nil
}

func (l *List) clampIndex(i int) int {
	if len(l.items) == 0 {
		return 0
	}
	return max(0, min(i, len(l.items)-1))
}

func (l *List) checkIndex(op string, i int) error {
	if len(l.items) == 0 {
		return ErrEmptyList
	}
	if i < 0 || i >= len(l.items) {
		return OutOfRangeError{Op: op, Index: i, Len: len(l.items)}
	}
	return nil
}

// targets validates indices and returns them sorted without duplicates.
func (l *List) targets(op string, indices []int) ([]int, error) {
	if len(l.items) == 0 {
		return nil, ErrEmptyList
	}
	for _, i := range indices {
		if err := l.checkIndex(op, i); err != nil {
			return nil, err
		}
	}
	out := slices.Clone(indices)
	slices.Sort(out)
	return slices.Compact(out), nil
}

// normalize re-establishes the structural invariants after any change to items.
func (l *List) normalize() {
	if len(l.items) > 0 {
		l.items[0].Indent = 0
	}
	l.cursor = l.clampIndex(l.cursor)
	l.anchor = l.clampIndex(l.anchor)
	if len(l.selection) > 0 {
		kept := l.selection[:0]
		for _, i := range l.selection {
			if i >= 0 && i < len(l.items) {
				kept = append(kept, i)
			}
		}
		slices.Sort(kept)
		l.selection = slices.Compact(kept)
		if len(l.selection) == 0 {
			l.selection = nil
		}
	}
}

// remap moves cursor, selection and anchor through a permutation where pos[old] = new.
func (l *List) remap(pos []int) {
	l.cursor = pos[l.cursor]
	l.anchor = pos[l.anchor]
	for k, i := range l.selection {
		l.selection[k] = pos[i]
	}
	slices.Sort(l.selection)
}
