package todos

import (
	"slices"
	"strings"

	"ndo-cli/internal/model"
)

type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// InsertAfter inserts items after index; -1 inserts at the front (the only valid index on an
// empty list). The cursor lands on the first inserted item.
func (l *List) InsertAfter(index int, items ...model.Item) error {
	if index < -1 || index >= len(l.items) {
		return OutOfRangeError{Op: "insert", Index: index, Len: len(l.items)}
	}
	l.insertAt(index+1, items)
	return nil
}

// InsertBefore inserts items before index; index == Len() appends.
func (l *List) InsertBefore(index int, items ...model.Item) error {
	if index < 0 || index > len(l.items) {
		return OutOfRangeError{Op: "insert", Index: index, Len: len(l.items)}
	}
	l.insertAt(index, items)
	return nil
}

func (l *List) insertAt(pos int, items []model.Item) {
	if len(items) == 0 {
		return
	}
	norm := make([]model.Item, len(items))
	for i, it := range items {
		norm[i] = it.Normalize()
	}
	l.items = slices.Insert(l.items, pos, norm...)
	l.cursor = pos
	l.anchor = pos
	l.selection = nil
	l.normalize()
	l.refreshSearch()
}

// Delete removes every index in indices. A surviving cursor item keeps the cursor; otherwise
// the cursor moves to the first survivor after it, or to the last item.
func (l *List) Delete(indices []int) error {
	ts, err := l.targets("delete", indices)
	if err != nil {
		return err
	}
	gone := make([]bool, len(l.items))
	for _, i := range ts {
		gone[i] = true
	}
	next := -1
	for i := l.cursor; i < len(l.items); i++ {
		if !gone[i] {
			next = i
			break
		}
	}

	kept := make([]model.Item, 0, len(l.items)-len(ts))
	newCursor := -1
	for i, it := range l.items {
		if gone[i] {
			continue
		}
		if i == next {
			newCursor = len(kept)
		}
		kept = append(kept, it)
	}
	if newCursor < 0 {
		newCursor = len(kept) - 1
	}
	l.items = kept
	l.cursor = max(newCursor, 0)
	l.anchor = l.cursor
	l.selection = nil
	l.normalize()
	l.refreshSearch()
	return nil
}

// ToggleComplete flips completion of the Todos among indices. Notes are skipped.
func (l *List) ToggleComplete(indices []int) error {
	ts, err := l.targets("toggle", indices)
	if err != nil {
		return err
	}
	for _, i := range ts {
		l.items[i] = l.items[i].Toggle()
	}
	return nil
}

func (l *List) ToggleKind(indices []int) error {
	ts, err := l.targets("toggle kind", indices)
	if err != nil {
		return err
	}
	for _, i := range ts {
		l.items[i] = l.items[i].ToggleKind()
	}
	return nil
}

func (l *List) SetColor(indices []int, c model.Color) error {
	ts, err := l.targets("color", indices)
	if err != nil {
		return err
	}
	if !c.Valid() {
		c = model.ColorNone
	}
	for _, i := range ts {
		l.items[i].Color = c
	}
	return nil
}

// Indent shifts each target by delta levels, floored at zero. The first item never indents.
func (l *List) Indent(indices []int, delta int) error {
	ts, err := l.targets("indent", indices)
	if err != nil {
		return err
	}
	for _, i := range ts {
		if i == 0 && delta > 0 {
			continue
		}
		l.items[i] = l.items[i].WithIndent(delta)
	}
	l.normalize()
	return nil
}

func (l *List) SetText(index int, text string) error {
	if err := l.checkIndex("edit", index); err != nil {
		return err
	}
	it := l.items[index]
	it.Text = text
	l.items[index] = it.Normalize()
	l.refreshSearch()
	return nil
}

// SetItem overwrites the item at index.
func (l *List) SetItem(index int, it model.Item) error {
	if err := l.checkIndex("edit", index); err != nil {
		return err
	}
	l.items[index] = it.Normalize()
	l.normalize()
	l.refreshSearch()
	return nil
}

// Move shifts the targets, each carrying its children, count positions in dir. Contiguous
// targets move as one block. Nothing moves when any block would leave the list.
func (l *List) Move(indices []int, dir Direction, count int) error {
	ts, err := l.targets("move", indices)
	if err != nil {
		return err
	}
	if count <= 0 || len(ts) == 0 {
		return nil
	}
	n := len(l.items)
	marked := make([]bool, n)
	for _, t := range ts {
		for i := t; i < model.ChildrenEnd(l.items, t); i++ {
			marked[i] = true
		}
	}
	first, last := slices.Index(marked, true), n-1
	for !marked[last] {
		last--
	}
	if dir == Up && first-count < 0 || dir != Up && last+count >= n {
		return ErrMoveOutOfBounds
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for range count {
		for s := 0; s < n; {
			if !marked[s] {
				s++
				continue
			}
			e := s
			for e+1 < n && marked[e+1] {
				e++
			}
			if dir == Up {
				rotateLeft(order[s-1 : e+1])
				rotateLeft(marked[s-1 : e+1])
			} else {
				rotateRight(order[s : e+2])
				rotateRight(marked[s : e+2])
				e++
			}
			s = e + 1
		}
	}

	moved := make([]model.Item, n)
	pos := make([]int, n)
	for p, old := range order {
		moved[p] = l.items[old]
		pos[old] = p
	}
	l.items = moved
	l.remap(pos)
	l.normalize()
	l.refreshSearch()
	return nil
}

func rotateLeft[T any](s []T) {
	if len(s) < 2 {
		return
	}
	first := s[0]
	copy(s, s[1:])
	s[len(s)-1] = first
}

func rotateRight[T any](s []T) {
	if len(s) < 2 {
		return
	}
	last := s[len(s)-1]
	copy(s[1:], s[:len(s)-1])
	s[0] = last
}

// MergeWithPrevious appends the text of item index to the item above it and removes it.
// It returns the rune offset in the merged text where the appended part starts.
func (l *List) MergeWithPrevious(index int) (int, error) {
	if err := l.checkIndex("merge", index); err != nil {
		return 0, err
	}
	if index == 0 {
		return 0, ErrNoPrevious
	}
	prev := l.items[index-1]
	offset := len([]rune(prev.Text))
	prev.Text += l.items[index].Text
	l.items[index-1] = prev
	l.items = slices.Delete(l.items, index, index+1)
	l.cursor = index - 1
	l.anchor = l.cursor
	l.selection = nil
	l.normalize()
	l.refreshSearch()
	return offset, nil
}

// JoinWithPrevious joins the targets, in order, onto the item above the first of them,
// separating non-empty parts with a single space.
func (l *List) JoinWithPrevious(indices []int) error {
	ts, err := l.targets("join", indices)
	if err != nil || len(ts) == 0 {
		return err
	}
	if ts[0] == 0 {
		return ErrNoPrevious
	}
	dst := ts[0] - 1
	for _, i := range ts {
		if i == dst {
			continue
		}
		l.items[dst].Text = joinText(l.items[dst].Text, l.items[i].Text)
	}
	gone := make(map[int]bool, len(ts))
	for _, i := range ts {
		gone[i] = true
	}
	kept := l.items[:0:0]
	for i, it := range l.items {
		if !gone[i] {
			kept = append(kept, it)
		}
	}
	l.items = kept
	l.cursor = dst
	l.anchor = dst
	l.selection = nil
	l.normalize()
	l.refreshSearch()
	return nil
}

func joinText(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return strings.TrimRight(a, " ") + " " + strings.TrimLeft(b, " ")
}

// Split cuts the text of item index at a rune offset. The tail becomes a new item right after
// it with the same indent and color; the tail is an incomplete Todo when the original was a
// Todo. The cursor moves to the new item.
func (l *List) Split(index, offset int) error {
	if err := l.checkIndex("split", index); err != nil {
		return err
	}
	it := l.items[index]
	r := []rune(it.Text)
	if offset < 0 || offset > len(r) {
		return OutOfRangeError{Op: "split", Index: offset, Len: len(r)}
	}
	head, tail := it, it
	head.Text = string(r[:offset])
	tail.Text = string(r[offset:])
	tail.Completed = false
	l.items[index] = head
	l.items = slices.Insert(l.items, index+1, tail)
	l.cursor = index + 1
	l.anchor = l.cursor
	l.selection = nil
	l.normalize()
	l.refreshSearch()
	return nil
}
