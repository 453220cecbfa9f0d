package todos

import (
	"cmp"
	"slices"

	"ndo-cli/internal/model"
)

type SortKey int

const (
	SortByCompletion SortKey = iota
	SortByColor
	SortByText
	SortReverse
)

// SortKeys lists the keys in menu order.
var SortKeys = []SortKey{SortByText, SortByCompletion, SortByColor, SortReverse}

func (k SortKey) String() string {
	switch k {
	case SortByCompletion:
		return "Completed last"
	case SortByColor:
		return "Color"
	case SortByText:
		return "Alphabetical"
	case SortReverse:
		return "Reverse"
	default:
		return "unknown"
	}
}

func (k SortKey) compare(a, b model.Item) int {
	switch k {
	case SortByCompletion:
		return cmp.Compare(completionRank(a), completionRank(b))
	case SortByColor:
		return cmp.Compare(a.Color, b.Color)
	case SortByText:
		return cmp.Compare(a.Text, b.Text)
	}
	return 0
}

func completionRank(it model.Item) int {
	if it.IsTodo() && it.Completed {
		return 1
	}
	return 0
}

type section struct {
	start, end int
}

// Sort reorders sections of the list by key. With fewer than two indices the whole list is
// sorted; otherwise the range runs from the smallest index to the end of the largest index's
// children. A section is an item at the range's minimum indent plus the deeper run after it.
// Deeper items at the very start of the range belong to no section and stay in place.
// Sections with equal keys keep their relative order.
func (l *List) Sort(indices []int, key SortKey) error {
	if len(l.items) == 0 {
		return ErrEmptyList
	}
	lo, hi := 0, len(l.items)
	if len(indices) >= 2 {
		ts, err := l.targets("sort", indices)
		if err != nil {
			return err
		}
		if len(ts) >= 2 {
			lo, hi = ts[0], 0
			for _, t := range ts {
				hi = max(hi, model.ChildrenEnd(l.items, t))
			}
		}
	} else if len(indices) == 1 {
		if err := l.checkIndex("sort", indices[0]); err != nil {
			return err
		}
	}

	minIndent := l.items[lo].Indent
	for i := lo; i < hi; i++ {
		minIndent = min(minIndent, l.items[i].Indent)
	}
	var secs []section
	pinned := lo
	for i := lo; i < hi; i++ {
		if l.items[i].Indent != minIndent {
			continue
		}
		if len(secs) > 0 {
			secs[len(secs)-1].end = i
		} else {
			pinned = i
		}
		secs = append(secs, section{start: i, end: hi})
	}

	if key == SortReverse {
		slices.Reverse(secs)
	} else {
		slices.SortStableFunc(secs, func(a, b section) int {
			return key.compare(l.items[a.start], l.items[b.start])
		})
	}

	n := len(l.items)
	pos := make([]int, n)
	for i := range pos {
		pos[i] = i
	}
	sorted := slices.Clone(l.items)
	p := pinned
	for _, s := range secs {
		for i := s.start; i < s.end; i++ {
			sorted[p] = l.items[i]
			pos[i] = p
			p++
		}
	}
	l.items = sorted
	l.remap(pos)
	l.normalize()
	l.refreshSearch()
	return nil
}
