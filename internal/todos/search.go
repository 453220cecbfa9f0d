package todos

import "strings"

// Search is the transient result of Find. Matches holds item indices in list order and
// Current indexes into Matches.
type Search struct {
	Pattern string
	Matches []int
	Current int
}

func (l *List) Search() (Search, bool) {
	if l.search == nil {
		return Search{}, false
	}
	s := *l.search
	s.Matches = append([]int(nil), s.Matches...)
	return s, true
}

// IsMatch reports whether item i matches the active search.
func (l *List) IsMatch(i int) bool {
	if l.search == nil {
		return false
	}
	for _, m := range l.search.Matches {
		if m == i {
			return true
		}
	}
	return false
}

// Find starts a case-insensitive substring search and moves the cursor to the first match
// after it, wrapping around. An empty pattern clears the search. When nothing matches the
// search stays active (so later edits can produce matches) and ErrNoMatches is returned.
func (l *List) Find(pattern string) error {
	if pattern == "" {
		l.ClearSearch()
		return nil
	}
	l.search = &Search{Pattern: pattern}
	l.refreshSearch()
	if len(l.search.Matches) == 0 {
		return ErrNoMatches
	}
	return l.jump(1)
}

func (l *List) NextMatch() error { return l.jump(1) }

func (l *List) PrevMatch() error { return l.jump(-1) }

func (l *List) ClearSearch() {
	l.search = nil
}

// jump moves the cursor to the nearest match strictly after (dir > 0) or before (dir < 0) the
// cursor, cycling past the ends. The cursor item itself is reached last.
func (l *List) jump(dir int) error {
	if l.search == nil {
		return ErrNoSearch
	}
	m := l.search.Matches
	if len(m) == 0 {
		return ErrNoMatches
	}
	k := -1
	if dir > 0 {
		for j, i := range m {
			if i > l.cursor {
				k = j
				break
			}
		}
		if k < 0 {
			k = 0
		}
	} else {
		for j := len(m) - 1; j >= 0; j-- {
			if m[j] < l.cursor {
				k = j
				break
			}
		}
		if k < 0 {
			k = len(m) - 1
		}
	}
	l.search.Current = k
	l.SetCursor(m[k])
	return nil
}

// refreshSearch recomputes matches after the items changed.
func (l *List) refreshSearch() {
	if l.search == nil {
		return
	}
	needle := strings.ToLower(l.search.Pattern)
	l.search.Matches = l.search.Matches[:0]
	for i, it := range l.items {
		if strings.Contains(strings.ToLower(it.Text), needle) {
			l.search.Matches = append(l.search.Matches, i)
		}
	}
	l.search.Current = 0
	for j, i := range l.search.Matches {
		if i >= l.cursor {
			l.search.Current = j
			break
		}
	}
}
