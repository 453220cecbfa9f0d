// Package render projects a list onto a fixed-size grid of styled cells.
//
// Render is a pure function of its inputs: it never touches the list and can be called at any
// time. Painting the grid onto a terminal is the caller's job.
package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"ndo-cli/internal/model"
	"ndo-cli/internal/todos"
)

type Numbering int

const (
	NumberingNone Numbering = iota
	NumberingAbsolute
	NumberingRelative
)

type Config struct {
	// IndentWidth is the number of columns per indent level.
	IndentWidth   int
	Numbering     Numbering
	Strikethrough bool
	SimpleGlyphs  bool
	// BulletTodos draws Todos as bullets (checkmarks when completed) instead of boxes.
	BulletTodos bool
	NoteBullets bool
	// ScrollMargin is the number of context rows kept above and below the cursor item when
	// scrolling. Zero scrolls by the minimal amount; a negative value selects a quarter of the
	// viewport height.
	ScrollMargin int
}

func DefaultConfig() Config {
	return Config{IndentWidth: 2, NoteBullets: true}
}

type Attr struct {
	Color     model.Color
	Reverse   bool
	Strike    bool
	Bold      bool
	Faint     bool
	Underline bool
}

// Cell is one terminal column. A wide rune occupies its cell and the next one; the second
// cell has Rune 0 and must not be painted.
type Cell struct {
	Rune rune
	Attr Attr
}

// State is the part of the list the renderer reads.
type State struct {
	Items []model.Item
	// Cursor is the highlighted item; a negative value draws no cursor.
	Cursor    int
	Selection []int
	Matches   []int
}

func FromList(l *todos.List) State {
	st := State{Items: l.Items(), Cursor: l.Cursor(), Selection: l.Selection()}
	if s, ok := l.Search(); ok {
		st.Matches = s.Matches
	}
	return st
}

type Frame struct {
	Rows [][]Cell
	// RowItems maps each screen row to its item index, or -1 for rows without an item.
	RowItems []int
	// CursorRow is the screen row of the cursor item's first row, -1 when it is off screen.
	CursorRow int
	// CursorCol is the column where the cursor item's text starts.
	CursorCol int
	Offset    int
	TotalRows int
}

// Line returns the text of screen row i with trailing blanks removed.
func (f Frame) Line(i int) string {
	if i < 0 || i >= len(f.Rows) {
		return ""
	}
	var b strings.Builder
	for _, c := range f.Rows[i] {
		if c.Rune != 0 {
			b.WriteRune(c.Rune)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func (f Frame) String() string {
	lines := make([]string, len(f.Rows))
	for i := range f.Rows {
		lines[i] = f.Line(i)
	}
	return strings.Join(lines, "\n")
}

type row struct {
	item  int
	first bool
	text  string
}

var welcome = []string{
	"ndo - a keyboard-driven todo list",
	"",
	"Press o to add a new item",
	"Press h to view the help menu",
}

// Render lays out st into a width x height grid, scrolled so the cursor item is visible.
// offset is the previous frame's Offset; the new one moves from it as little as possible.
// A height of zero or less renders every row with no scrolling.
func Render(st State, cfg Config, width, height, offset int) Frame {
	if cfg.IndentWidth < 1 {
		cfg.IndentWidth = 2
	}
	f := Frame{CursorRow: -1}
	if width < 1 {
		return f
	}
	g := glyphsFor(cfg)

	if len(st.Items) == 0 {
		if height <= 0 {
			return f
		}
		f.Rows, f.RowItems = blankRows(width, height)
		top := height / 3
		for i, line := range welcome {
			if top+i >= height {
				break
			}
			col := max(0, (width-runewidth.StringWidth(line))/2)
			putString(f.Rows[top+i], col, line, Attr{})
		}
		return f
	}

	cursor := min(st.Cursor, len(st.Items)-1)
	active := make([]bool, len(st.Items))
	if cursor >= 0 {
		active[cursor] = true
	}
	for _, i := range st.Selection {
		if i >= 0 && i < len(st.Items) {
			active[i] = true
		}
	}
	matched := make([]bool, len(st.Items))
	for _, i := range st.Matches {
		if i >= 0 && i < len(st.Items) {
			matched[i] = true
		}
	}

	numW := 0
	if cfg.Numbering != NumberingNone {
		numW = len(strconv.Itoa(len(st.Items))) + 1
	}

	var rows []row
	cs, ce := 0, 0
	for i, it := range st.Items {
		if i == cursor {
			cs = len(rows)
		}
		lead := it.Indent * cfg.IndentWidth
		if m := g.marker(it, cfg); m != "" {
			lead += runewidth.StringWidth(m) + 1
		}
		avail := width - numW - lead
		if it.IsEmpty() || avail < 1 {
			rows = append(rows, row{item: i, first: true, text: it.Text})
		} else {
			for k, line := range wrapText(it.Text, avail) {
				rows = append(rows, row{item: i, first: k == 0, text: line})
			}
		}
		if i == cursor {
			ce = len(rows)
		}
	}
	f.TotalRows = len(rows)

	if height <= 0 {
		height = len(rows)
		offset = 0
	} else {
		offset = scroll(offset, cs, ce, len(rows), height, cfg.ScrollMargin)
	}
	f.Offset = offset
	f.Rows, f.RowItems = blankRows(width, height)

	for y := 0; y < height && offset+y < len(rows); y++ {
		r := rows[offset+y]
		it := st.Items[r.item]
		cells := f.Rows[y]
		f.RowItems[y] = r.item

		if numW > 0 && r.first {
			putString(cells, 0, number(r.item, cursor, numW-1, cfg.Numbering), Attr{Faint: r.item != cursor, Bold: r.item == cursor})
		}
		col := numW + it.Indent*cfg.IndentWidth
		m := g.marker(it, cfg)
		if m != "" {
			col += runewidth.StringWidth(m) + 1
		}
		if r.item == cursor && r.first {
			f.CursorRow = y
			f.CursorCol = min(col, width-1)
		}
		if it.IsEmpty() && active[r.item] {
			putString(cells, numW, strings.Repeat(string(g.rule), max(0, width-numW-1)), Attr{Color: it.Color})
			continue
		}

		base := Attr{Color: it.Color, Reverse: active[r.item]}
		if m != "" && r.first {
			putString(cells, numW+it.Indent*cfg.IndentWidth, m+" ", base)
		}
		text := base
		text.Strike = cfg.Strikethrough && it.IsTodo() && it.Completed
		text.Bold = cfg.BulletTodos && it.IsNote() && strings.HasPrefix(it.Text, "#")
		text.Underline = matched[r.item]
		putString(cells, col, r.text, text)
	}
	return f
}

func number(i, cursor, width int, mode Numbering) string {
	n := i + 1
	if mode == NumberingRelative && i != cursor {
		n = i - cursor
		if n < 0 {
			n = -n
		}
	}
	s := strconv.Itoa(n)
	pad := strings.Repeat(" ", max(0, width-len(s)))
	if i == cursor {
		return s + pad
	}
	return pad + s
}

// scroll returns the offset closest to prev that shows rows [cs, ce) with margin rows of
// context on each side where the viewport allows it.
func scroll(prev, cs, ce, total, height, margin int) int {
	if total <= height {
		return 0
	}
	if margin < 0 {
		margin = height / 4
	}
	span := ce - cs
	if span+2*margin > height {
		margin = max(0, (height-span)/2)
	}
	off := prev
	if span >= height {
		off = cs
	} else {
		if cs-margin < off {
			off = cs - margin
		}
		if ce+margin > off+height {
			off = ce + margin - height
		}
	}
	return max(0, min(off, total-height))
}

func blankRows(width, height int) ([][]Cell, []int) {
	rows := make([][]Cell, height)
	items := make([]int, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
		for x := range rows[y] {
			rows[y][x] = Cell{Rune: ' '}
		}
		items[y] = -1
	}
	return rows, items
}

// putString writes s starting at col and returns the column after it. Output is clipped at
// the row's end; a wide rune that would straddle the edge is dropped.
func putString(cells []Cell, col int, s string, a Attr) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > len(cells) {
			return len(cells)
		}
		cells[col] = Cell{Rune: r, Attr: a}
		if w == 2 {
			cells[col+1] = Cell{Rune: 0, Attr: a}
		}
		col += w
	}
	return col
}
