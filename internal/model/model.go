package model

import "strings"

type Kind int

const (
	KindTodo Kind = iota
	KindNote
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	default:
		return "todo"
	}
}

// Color is the small fixed palette used for an item's glyph or whole-line highlight.
// The numeric values match the classic 8-color terminal palette (red = 1 ... white = 7).
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Colors lists every color that can be assigned by the user, in palette order.
var Colors = []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan, ColorWhite}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "none"
	}
}

// Char returns the single-character marker used in the text file ("" for ColorNone).
func (c Color) Char() string {
	if c == ColorNone || !c.Valid() {
		return ""
	}
	return c.String()[:1]
}

func (c Color) Valid() bool {
	return c >= ColorNone && c <= ColorWhite
}

// ColorFromChar parses a color marker: a lowercase initial (r g y b m c w) or a palette digit.
func ColorFromChar(ch byte) (Color, bool) {
	switch ch {
	case 'r':
		return ColorRed, true
	case 'g':
		return ColorGreen, true
	case 'y':
		return ColorYellow, true
	case 'b':
		return ColorBlue, true
	case 'm':
		return ColorMagenta, true
	case 'c':
		return ColorCyan, true
	case 'w':
		return ColorWhite, true
	}
	if ch >= '0' && ch <= '7' {
		return Color(ch - '0'), true
	}
	return ColorNone, false
}

// ParseColor accepts a color name, its initial, or a palette digit.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" || s == "default" {
		return ColorNone, true
	}
	for _, c := range Colors {
		if s == c.String() {
			return c, true
		}
	}
	if len(s) == 1 {
		return ColorFromChar(s[0])
	}
	return ColorNone, false
}

// Item is one list entry. Hierarchy is not stored as pointers: an item's children are the
// contiguous run of following items with a strictly greater Indent.
type Item struct {
	Text      string `json:"text"`
	Kind      Kind   `json:"kind"`
	Completed bool   `json:"completed"`
	Color     Color  `json:"color"`
	Indent    int    `json:"indent"`
}

func NewTodo(text string) Item {
	return Item{Text: text, Kind: KindTodo}
}

func NewNote(text string) Item {
	return Item{Text: text, Kind: KindNote}
}

func (it Item) IsTodo() bool { return it.Kind == KindTodo }

func (it Item) IsNote() bool { return it.Kind == KindNote }

func (it Item) IsEmpty() bool { return it.Text == "" }

// Toggle flips completion for Todos. Notes are returned unchanged.
func (it Item) Toggle() Item {
	if it.Kind == KindTodo {
		it.Completed = !it.Completed
	}
	return it
}

// ToggleKind converts a Todo into a Note and vice versa. A Note becomes an incomplete Todo.
func (it Item) ToggleKind() Item {
	if it.Kind == KindTodo {
		it.Kind = KindNote
	} else {
		it.Kind = KindTodo
	}
	it.Completed = false
	return it
}

// WithIndent returns the item with its indent shifted by delta, floored at zero.
func (it Item) WithIndent(delta int) Item {
	it.Indent += delta
	if it.Indent < 0 {
		it.Indent = 0
	}
	return it
}

func (it Item) Valid() bool {
	if it.Indent < 0 || !it.Color.Valid() {
		return false
	}
	if it.Kind != KindTodo && it.Kind != KindNote {
		return false
	}
	if it.Kind == KindNote && it.Completed {
		return false
	}
	return !strings.ContainsAny(it.Text, "\r\n")
}

// Normalize coerces an item into a valid one.
func (it Item) Normalize() Item {
	if it.Indent < 0 {
		it.Indent = 0
	}
	if !it.Color.Valid() {
		it.Color = ColorNone
	}
	if it.Kind != KindTodo && it.Kind != KindNote {
		it.Kind = KindTodo
	}
	if it.Kind == KindNote {
		it.Completed = false
	}
	if strings.ContainsAny(it.Text, "\r\n") {
		it.Text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(it.Text)
	}
	return it
}

// ChildrenEnd returns the exclusive end index of the run of children that follows items[i].
func ChildrenEnd(items []Item, i int) int {
	if i < 0 || i >= len(items) {
		return i
	}
	j := i + 1
	for j < len(items) && items[j].Indent > items[i].Indent {
		j++
	}
	return j
}
