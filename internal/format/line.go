package format

import (
	"errors"
	"fmt"
	"strings"

	"ndo-cli/internal/model"
)

// DefaultIndentWidth is the number of spaces that make up one indent level on disk.
const DefaultIndentWidth = 2

// Line layout:
//
//	<indent><marker>[<color>] <text>
//
// where marker is '-' (todo), '+' (completed todo) or '*' (note). Notes are normally
// written without a marker; '*' is only emitted when the bare text would decode differently.
const (
	markTodo = '-'
	markDone = '+'
	markNote = '*'
)

var ErrMalformedLine = errors.New("malformed line")

// MalformedLineError is returned alongside a usable (degraded) item.
type MalformedLineError struct {
	Text   string
	Reason string
}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %q: %s", e.Text, e.Reason)
}

func (e MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// DecodeLine parses one persisted line. When the line is malformed the returned item is
// still usable: it is a default-colored Note carrying the raw text.
func DecodeLine(line string, indentWidth int) (model.Item, error) {
	if indentWidth < 1 {
		indentWidth = DefaultIndentWidth
	}
	line = strings.TrimSuffix(line, "\r")

	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	rest := line[n:]
	indent := n / indentWidth

	var err error
	if n%indentWidth != 0 {
		err = MalformedLineError{Text: line, Reason: fmt.Sprintf("indentation of %d spaces is not a multiple of %d", n, indentWidth)}
	}

	if it, ok := decodeMarked(rest); ok {
		it.Indent = indent
		return it, err
	}
	// Digits are only color markers after a type marker; "3 eggs" is a plain note.
	if err == nil && len(rest) >= 2 && rest[1] == ' ' && strings.IndexByte("rgybmcw", rest[0]) >= 0 {
		err = MalformedLineError{Text: line, Reason: "color marker without a todo or note marker"}
	}
	return model.Item{Text: rest, Kind: model.KindNote, Indent: indent}, err
}

func decodeMarked(rest string) (model.Item, bool) {
	if rest == "" {
		return model.Item{Kind: model.KindNote}, true
	}
	var it model.Item
	switch rest[0] {
	case markTodo:
		it.Kind = model.KindTodo
	case markDone:
		it.Kind = model.KindTodo
		it.Completed = true
	case markNote:
		it.Kind = model.KindNote
	default:
		return model.Item{}, false
	}

	body := rest[1:]
	if body == "" {
		return it, true
	}
	if body[0] == ' ' {
		it.Text = body[1:]
		return it, true
	}
	if c, ok := model.ColorFromChar(body[0]); ok && (len(body) == 1 || body[1] == ' ') {
		it.Color = c
		if len(body) > 1 {
			it.Text = body[2:]
		}
		return it, true
	}
	return model.Item{}, false
}

// EncodeLine renders an item in canonical form.
func EncodeLine(it model.Item, indentWidth int) string {
	if indentWidth < 1 {
		indentWidth = DefaultIndentWidth
	}
	indent := it.Indent
	if indent < 0 {
		indent = 0
	}
	prefix := strings.Repeat(" ", indent*indentWidth)

	if it.Kind == model.KindNote {
		if it.Color == model.ColorNone {
			plain := prefix + it.Text
			if got, err := DecodeLine(plain, indentWidth); err == nil && got == it {
				return plain
			}
		}
		return prefix + encodeMarked(markNote, it)
	}
	mark := byte(markTodo)
	if it.Completed {
		mark = markDone
	}
	return prefix + encodeMarked(mark, it)
}

func encodeMarked(mark byte, it model.Item) string {
	var b strings.Builder
	b.WriteByte(mark)
	b.WriteString(it.Color.Char())
	if it.Text != "" {
		b.WriteByte(' ')
		b.WriteString(it.Text)
	}
	return b.String()
}

// DecodeLines parses a whole file. Malformed lines are reported with their 1-based line
// number but never stop the load.
func DecodeLines(data string, indentWidth int) ([]model.Item, []error) {
	if data == "" {
		return nil, nil
	}
	data = strings.TrimSuffix(data, "\n")
	lines := strings.Split(data, "\n")
	items := make([]model.Item, 0, len(lines))
	var errs []error
	for i, line := range lines {
		it, err := DecodeLine(line, indentWidth)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", i+1, err))
		}
		items = append(items, it)
	}
	return items, errs
}

// EncodeLines renders items one per line, each terminated by a newline.
func EncodeLines(items []model.Item, indentWidth int) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(EncodeLine(it, indentWidth))
		b.WriteByte('\n')
	}
	return b.String()
}
