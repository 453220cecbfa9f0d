package tui

import (
	"errors"
	"fmt"
	"strings"

	"ndo-cli/internal/clipboard"
	"ndo-cli/internal/format"
	"ndo-cli/internal/model"
	"ndo-cli/internal/todos"
)

// copyActive puts the active items on the clipboard in file format, shifted so the
// shallowest of them has no indent. It reports whether anything was copied.
func (m *appModel) copyActive() bool {
	l := m.ed.List
	idx := l.Active()
	if len(idx) == 0 {
		m.report(todos.ErrEmptyList)
		return false
	}
	items := make([]model.Item, 0, len(idx))
	for _, i := range idx {
		it, _ := l.Item(i)
		items = append(items, it)
	}
	text := format.EncodeLines(rebase(items, 0), m.indentWidth())
	if err := m.clip.WriteText(text); err != nil {
		m.showError("clipboard: " + err.Error())
		// Fallback keeps an in-process copy, so a cut is still safe.
		_, kept := m.clip.(*clipboard.Fallback)
		return kept
	}
	m.showMinibuffer(fmt.Sprintf("copied %d %s", len(items), plural(len(items), "item")))
	return true
}

// paste inserts clipboard lines after the cursor, re-based to the cursor item's indent.
func (m *appModel) paste() {
	text, err := m.clip.ReadText()
	if err != nil {
		if errors.Is(err, clipboard.ErrEmpty) {
			m.showMinibuffer("clipboard is empty")
			return
		}
		m.showError("clipboard: " + err.Error())
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	items, warnings := format.DecodeLines(text, m.indentWidth())
	if len(items) == 0 {
		m.showMinibuffer("clipboard is empty")
		return
	}
	l := m.ed.List
	after, base := -1, 0
	if it, ok := l.CursorItem(); ok {
		after, base = l.Cursor(), it.Indent
	}
	items = rebase(items, base)
	m.do("paste", func(l *todos.List) error { return l.InsertAfter(after, items...) })
	if len(warnings) > 0 {
		m.log.Debug("paste: malformed lines", "count", len(warnings))
	}
}

func (m appModel) indentWidth() int {
	if m.file != nil {
		return m.file.IndentWidth
	}
	return format.DefaultIndentWidth
}

// rebase shifts items so that the shallowest one sits at indent base.
func rebase(items []model.Item, base int) []model.Item {
	if len(items) == 0 {
		return items
	}
	lo := items[0].Indent
	for _, it := range items[1:] {
		lo = min(lo, it.Indent)
	}
	out := make([]model.Item, len(items))
	for i, it := range items {
		out[i] = it.WithIndent(base - lo)
	}
	return out
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
