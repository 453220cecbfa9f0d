package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ndo-cli/internal/model"
	"ndo-cli/internal/render"
	"ndo-cli/internal/todos"
)

// entryState is the item being edited. For a new item, index is where it will be inserted.
type entryState struct {
	index int
	isNew bool
	draft model.Item
	// orig is the text before editing; an existing item edited down to nothing keeps it.
	orig string
}

func (m appModel) beginNew(at int) (appModel, tea.Cmd) {
	l := m.ed.List
	if at < 0 {
		at = 0
	}
	if at > l.Len() {
		at = l.Len()
	}
	draft := m.newItem()
	if at == 0 {
		draft.Indent = 0
	}
	if !m.setMode(modeEntry) {
		return m, nil
	}
	m.entry = entryState{index: at, isNew: true, draft: draft}
	m.input.Prompt = "> "
	m.input.SetValue("")
	return m, m.input.Focus()
}

// beginEdit edits item index with the text cursor at a rune offset; -1 means the end.
func (m appModel) beginEdit(index, offset int) (appModel, tea.Cmd) {
	it, ok := m.ed.List.Item(index)
	if !ok {
		return m.beginNew(0)
	}
	if !m.setMode(modeEntry) {
		return m, nil
	}
	m.entry = entryState{index: index, draft: it, orig: it.Text}
	m.input.Prompt = "> "
	m.input.SetValue(it.Text)
	if offset < 0 {
		m.input.CursorEnd()
	} else {
		m.input.SetCursor(offset)
	}
	return m, m.input.Focus()
}

func (m appModel) updateEntry(msg tea.KeyMsg) (appModel, tea.Cmd) {
	k := m.ekeys
	switch {
	case key.Matches(msg, k.Commit):
		m, _ = m.commitEntry(false)
		return m, nil
	case key.Matches(msg, k.Cancel):
		m.endEntry()
		return m, nil
	case key.Matches(msg, k.Indent):
		if m.entry.index > 0 {
			m.entry.draft = m.entry.draft.WithIndent(+1)
		}
		return m, nil
	case key.Matches(msg, k.Dedent):
		m.entry.draft = m.entry.draft.WithIndent(-1)
		return m, nil
	case key.Matches(msg, k.ToggleKind):
		m.entry.draft = m.entry.draft.ToggleKind()
		return m, nil
	case key.Matches(msg, k.Split):
		return m.splitEntry()
	case key.Matches(msg, k.Backspace) && m.input.Position() == 0:
		return m.mergeEntry()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *appModel) endEntry() {
	m.input.Blur()
	m.input.SetValue("")
	m.setMode(modeNormal)
}

// entryChange returns the list change that writes the buffer back, or nil when there is
// nothing to write. A new item left empty is not inserted; an existing item edited down to
// nothing keeps its text unless allowEmpty is set. Either way the item ends up at
// entry.index.
func (m appModel) entryChange(allowEmpty bool) func(l *todos.List) error {
	e := m.entry
	it := e.draft
	it.Text = m.input.Value()
	if e.isNew {
		if it.Text == "" && !allowEmpty {
			return nil
		}
		return func(l *todos.List) error { return l.InsertBefore(e.index, it) }
	}
	if it.Text == "" && !allowEmpty {
		it.Text = e.orig
	}
	return func(l *todos.List) error { return l.SetItem(e.index, it) }
}

// commitEntry applies the buffer as one undoable action and returns to Normal mode. It
// reports whether an item was written.
func (m appModel) commitEntry(allowEmpty bool) (appModel, bool) {
	e := m.entry
	change := m.entryChange(allowEmpty)
	m.endEntry()
	if change == nil {
		return m, false
	}
	name := "edit"
	if e.isNew {
		name = "insert"
	}
	err := m.ed.Do(name, change)
	m.report(err)
	if err == nil && !e.isNew {
		m.ed.List.SetCursor(e.index)
	}
	return m, err == nil
}

// splitEntry writes the buffer and cuts it at the text cursor in a single undoable action,
// then continues editing the tail.
func (m appModel) splitEntry() (appModel, tea.Cmd) {
	pos := m.input.Position()
	if m.entry.isNew && m.input.Value() == "" {
		return m, nil
	}
	idx := m.entry.index
	change := m.entryChange(true)
	m.endEntry()
	err := m.ed.Do("split", func(l *todos.List) error {
		if err := change(l); err != nil {
			return err
		}
		return l.Split(idx, pos)
	})
	if err != nil {
		m.report(err)
		return m, nil
	}
	return m.beginEdit(m.ed.List.Cursor(), 0)
}

// mergeEntry handles backspace at the start of the buffer: the item is written and merged
// into the one above as one undoable action, and editing continues there at the join point.
func (m appModel) mergeEntry() (appModel, tea.Cmd) {
	if m.entry.index == 0 {
		return m, nil
	}
	if m.entry.isNew && m.input.Value() == "" {
		prev := m.entry.index - 1
		m.endEntry()
		return m.beginEdit(prev, -1)
	}
	idx := m.entry.index
	change := m.entryChange(true)
	m.endEntry()
	var offset int
	err := m.ed.Do("merge", func(l *todos.List) error {
		if err := change(l); err != nil {
			return err
		}
		var err error
		offset, err = l.MergeWithPrevious(idx)
		return err
	})
	if err != nil {
		m.report(err)
		return m, nil
	}
	return m.beginEdit(m.ed.List.Cursor(), offset)
}

func (m appModel) beginSearch() (appModel, tea.Cmd) {
	if !m.setMode(modeSearch) {
		return m, nil
	}
	m.input.Prompt = "/"
	m.input.SetValue("")
	if s, ok := m.ed.List.Search(); ok {
		m.input.SetValue(s.Pattern)
		m.input.CursorEnd()
	}
	return m, m.input.Focus()
}

func (m appModel) updateSearch(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		pattern := m.input.Value()
		m.input.Blur()
		m.setMode(modeNormal)
		m.report(m.ed.List.Find(pattern))
		return m, nil
	case "esc", "ctrl+c":
		m.input.Blur()
		m.setMode(modeNormal)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// renderState is the list as it should be drawn, including an in-progress edit.
func (m appModel) renderState() render.State {
	st := render.FromList(m.ed.List)
	if m.mode != modeEntry {
		return st
	}
	it := m.entry.draft
	it.Text = m.input.Value()
	if m.entry.isNew {
		items := slices.Insert(st.Items, m.entry.index, it)
		return render.State{Items: items, Cursor: m.entry.index}
	}
	if m.entry.index < len(st.Items) {
		st.Items[m.entry.index] = it
	}
	st.Cursor = m.entry.index
	st.Selection = nil
	return st
}
