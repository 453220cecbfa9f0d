package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ndo-cli/internal/history"
	"ndo-cli/internal/model"
	"ndo-cli/internal/todos"
)

func (m appModel) updateNormal(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if r := msg.Runes; msg.Type == tea.KeyRunes && !msg.Alt && len(r) == 1 && r[0] >= '0' && r[0] <= '9' {
		if m.count*10+int(r[0]-'0') <= maxCount {
			m.count = m.count*10 + int(r[0]-'0')
		}
		return m, nil
	}
	if !key.Matches(msg, m.keys.Quit) {
		m.quitArmed = false
	}
	l := m.ed.List
	k := m.keys

	switch {
	case key.Matches(msg, k.Down):
		l.MoveCursor(m.takeCount(1))
	case key.Matches(msg, k.Up):
		l.MoveCursor(-m.takeCount(1))
	case key.Matches(msg, k.Top):
		l.SetCursor(m.takeCount(1) - 1)
	case key.Matches(msg, k.Bottom):
		l.SetCursor(m.takeCount(l.Len()) - 1)
	case key.Matches(msg, k.ExtendDown):
		l.ExtendSelection(m.takeCount(1))
	case key.Matches(msg, k.ExtendUp):
		l.ExtendSelection(-m.takeCount(1))
	case key.Matches(msg, k.ExtendTop):
		m.count = 0
		l.ExtendSelection(-l.Len())
	case key.Matches(msg, k.ExtendBottom):
		m.count = 0
		l.ExtendSelection(l.Len())
	case key.Matches(msg, k.ToggleSelect):
		m.count = 0
		if err := l.ToggleSelected(l.Cursor()); err != nil {
			m.report(err)
			break
		}
		l.StepCursor(1)
	case key.Matches(msg, k.SelectAll):
		m.count = 0
		l.SelectAll()
	case key.Matches(msg, k.Escape):
		m.count = 0
		l.ClearSelection()
		l.ClearSearch()
		m.clearMinibuffer()

	case key.Matches(msg, k.NewBelow):
		m.count = 0
		return m.beginNew(l.Cursor() + 1)
	case key.Matches(msg, k.NewAbove):
		m.count = 0
		return m.beginNew(l.Cursor())
	case key.Matches(msg, k.EditEnd):
		m.count = 0
		return m.beginEdit(l.Cursor(), -1)
	case key.Matches(msg, k.EditStart):
		m.count = 0
		return m.beginEdit(l.Cursor(), 0)
	case key.Matches(msg, k.Enter):
		m.count = 0
		it, ok := l.CursorItem()
		if !ok || it.IsNote() {
			return m.beginNew(l.Cursor() + 1)
		}
		m.do("toggle", func(l *todos.List) error { return l.ToggleComplete(l.Active()) })
	case key.Matches(msg, k.Blank):
		m.count = 0
		it := m.newItem()
		m.do("insert", func(l *todos.List) error {
			if l.Len() == 0 {
				return l.InsertAfter(-1, it)
			}
			return l.InsertAfter(l.Cursor(), it)
		})
	case key.Matches(msg, k.Indent):
		m.count = 0
		m.do("indent", func(l *todos.List) error { return l.Indent(l.Active(), +1) })
	case key.Matches(msg, k.Dedent):
		m.count = 0
		m.do("dedent", func(l *todos.List) error { return l.Indent(l.Active(), -1) })
	case key.Matches(msg, k.MoveDown):
		n := m.takeCount(1)
		m.do("move", func(l *todos.List) error { return l.Move(l.Active(), todos.Down, n) })
	case key.Matches(msg, k.MoveUp):
		n := m.takeCount(1)
		m.do("move", func(l *todos.List) error { return l.Move(l.Active(), todos.Up, n) })
	case key.Matches(msg, k.ToggleKind):
		m.count = 0
		m.do("kind", func(l *todos.List) error { return l.ToggleKind(l.Active()) })
	case key.Matches(msg, k.Join):
		m.count = 0
		m.do("join", func(l *todos.List) error { return l.JoinWithPrevious(l.Active()) })
	case key.Matches(msg, k.Color):
		m.count = 0
		m.openPick(pickColor)
	case key.Matches(msg, k.Sort):
		m.count = 0
		m.openPick(pickSort)
	case key.Matches(msg, k.Undo):
		m.count = 0
		m.report(m.ed.Undo())
	case key.Matches(msg, k.Redo):
		m.count = 0
		m.report(m.ed.Redo())

	case key.Matches(msg, k.Copy):
		m.count = 0
		m.copyActive()
	case key.Matches(msg, k.Cut):
		m.count = 0
		if m.copyActive() {
			m.do("cut", func(l *todos.List) error { return l.Delete(l.Active()) })
		}
	case key.Matches(msg, k.Paste):
		m.count = 0
		m.paste()

	case key.Matches(msg, k.Search):
		m.count = 0
		return m.beginSearch()
	case key.Matches(msg, k.NextMatch):
		m.count = 0
		m.report(l.NextMatch())
	case key.Matches(msg, k.PrevMatch):
		m.count = 0
		m.report(l.PrevMatch())
	case key.Matches(msg, k.ShowText):
		m.count = 0
		if it, ok := l.CursorItem(); ok {
			m.showMinibuffer(it.Text)
		}
	case key.Matches(msg, k.Help):
		m.count = 0
		m.openHelp()
	case key.Matches(msg, k.Save):
		m.count = 0
		if err := m.ed.Save(); err != nil {
			m.report(err)
		} else {
			m.showMinibuffer("saved " + m.titleText())
		}
	case key.Matches(msg, k.Quit):
		m.count = 0
		return m.quit()
	default:
		m.count = 0
	}
	return m, nil
}

// do runs fn as one undoable action and reports its error.
func (m *appModel) do(name string, fn func(l *todos.List) error) {
	m.report(m.ed.Do(name, fn))
}

// newItem is a blank item continuing the cursor item's kind and indent.
func (m appModel) newItem() model.Item {
	it, ok := m.ed.List.CursorItem()
	if !ok {
		return model.NewTodo("")
	}
	return model.Item{Kind: it.Kind, Indent: it.Indent}
}

func (m appModel) quit() (appModel, tea.Cmd) {
	if err := m.ed.Flush(); err != nil && !m.quitArmed {
		m.quitArmed = true
		m.showError(fmt.Sprintf("%v; press q again to quit anyway", err))
		return m, nil
	}
	return m, tea.Quit
}

// report shows err in the minibuffer, worded for the user.
func (m *appModel) report(err error) {
	if err == nil {
		return
	}
	var oor todos.OutOfRangeError
	switch {
	case errors.Is(err, history.ErrNothingToUndo):
		m.showMinibuffer("nothing to undo")
	case errors.Is(err, history.ErrNothingToRedo):
		m.showMinibuffer("nothing to redo")
	case errors.Is(err, todos.ErrEmptyList):
		m.showMinibuffer("the list is empty")
	case errors.Is(err, todos.ErrMoveOutOfBounds):
		m.showMinibuffer("cannot move any further")
	case errors.Is(err, todos.ErrNoPrevious):
		m.showMinibuffer("no item above")
	case errors.Is(err, todos.ErrNoSearch):
		m.showMinibuffer("no search; press / to search")
	case errors.Is(err, todos.ErrNoMatches):
		if s, ok := m.ed.List.Search(); ok {
			m.showError(fmt.Sprintf("no matches for %q", s.Pattern))
		} else {
			m.showError("no matches")
		}
	case errors.As(err, &oor):
		m.showError(oor.Error())
	default:
		m.showError(err.Error())
	}
}
