package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ndo-cli/internal/model"
	"ndo-cli/internal/todos"
)

type pickKind int

const (
	pickColor pickKind = iota
	pickSort
)

func (k pickKind) title() string {
	if k == pickSort {
		return "Sort"
	}
	return "Color"
}

type pickState struct {
	kind    pickKind
	options []string
	index   int
}

var colorOptions = append([]model.Color{model.ColorNone}, model.Colors...)

func (m *appModel) openPick(kind pickKind) {
	if m.ed.List.Len() == 0 {
		m.report(todos.ErrEmptyList)
		return
	}
	var opts []string
	switch kind {
	case pickColor:
		for _, c := range colorOptions {
			opts = append(opts, c.String())
		}
	case pickSort:
		for _, k := range todos.SortKeys {
			opts = append(opts, k.String())
		}
	}
	if !m.setMode(modePick) {
		return
	}
	m.pick = pickState{kind: kind, options: opts}
	if kind == pickColor {
		if it, ok := m.ed.List.CursorItem(); ok {
			m.pick.index = int(it.Color)
		}
	}
}

func (m appModel) updatePick(msg tea.KeyMsg) (appModel, tea.Cmd) {
	p := &m.pick
	switch s := msg.String(); s {
	case "esc", "q", "ctrl+c":
		m.setMode(modeNormal)
	case "j", "down", "tab":
		p.index = (p.index + 1) % len(p.options)
	case "k", "up", "shift+tab":
		p.index = (p.index - 1 + len(p.options)) % len(p.options)
	case "enter", " ":
		m.applyPick(p.index)
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(p.options) {
				m.applyPick(i)
			}
		}
	}
	return m, nil
}

func (m *appModel) applyPick(i int) {
	kind := m.pick.kind
	m.setMode(modeNormal)
	switch kind {
	case pickColor:
		c := colorOptions[i]
		m.do("color", func(l *todos.List) error { return l.SetColor(l.Active(), c) })
	case pickSort:
		k := todos.SortKeys[i]
		m.do("sort", func(l *todos.List) error { return l.Sort(l.Active(), k) })
	}
}

func (m appModel) viewPick() string {
	var b strings.Builder
	b.WriteString(styleTitle().Render(m.pick.kind.title()))
	for i, opt := range m.pick.options {
		b.WriteByte('\n')
		line := fmt.Sprintf("%d %s", i+1, opt)
		st := lipgloss.NewStyle()
		if m.pick.kind == pickColor {
			if c := itemColor(colorOptions[i]); c != nil {
				st = st.Foreground(c)
			}
		}
		if i == m.pick.index {
			st = st.Reverse(true)
		}
		b.WriteString(st.Render(line))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2).
		Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
