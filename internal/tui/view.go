package tui

import (
	"fmt"
	"strings"

	"ndo-cli/internal/render"
)

func (m appModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	switch m.mode {
	case modeHelp:
		return m.viewHelp()
	case modePick:
		return m.viewPick()
	}
	f := render.Render(m.renderState(), m.cfg, m.width, m.bodyHeight(), m.offset)
	body := normalizePane(m.painter.Frame(f), m.width, m.bodyHeight())
	return m.viewTitle() + "\n" + body + "\n" + m.viewStatus()
}

func (m appModel) viewTitle() string {
	l := m.ed.List
	var pos string
	if l.Len() > 0 {
		pos = fmt.Sprintf("%d/%d", l.Cursor()+1, l.Len())
	}
	left := styleTitle().Render(m.titleText())
	return joinEnds(left, styleMuted().Render(pos), m.width)
}

func (m appModel) viewStatus() string {
	switch m.mode {
	case modeEntry, modeSearch:
		return renderInputLine(m.width, m.input.View())
	}
	if m.minibufferText != "" {
		st := styleMuted()
		if m.minibufferErr {
			st = styleError()
		}
		return normalizePane(st.Render(m.minibufferText), m.width, 1)
	}
	return joinEnds(styleMuted().Render("h help  q quit"), styleMuted().Render(m.statusFlags()), m.width)
}

// statusFlags summarizes state that is not visible in the list itself.
func (m appModel) statusFlags() string {
	var parts []string
	if m.count > 0 {
		parts = append(parts, fmt.Sprint(m.count))
	}
	if n := len(m.ed.List.Selection()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if s, ok := m.ed.List.Search(); ok {
		parts = append(parts, fmt.Sprintf("/%s (%d)", s.Pattern, len(s.Matches)))
	}
	switch {
	case m.ed.SaveBlocked():
		parts = append(parts, "not saving (ctrl+s to overwrite)")
	case m.ed.SaveErr() != nil:
		parts = append(parts, "save failed")
	case m.ed.Dirty():
		parts = append(parts, "modified")
	}
	return strings.Join(parts, "  ")
}
