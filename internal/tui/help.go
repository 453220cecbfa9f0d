package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *appModel) openHelp() {
	if !m.setMode(modeHelp) {
		return
	}
	m.help = viewport.New(m.width, m.bodyHeight()+1)
	m.sizeHelp()
}

func (m *appModel) sizeHelp() {
	m.help.Width = m.width
	m.help.Height = m.height - 1
	if m.help.Height < 1 {
		m.help.Height = 1
	}
	m.help.SetContent(renderMarkdown(m.helpDoc, m.width))
}

func (m appModel) updateHelp(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "h", "?", "ctrl+c":
		m.setMode(modeNormal)
		return m, nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return m, cmd
}

func (m appModel) viewHelp() string {
	footer := styleMuted().Render("j/k scroll  q close")
	return normalizePane(m.help.View(), m.width, m.height-1) + "\n" + normalizePane(footer, m.width, 1)
}
