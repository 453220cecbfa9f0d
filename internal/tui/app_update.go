package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type keyHandler func(appModel, tea.KeyMsg) (appModel, tea.Cmd)

// keyHandlers dispatches key presses by mode.
var keyHandlers = map[mode]keyHandler{
	modeNormal: appModel.updateNormal,
	modeEntry:  appModel.updateEntry,
	modeSearch: appModel.updateSearch,
	modePick:   appModel.updatePick,
	modeHelp:   appModel.updateHelp,
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == modeHelp {
			m.sizeHelp()
		}

	case minibufferTickMsg:
		if m.minibufferText != "" && time.Since(m.minibufferSetAt) >= minibufferAutoClearAfter && !m.quitArmed {
			m.clearMinibuffer()
		}
		return m, tickMinibuffer()

	case fileChangedMsg:
		if m.watcher != nil {
			cmd = waitForChange(m.watcher.Changes())
		}
		if m.mode == modeNormal {
			m.applyChange(msg.change)
		} else {
			c := msg.change
			m.pending = &c
		}

	case watchClosedMsg:
		m.log.Debug("file watcher closed")

	case tea.KeyMsg:
		h, ok := keyHandlers[m.mode]
		if !ok {
			return m, nil
		}
		m, cmd = h(m, msg)

	default:
		if m.mode == modeEntry || m.mode == modeSearch {
			m.input, cmd = m.input.Update(msg)
		}
	}
	m.syncViewport()
	return m, cmd
}
