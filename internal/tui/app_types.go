package tui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ndo-cli/internal/store"
)

type mode int

const (
	modeNormal mode = iota
	modeEntry
	modeSearch
	modePick
	modeHelp
)

func (m mode) String() string {
	switch m {
	case modeEntry:
		return "entry"
	case modeSearch:
		return "search"
	case modePick:
		return "pick"
	case modeHelp:
		return "help"
	default:
		return "normal"
	}
}

// transitions lists the modes reachable from each mode. Entry may re-enter itself when a
// split or merge moves editing to another item.
var transitions = map[mode][]mode{
	modeNormal: {modeEntry, modeSearch, modePick, modeHelp},
	modeEntry:  {modeNormal, modeEntry},
	modeSearch: {modeNormal},
	modePick:   {modeNormal},
	modeHelp:   {modeNormal},
}

func canTransition(from, to mode) bool {
	return slices.Contains(transitions[from], to)
}

const (
	minibufferAutoClearAfter = 4 * time.Second
	minibufferTickEvery      = time.Second
	maxCount                 = 99999
)

type minibufferTickMsg struct{}

func tickMinibuffer() tea.Cmd {
	return tea.Tick(minibufferTickEvery, func(time.Time) tea.Msg { return minibufferTickMsg{} })
}

// fileChangedMsg carries a version of the list file written by another program.
type fileChangedMsg struct {
	change store.Change
}

type watchClosedMsg struct{}

// waitForChange blocks on the watcher channel; it is re-armed after every change.
func waitForChange(ch <-chan store.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return fileChangedMsg{change: c}
	}
}
