package tui

import (
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"ndo-cli/internal/clipboard"
	"ndo-cli/internal/docs"
	"ndo-cli/internal/editor"
	"ndo-cli/internal/render"
	"ndo-cli/internal/store"
)

type appModel struct {
	ed      *editor.Editor
	file    *store.File
	watcher *store.Watcher
	clip    clipboard.Clipboard
	keys    keyMap
	ekeys   entryKeyMap
	cfg     render.Config
	painter *Painter
	title   string
	helpDoc string

	width  int
	height int
	// offset is the first visible row of the list body, carried between frames.
	offset int

	mode  mode
	count int

	input textinput.Model
	entry entryState
	pick  pickState
	help  viewport.Model

	// pending holds a change from disk that arrived outside Normal mode.
	pending *store.Change

	minibufferText  string
	minibufferErr   bool
	minibufferSetAt time.Time

	// quitArmed is set after a quit was refused because saving failed.
	quitArmed bool

	log *slog.Logger
}

func newAppModel(opts Options) appModel {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ed := opts.Editor
	if ed == nil {
		ed = editor.New(nil, editor.Options{})
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.New()
	}
	helpDoc := opts.HelpText
	if helpDoc == "" {
		helpDoc, _ = docs.Get(docs.DefaultTopic)
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0

	m := appModel{
		ed:      ed,
		file:    opts.File,
		clip:    clip,
		keys:    defaultKeyMap(),
		ekeys:   defaultEntryKeyMap(),
		cfg:     opts.Render,
		painter: NewPainter(nil),
		title:   opts.Title,
		helpDoc: helpDoc,
		input:   ti,
		mode:    modeNormal,
		log:     log,
	}
	if n := len(opts.Warnings); n > 0 {
		(&m).showError(warningSummary(opts.Warnings))
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickMinibuffer()}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher.Changes()))
	}
	return tea.Batch(cmds...)
}

// setMode moves to next when the transition table allows it.
func (m *appModel) setMode(next mode) bool {
	if !canTransition(m.mode, next) {
		m.log.Error("illegal mode transition", "from", m.mode, "to", next)
		return false
	}
	m.log.Debug("mode", "from", m.mode, "to", next)
	m.mode = next
	if next == modeNormal {
		m.applyPending()
	}
	return true
}

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = text
	m.minibufferErr = false
	m.minibufferSetAt = time.Now()
}

func (m *appModel) showError(text string) {
	m.minibufferText = text
	m.minibufferErr = true
	m.minibufferSetAt = time.Now()
	m.log.Warn("minibuffer", "msg", text)
}

func (m *appModel) clearMinibuffer() {
	m.minibufferText = ""
	m.minibufferErr = false
}

// takeCount returns the pending count prefix, or def when none was typed.
func (m *appModel) takeCount(def int) int {
	n := m.count
	m.count = 0
	if n <= 0 {
		return def
	}
	return n
}

func (m appModel) bodyHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m appModel) titleText() string {
	if m.title != "" {
		return m.title
	}
	if m.file != nil {
		return filepath.Base(m.file.Path)
	}
	return "ndo"
}

// syncViewport re-renders the list to carry the scroll offset forward.
func (m *appModel) syncViewport() {
	if m.width <= 0 {
		return
	}
	f := render.Render(m.renderState(), m.cfg, m.width, m.bodyHeight(), m.offset)
	m.offset = f.Offset
}

func (m *appModel) applyPending() {
	if m.pending == nil {
		return
	}
	c := *m.pending
	m.pending = nil
	m.applyChange(c)
}

func (m *appModel) applyChange(c store.Change) {
	if c.Err != nil {
		m.showError("reload: " + c.Err.Error())
		return
	}
	if !m.ed.Reload(c.Items) {
		return
	}
	if len(c.Warnings) > 0 {
		m.showError("reloaded: " + warningSummary(c.Warnings))
		return
	}
	m.showMinibuffer("reloaded: file changed on disk (u to undo)")
}
