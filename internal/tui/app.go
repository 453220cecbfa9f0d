package tui

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"ndo-cli/internal/clipboard"
	"ndo-cli/internal/editor"
	"ndo-cli/internal/render"
	"ndo-cli/internal/store"
)

type Options struct {
	Editor *editor.Editor
	// File is the list file; it names the title and is watched when Watch is set.
	File      *store.File
	Watch     bool
	Clipboard clipboard.Clipboard
	Render    render.Config
	Title     string
	// HelpText is markdown shown by the help key; empty selects the built-in controls.
	HelpText string
	// Warnings are load problems reported once the screen is up.
	Warnings []error
	Logger   *slog.Logger
}

// Run starts the interactive editor and blocks until the user quits.
func Run(opts Options) error {
	applyThemePreference()
	applyColorProfilePreference()

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := newAppModel(opts)
	if opts.Watch && opts.File != nil {
		w, err := opts.File.Watch(store.DefaultDebounce, opts.Logger)
		if err != nil {
			opts.Logger.Warn("file watch unavailable", "err", err)
		} else {
			m.watcher = w
			defer func() { _ = w.Close() }()
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(appModel); ok && fm.ed.SaveErr() != nil {
		return fmt.Errorf("quit with unsaved changes: %w", fm.ed.SaveErr())
	}
	return nil
}

func warningSummary(warnings []error) string {
	switch len(warnings) {
	case 0:
		return ""
	case 1:
		return warnings[0].Error()
	}
	return fmt.Sprintf("%d malformed lines (first: %v)", len(warnings), warnings[0])
}
