package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down         key.Binding
	Up           key.Binding
	Top          key.Binding
	Bottom       key.Binding
	ExtendDown   key.Binding
	ExtendUp     key.Binding
	ExtendTop    key.Binding
	ExtendBottom key.Binding
	ToggleSelect key.Binding
	SelectAll    key.Binding
	Escape       key.Binding

	NewBelow   key.Binding
	NewAbove   key.Binding
	EditEnd    key.Binding
	EditStart  key.Binding
	Enter      key.Binding
	Blank      key.Binding
	Indent     key.Binding
	Dedent     key.Binding
	MoveDown   key.Binding
	MoveUp     key.Binding
	ToggleKind key.Binding
	Join       key.Binding
	Color      key.Binding
	Sort       key.Binding
	Undo       key.Binding
	Redo       key.Binding

	Copy  key.Binding
	Cut   key.Binding
	Paste key.Binding

	Search    key.Binding
	NextMatch key.Binding
	PrevMatch key.Binding
	ShowText  key.Binding
	Help      key.Binding
	Save      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	b := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	return keyMap{
		Down:         b("down", "j", "down"),
		Up:           b("up", "k", "up"),
		Top:          b("first item", "g", "home"),
		Bottom:       b("last item", "G", "end"),
		ExtendDown:   b("extend selection down", "J", "shift+down"),
		ExtendUp:     b("extend selection up", "K", "shift+up"),
		ExtendTop:    b("extend selection to top", "alt+g", "shift+home"),
		ExtendBottom: b("extend selection to bottom", "alt+G", "shift+end"),
		ToggleSelect: b("select", " ", "space"),
		SelectAll:    b("select all", "ctrl+a"),
		Escape:       b("clear", "esc"),

		NewBelow:   b("new below", "o"),
		NewAbove:   b("new above", "O"),
		EditEnd:    b("edit", "i"),
		EditStart:  b("edit at start", "I"),
		Enter:      b("toggle", "enter"),
		Blank:      b("blank item", "-"),
		Indent:     b("indent", "tab"),
		Dedent:     b("dedent", "shift+tab"),
		MoveDown:   b("move down", "alt+j", "alt+down"),
		MoveUp:     b("move up", "alt+k", "alt+up"),
		ToggleKind: b("todo/note", "delete"),
		Join:       b("join", "backspace"),
		Color:      b("color", "c"),
		Sort:       b("sort", "s"),
		Undo:       b("undo", "u"),
		Redo:       b("redo", "ctrl+r"),

		Copy:  b("copy", "y"),
		Cut:   b("cut", "d"),
		Paste: b("paste", "p"),

		Search:    b("search", "/", "ctrl+f"),
		NextMatch: b("next match", "n"),
		PrevMatch: b("previous match", "N"),
		ShowText:  b("show text", "a"),
		Help:      b("help", "h", "?"),
		Save:      b("save", "ctrl+s"),
		Quit:      b("quit", "q", "ctrl+c"),
	}
}

// entryKeyMap holds the keys intercepted while editing; the rest go to the text input.
type entryKeyMap struct {
	Commit     key.Binding
	Cancel     key.Binding
	Indent     key.Binding
	Dedent     key.Binding
	ToggleKind key.Binding
	Split      key.Binding
	Backspace  key.Binding
}

func defaultEntryKeyMap() entryKeyMap {
	return entryKeyMap{
		Commit:     key.NewBinding(key.WithKeys("enter")),
		Cancel:     key.NewBinding(key.WithKeys("esc")),
		Indent:     key.NewBinding(key.WithKeys("tab")),
		Dedent:     key.NewBinding(key.WithKeys("shift+tab")),
		ToggleKind: key.NewBinding(key.WithKeys("ctrl+t")),
		Split:      key.NewBinding(key.WithKeys("ctrl+j")),
		Backspace:  key.NewBinding(key.WithKeys("backspace")),
	}
}
