package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ndo-cli/internal/clipboard"
	"ndo-cli/internal/editor"
	"ndo-cli/internal/format"
	"ndo-cli/internal/model"
	"ndo-cli/internal/render"
	"ndo-cli/internal/store"
	"ndo-cli/internal/todos"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true} }

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func newTestModel(t *testing.T, saver editor.Saver, lines ...string) appModel {
	t.Helper()
	var items []model.Item
	if len(lines) > 0 {
		var errs []error
		items, errs = format.DecodeLines(strings.Join(lines, "\n")+"\n", 2)
		if len(errs) != 0 {
			t.Fatalf("decode fixture: %v", errs)
		}
	}
	ed := editor.New(todos.New(items), editor.Options{Saver: saver, Autosave: true, HistoryLimit: 100})
	m := newAppModel(Options{
		Editor:    ed,
		Clipboard: &clipboard.Memory{},
		Render:    render.DefaultConfig(),
		Title:     "test",
	})
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	return mm.(appModel)
}

func newFileModel(t *testing.T, lines ...string) (appModel, *store.File) {
	t.Helper()
	f := store.Open(filepath.Join(t.TempDir(), "todo.txt"), 2)
	m := newTestModel(t, f, lines...)
	m.file = f
	return m, f
}

func press(m appModel, keys ...tea.KeyMsg) appModel {
	for _, k := range keys {
		mm, _ := m.Update(k)
		m = mm.(appModel)
	}
	return m
}

func texts(m appModel) []string {
	var out []string
	for _, it := range m.ed.List.Items() {
		out = append(out, it.Text)
	}
	return out
}

func readFile(t *testing.T, f *store.File) string {
	t.Helper()
	b, err := os.ReadFile(f.Path)
	if err != nil {
		t.Fatalf("read %s: %v", f.Path, err)
	}
	return string(b)
}
