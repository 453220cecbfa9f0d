// Package editor frames list operations as undoable actions and persists them.
package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"ndo-cli/internal/history"
	"ndo-cli/internal/model"
	"ndo-cli/internal/todos"
)

// ErrSaveBlocked is returned when the file could not be read at startup; writing would
// clobber it, so only an explicit Save may write.
var ErrSaveBlocked = errors.New("saving is blocked because the file could not be loaded (save explicitly to overwrite)")

type Saver interface {
	Save(items []model.Item) error
}

type Options struct {
	Saver        Saver
	Autosave     bool
	HistoryLimit int
	// SaveBlocked marks a session whose file failed to load.
	SaveBlocked bool
	Logger      *slog.Logger
}

type Editor struct {
	List    *todos.List
	History *history.Manager

	saver       Saver
	autosave    bool
	saveBlocked bool
	dirty       bool
	saveErr     error
	log         *slog.Logger
}

func New(list *todos.List, opts Options) *Editor {
	if list == nil {
		list = todos.New(nil)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Editor{
		List:        list,
		History:     history.New(opts.HistoryLimit),
		saver:       opts.Saver,
		autosave:    opts.Autosave,
		saveBlocked: opts.SaveBlocked,
		log:         log,
	}
}

// Do runs fn as one undoable action. A failing fn leaves no history entry; an fn that
// changes nothing leaves none either. With autosave on, a committed action is written
// immediately and a write failure is returned.
func (e *Editor) Do(name string, fn func(l *todos.List) error) error {
	e.History.Record(e.List.Snapshot())
	if err := fn(e.List); err != nil {
		e.History.Discard()
		e.log.Debug("action failed", "action", name, "err", err)
		return err
	}
	if !e.History.Commit(e.List.Snapshot()) {
		return nil
	}
	e.log.Debug("action", "action", name, "items", e.List.Len(), "cursor", e.List.Cursor())
	return e.changed()
}

func (e *Editor) Undo() error {
	s, err := e.History.Undo(e.List.Snapshot())
	if err != nil {
		return err
	}
	e.List.Restore(s)
	return e.changed()
}

func (e *Editor) Redo() error {
	s, err := e.History.Redo(e.List.Snapshot())
	if err != nil {
		return err
	}
	e.List.Restore(s)
	return e.changed()
}

func (e *Editor) changed() error {
	e.dirty = true
	if !e.autosave || e.saveBlocked {
		return nil
	}
	return e.write()
}

// Save writes unconditionally and lifts a load-failure block.
func (e *Editor) Save() error {
	if err := e.write(); err != nil {
		return err
	}
	e.saveBlocked = false
	return nil
}

// Flush writes pending changes before exit.
func (e *Editor) Flush() error {
	if !e.dirty && e.saveErr == nil {
		return nil
	}
	if e.saveBlocked {
		return ErrSaveBlocked
	}
	return e.write()
}

func (e *Editor) write() error {
	if e.saver == nil {
		e.dirty = false
		return nil
	}
	if err := e.saver.Save(e.List.Items()); err != nil {
		e.saveErr = err
		e.log.Error("save failed", "err", err)
		return fmt.Errorf("save: %w", err)
	}
	e.saveErr = nil
	e.dirty = false
	return nil
}

func (e *Editor) Dirty() bool { return e.dirty }

// SaveErr returns the error of the last failed write, cleared by the next successful one.
func (e *Editor) SaveErr() error { return e.saveErr }

func (e *Editor) SaveBlocked() bool { return e.saveBlocked }

func (e *Editor) Autosave() bool { return e.autosave }

// Reload replaces the items with a version changed on disk, as one undoable action. The
// content already matches the file, so it is not written back.
func (e *Editor) Reload(items []model.Item) bool {
	e.History.Record(e.List.Snapshot())
	e.List.Replace(items)
	if !e.History.Commit(e.List.Snapshot()) {
		return false
	}
	e.log.Info("reloaded from disk", "items", len(items))
	e.saveBlocked = false
	return true
}
