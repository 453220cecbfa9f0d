package store

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"ndo-cli/internal/format"
	"ndo-cli/internal/model"
)

// Change is a new version of the list file written by another program.
type Change struct {
	Items    []model.Item
	Warnings []error
	Err      error
}

type Watcher struct {
	file    *File
	path    string
	fw      *fsnotify.Watcher
	deb     *debouncer
	changes chan Change
	done    chan struct{}
	once    sync.Once
	log     *slog.Logger
}

// Watch starts watching the file. The parent directory is watched rather than the file so
// that replace-by-rename (ours and other editors') keeps being observed.
func (f *File) Watch(delay time.Duration, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	w := &Watcher{
		file:    f,
		path:    abs,
		fw:      fw,
		deb:     newDebouncer(delay),
		changes: make(chan Change, 1),
		done:    make(chan struct{}),
		log:     log,
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Changes() <-chan Change { return w.changes }

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.deb.cancel()
		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Debug("file event", "op", ev.Op.String(), "path", ev.Name)
			w.deb.trigger(w.check)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

func (w *Watcher) check() {
	b, changed, err := w.file.readIfChanged()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		w.send(Change{Err: err})
		return
	}
	if !changed {
		return
	}
	items, warnings := format.DecodeLines(string(b), w.file.IndentWidth)
	w.send(Change{Items: items, Warnings: warnings})
}

func (w *Watcher) send(c Change) {
	select {
	case w.changes <- c:
	case <-w.done:
	}
}
