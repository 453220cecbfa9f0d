// Package store persists a list to its text file, loads layered YAML configuration and
// watches the list file for changes made by other programs.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ndo-cli/internal/format"
	"ndo-cli/internal/model"
)

const DefaultFileName = "todo.txt"

var ErrTargetExists = errors.New("target already exists")

// ResolvePath maps the FILE argument to the list file. Empty means DefaultFileName in the
// working directory; an existing directory means DefaultFileName inside it.
func ResolvePath(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		arg = DefaultFileName
	}
	if st, err := os.Stat(arg); err == nil && st.IsDir() {
		arg = filepath.Join(arg, DefaultFileName)
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", arg, err)
	}
	return abs, nil
}

type File struct {
	Path        string
	IndentWidth int

	mu sync.Mutex
	// last is the content this process most recently read or wrote. The watcher uses it to
	// tell our own writes apart from outside edits.
	last []byte
}

func Open(path string, indentWidth int) *File {
	if indentWidth < 1 {
		indentWidth = format.DefaultIndentWidth
	}
	return &File{Path: path, IndentWidth: indentWidth}
}

type LoadResult struct {
	Items []model.Item
	// Warnings holds one error per malformed line; those lines were loaded as plain Notes.
	Warnings []error
	// Created is set when the file did not exist and the list was seeded.
	Created bool
}

// Load reads and decodes the file. A missing file yields a single blank Todo.
func (f *File) Load() (LoadResult, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadResult{Items: []model.Item{model.NewTodo("")}, Created: true}, nil
		}
		return LoadResult{}, fmt.Errorf("load %s: %w", f.Path, err)
	}
	f.mu.Lock()
	f.last = b
	f.mu.Unlock()
	items, warnings := format.DecodeLines(string(b), f.IndentWidth)
	return LoadResult{Items: items, Warnings: warnings}, nil
}

// Save writes items with write-temp-then-rename, so a crash never leaves a partial file.
// An empty list is written as an empty file. The lock is held until the rename lands so the
// watcher never compares against content that is not on disk yet.
func (f *File) Save(items []model.Item) error {
	b := []byte(format.EncodeLines(items, f.IndentWidth))
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	perm := os.FileMode(0o644)
	if st, err := os.Stat(f.Path); err == nil {
		perm = st.Mode().Perm()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := atomicWriteFile(dir, "."+filepath.Base(f.Path)+".*.tmp", f.Path, b, perm); err != nil {
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	f.last = b
	return nil
}

// readIfChanged reads the file and reports whether it differs from what this process last
// read or wrote.
func (f *File) readIfChanged() ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, false, err
	}
	if string(b) == string(f.last) {
		return nil, false, nil
	}
	f.last = b
	return b, true, nil
}

// Rename moves a list file. It refuses a missing source and never overwrites a target.
func Rename(oldPath, newPath string) error {
	if _, err := os.Stat(oldPath); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("rename %s: %w", newPath, ErrTargetExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return os.Rename(oldPath, newPath)
}
