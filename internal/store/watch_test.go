package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ndo-cli/internal/model"
)

func TestWatch_ReportsOutsideWritesOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	f := Open(path, 2)
	if err := f.Save([]model.Item{model.NewTodo("mine")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	w, err := f.Watch(20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := f.Save([]model.Item{model.NewTodo("mine again")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	select {
	case c := <-w.Changes():
		t.Fatalf("expected our own write to be ignored; got %#v", c)
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("- theirs\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case c := <-w.Changes():
		if c.Err != nil || len(c.Items) != 1 || c.Items[0].Text != "theirs" {
			t.Fatalf("unexpected change %#v", c)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change")
	}
}

func TestDebouncer_CoalescesAndCancels(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	fired := make(chan int, 10)
	for i := range 5 {
		d.trigger(func() { fired <- i })
	}
	select {
	case got := <-fired:
		if got != 4 {
			t.Fatalf("expected only the last callback; got %d", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out")
	}

	d.trigger(func() { fired <- 99 })
	d.cancel()
	select {
	case got := <-fired:
		t.Fatalf("expected cancelled callback not to run; got %d", got)
	case <-time.After(100 * time.Millisecond):
	}
}
