// Package history keeps linear undo/redo stacks of list snapshots.
package history

import (
	"errors"

	"ndo-cli/internal/model"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Snapshot is a value copy of the list state. Snapshots handed to or returned from a
// Manager never share backing arrays with the caller.
type Snapshot struct {
	Items     []model.Item
	Cursor    int
	Selection []int
}

func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Cursor: s.Cursor}
	if s.Items != nil {
		out.Items = append(make([]model.Item, 0, len(s.Items)), s.Items...)
	}
	if len(s.Selection) > 0 {
		out.Selection = append(make([]int, 0, len(s.Selection)), s.Selection...)
	}
	return out
}

// Equal reports whether two snapshots describe the same state. A nil and an empty
// slice are considered equal.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Cursor != o.Cursor || len(s.Items) != len(o.Items) || len(s.Selection) != len(o.Selection) {
		return false
	}
	for i := range s.Items {
		if s.Items[i] != o.Items[i] {
			return false
		}
	}
	for i := range s.Selection {
		if s.Selection[i] != o.Selection[i] {
			return false
		}
	}
	return true
}

type Manager struct {
	undo    []Snapshot
	redo    []Snapshot
	pending *Snapshot
	limit   int
}

// New returns a Manager. limit caps the undo stack depth; 0 means unlimited.
func New(limit int) *Manager {
	if limit < 0 {
		limit = 0
	}
	return &Manager{limit: limit}
}

// Record stores the state taken immediately before a mutation.
func (m *Manager) Record(pre Snapshot) {
	c := pre.Clone()
	m.pending = &c
}

// Commit finishes the action started by Record. The recorded state is pushed onto the
// undo stack and the redo stack is cleared, unless post is identical to it (a no-op),
// in which case nothing changes. Reports whether an entry was pushed.
func (m *Manager) Commit(post Snapshot) bool {
	if m.pending == nil {
		return false
	}
	pre := *m.pending
	m.pending = nil
	if pre.Equal(post) {
		return false
	}
	m.undo = append(m.undo, pre)
	if m.limit > 0 && len(m.undo) > m.limit {
		m.undo = append([]Snapshot(nil), m.undo[len(m.undo)-m.limit:]...)
	}
	m.redo = nil
	return true
}

// Discard abandons the pending record (the mutation failed).
func (m *Manager) Discard() {
	m.pending = nil
}

// Undo returns the state to restore and moves current onto the redo stack.
func (m *Manager) Undo(current Snapshot) (Snapshot, error) {
	if len(m.undo) == 0 {
		return Snapshot{}, ErrNothingToUndo
	}
	prev := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, current.Clone())
	return prev.Clone(), nil
}

// Redo is the inverse of Undo.
func (m *Manager) Redo(current Snapshot) (Snapshot, error) {
	if len(m.redo) == 0 {
		return Snapshot{}, ErrNothingToRedo
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, current.Clone())
	return next.Clone(), nil
}

func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

func (m *Manager) Depth() (undo, redo int) { return len(m.undo), len(m.redo) }

func (m *Manager) Reset() {
	m.undo = nil
	m.redo = nil
	m.pending = nil
}
