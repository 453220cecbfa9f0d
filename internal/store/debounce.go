package store

import (
	"sync"
	"time"
)

const DefaultDebounce = 150 * time.Millisecond

// debouncer coalesces bursts of file events into one callback, run after the burst has been
// quiet for the configured duration.
type debouncer struct {
	d     time.Duration
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newDebouncer(d time.Duration) *debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &debouncer{d: d}
}

func (db *debouncer) trigger(fn func()) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.seq++
	seq := db.seq
	if db.timer != nil {
		db.timer.Stop()
	}
	db.timer = time.AfterFunc(db.d, func() {
		db.mu.Lock()
		// A timer that already fired when Stop was called must not run a stale callback.
		current := seq == db.seq
		if current {
			db.timer = nil
		}
		db.mu.Unlock()
		if current {
			fn()
		}
	})
}

func (db *debouncer) cancel() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.seq++
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}
