// Package clipboard moves list text to and from the system clipboard.
package clipboard

import (
	"errors"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

var ErrEmpty = errors.New("clipboard is empty")

type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// System uses the platform clipboard (pbcopy, wl-copy, xclip, xsel or clip.exe).
type System struct{}

func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New("no clipboard utility found")
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(s, "\r\n", "\n"), nil
}

func (System) WriteText(s string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility found")
	}
	return clipboard.WriteAll(s)
}

// Memory is a process-local clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrEmpty
	}
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text, m.set = s, true
	return nil
}

// Fallback writes to both Primary and a Memory copy, and reads from Primary unless it fails,
// so copy and paste keep working inside the session without a system clipboard. Errors from
// Primary are still returned from WriteText so the caller can report them.
type Fallback struct {
	Primary Clipboard
	mem     Memory
}

func New() *Fallback {
	return &Fallback{Primary: System{}}
}

func (f *Fallback) ReadText() (string, error) {
	if f.Primary != nil {
		if s, err := f.Primary.ReadText(); err == nil {
			return s, nil
		}
	}
	return f.mem.ReadText()
}

func (f *Fallback) WriteText(s string) error {
	_ = f.mem.WriteText(s)
	if f.Primary == nil {
		return nil
	}
	return f.Primary.WriteText(s)
}
