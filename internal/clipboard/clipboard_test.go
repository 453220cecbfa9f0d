package clipboard

import (
	"errors"
	"testing"
)

type brokenClipboard struct{}

func (brokenClipboard) ReadText() (string, error) { return "", errors.New("no display") }

func (brokenClipboard) WriteText(string) error { return errors.New("no display") }

func TestMemory(t *testing.T) {
	var m Memory
	if _, err := m.ReadText(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty; got %v", err)
	}
	m.WriteText("- a\n")
	if got, _ := m.ReadText(); got != "- a\n" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestFallback_UsesMemoryWhenPrimaryFails(t *testing.T) {
	f := &Fallback{Primary: brokenClipboard{}}
	if err := f.WriteText("hello"); err == nil {
		t.Fatalf("expected the primary error to be reported")
	}
	got, err := f.ReadText()
	if err != nil || got != "hello" {
		t.Fatalf("expected in-memory copy; got %q, %v", got, err)
	}
}

func TestFallback_PrefersPrimary(t *testing.T) {
	primary := &Memory{}
	primary.WriteText("from system")
	f := &Fallback{Primary: primary}
	if got, _ := f.ReadText(); got != "from system" {
		t.Fatalf("expected primary text; got %q", got)
	}
}
