package render

import "ndo-cli/internal/model"

// Some terminals and fonts don't render box-drawing and checkbox glyphs cleanly, so there is
// an ASCII fallback for every glyph.

type glyphSet struct {
	boxOpen   string
	boxDone   string
	checkmark string
	bullets   []string
	rule      rune
}

var (
	unicodeGlyphs = glyphSet{
		boxOpen:   "☐",
		boxDone:   "☑",
		checkmark: "✓",
		bullets:   []string{"•", "◦", "▪", "▫"},
		rule:      '─',
	}
	asciiGlyphs = glyphSet{
		boxOpen:   "[ ]",
		boxDone:   "[x]",
		checkmark: "X",
		bullets:   []string{"*", "-", "+", "~"},
		rule:      '-',
	}
)

func glyphsFor(cfg Config) glyphSet {
	if cfg.SimpleGlyphs {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

func (g glyphSet) bullet(indent int) string {
	return g.bullets[indent%len(g.bullets)]
}

// marker returns the glyph drawn before an item's text, or "" for none.
func (g glyphSet) marker(it model.Item, cfg Config) string {
	if it.IsEmpty() {
		return ""
	}
	if it.IsNote() {
		if cfg.NoteBullets {
			return g.bullet(it.Indent)
		}
		return ""
	}
	if cfg.BulletTodos {
		if it.Completed {
			return g.checkmark
		}
		return g.bullet(it.Indent)
	}
	if it.Completed {
		return g.boxDone
	}
	return g.boxOpen
}
