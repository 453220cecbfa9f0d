package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ndo-cli/internal/render"
)

// Painter turns render frames into styled terminal text.
type Painter struct {
	r      *lipgloss.Renderer
	styles map[render.Attr]lipgloss.Style
}

// NewPainter returns a Painter for r; nil selects the default renderer (stdout).
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{r: r, styles: map[render.Attr]lipgloss.Style{}}
}

func (p *Painter) style(a render.Attr) lipgloss.Style {
	if st, ok := p.styles[a]; ok {
		return st
	}
	st := p.r.NewStyle().
		Reverse(a.Reverse).
		Strikethrough(a.Strike).
		Bold(a.Bold).
		Faint(a.Faint).
		Underline(a.Underline)
	if c := itemColor(a.Color); c != nil {
		st = st.Foreground(c)
	}
	p.styles[a] = st
	return st
}

// Row paints one frame row. Cells with equal attributes are styled as one run.
func (p *Painter) Row(cells []render.Cell) string {
	var b, run strings.Builder
	var cur render.Attr
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if cur == (render.Attr{}) {
			b.WriteString(run.String())
		} else {
			b.WriteString(p.style(cur).Render(run.String()))
		}
		run.Reset()
	}
	for _, c := range cells {
		if c.Rune == 0 {
			continue
		}
		if c.Attr != cur {
			flush()
			cur = c.Attr
		}
		run.WriteRune(c.Rune)
	}
	flush()
	return b.String()
}

// Frame paints every row, joined by newlines.
func (p *Painter) Frame(f render.Frame) string {
	lines := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		lines[i] = p.Row(row)
	}
	return strings.Join(lines, "\n")
}
