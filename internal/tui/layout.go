package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to exactly width columns (ANSI-aware) and height lines, so the
// status line never moves when the body is short or a line overflows.
func normalizePane(s string, width, height int) string {
	width = max(width, 0)
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		switch {
		case w > width && width <= 1:
			ln = xansi.Cut(ln, 0, width)
		case w > width:
			ln = xansi.Cut(ln, 0, width-1) + "…"
		}
		if w = xansi.StringWidth(ln); w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

// joinEnds puts left and right on one line of width columns, cutting left first.
func joinEnds(left, right string, width int) string {
	rw := xansi.StringWidth(right)
	if rw >= width {
		return xansi.Cut(right, 0, width)
	}
	avail := width - rw - 1
	if xansi.StringWidth(left) > avail {
		left = xansi.Cut(left, 0, max(avail, 0))
	}
	gap := width - xansi.StringWidth(left) - rw
	return left + strings.Repeat(" ", gap) + right
}
