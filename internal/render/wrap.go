package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks s into lines no wider than width display columns, breaking at spaces when
// possible. The space at a break is dropped; runs of spaces elsewhere are kept. A word wider
// than width is broken between runes. Always returns at least one line.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	if runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}
	for i, word := range strings.Split(s, " ") {
		ww := runewidth.StringWidth(word)
		if i > 0 {
			if curW+1+ww <= width {
				cur.WriteByte(' ')
				curW++
			} else {
				flush()
			}
		}
		if curW+ww <= width {
			cur.WriteString(word)
			curW += ww
			continue
		}
		for _, r := range word {
			rw := runewidth.RuneWidth(r)
			if curW+rw > width && curW > 0 {
				flush()
			}
			cur.WriteRune(r)
			curW += rw
		}
	}
	flush()
	return lines
}
