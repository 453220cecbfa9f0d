package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws a text input as one full-width line on the input background.
func renderInputLine(width int, inputView string) string {
	if width < 1 {
		return ""
	}
	// A newline in the view would push the list up a row.
	inputView = strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView)

	line := lipgloss.PlaceHorizontal(
		width,
		lipgloss.Left,
		inputView,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > width {
		// Terminate styling so a cut sequence does not bleed into the next line.
		line = xansi.Cut(line, 0, width) + "\x1b[0m"
	}
	return line
}
