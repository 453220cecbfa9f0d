package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"ndo-cli/internal/model"
)

// The TUI must stay readable on both light and dark terminal backgrounds, so chrome uses
// lipgloss.AdaptiveColor. Item colors map to the terminal's own 8-color palette, which the
// user's theme already tunes for their background.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted   = ac("240", "243")
	colorTitleFg = ac("235", "252")
	colorAccent  = ac("27", "75")
	colorInputBg = ac("254", "234")
	colorErrorFg = ac("160", "203")
	colorBorder  = ac("250", "243")
)

// itemColor returns the foreground for an item color, or nil for the terminal default.
func itemColor(c model.Color) lipgloss.TerminalColor {
	if c == model.ColorNone || !c.Valid() {
		return nil
	}
	return lipgloss.ANSIColor(uint(c))
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorTitleFg)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorErrorFg)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile also honors CLICOLOR, which is meant for piped CLI output and can
// switch colors off in a TUI by accident; only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if (strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit")) && profile != termenv.Ascii {
		profile = termenv.TrueColor
	} else if strings.Contains(strings.ToLower(os.Getenv("TERM")), "256color") && profile != termenv.TrueColor {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection for adaptive colors.
//
// Priority: NDO_THEME=light|dark|auto, then the COLORFGBG heuristic ("fg;bg").
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NDO_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
