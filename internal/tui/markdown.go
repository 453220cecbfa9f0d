package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width. WithAutoStyle is avoided because its
	// terminal background query can block on some terminals.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)
	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(style)),
			glamour.WithWordWrap(width-4),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyleConfig(style string) ansi.StyleConfig {
	var cfg ansi.StyleConfig
	switch style {
	case "notty":
		return styles.NoTTYStyleConfig
	case "light":
		cfg = styles.LightStyleConfig
	default:
		cfg = styles.DarkStyleConfig
	}
	// Inline code carries key names in the help tables; keep it in the accent color.
	light, dark := colorAccent.Light, colorAccent.Dark
	if style == "light" {
		cfg.Code.Color = &light
	} else {
		cfg.Code.Color = &dark
	}
	cfg.Code.BackgroundColor = nil
	return cfg
}

func markdownStyle() string {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return "notty"
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NDO_THEME"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
