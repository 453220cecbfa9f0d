package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ndo-cli/internal/render"
	"ndo-cli/internal/tui"
)

const defaultPrintWidth = 80

func newPrintCmd(app *App) *cobra.Command {
	var (
		width int
		color string
	)
	cmd := &cobra.Command{
		Use:   "print [FILE]",
		Short: "Print the list once, as the editor would draw it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, res, err := app.openList(args)
			if err != nil {
				return err
			}
			if res.Created {
				return errNotFound("list file", file.Path)
			}
			out := cmd.OutOrStdout()
			w := width
			if w <= 0 {
				w = terminalWidth(out)
			}
			r, err := outputRenderer(out, color)
			if err != nil {
				return err
			}
			f := render.Render(render.State{Items: res.Items, Cursor: -1}, app.renderConfig(), w, 0, 0)
			if len(f.Rows) == 0 {
				return nil
			}
			for _, warn := range res.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warn)
			}
			_, err = fmt.Fprintln(out, tui.NewPainter(r).Frame(f))
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Wrap width (default: terminal width, or 80)")
	cmd.Flags().StringVar(&color, "color", "auto", "Color output: auto|always|never")
	return cmd
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultPrintWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return defaultPrintWidth
	}
	return cols
}

// outputRenderer picks the color profile for printed output. "auto" follows the
// environment (NO_COLOR, CLICOLOR, whether out is a terminal).
func outputRenderer(out io.Writer, mode string) (*lipgloss.Renderer, error) {
	switch mode {
	case "auto", "":
		return lipgloss.NewRenderer(out), nil
	case "always":
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI)
		return r, nil
	case "never":
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.Ascii)
		return r, nil
	}
	return nil, fmt.Errorf("unknown --color value %q (want auto, always or never)", mode)
}
