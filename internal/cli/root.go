package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ndo-cli/internal/format"
	"ndo-cli/internal/render"
	"ndo-cli/internal/store"
)

type App struct {
	Config store.Config
	// ConfigFiles lists the config files that were read, in order.
	ConfigFiles []string
	DebugLog    string

	display displayFlags
	log     *slog.Logger
	logFile io.Closer
}

// displayFlags override the config file only when given on the command line.
type displayFlags struct {
	autosave  bool
	strike    bool
	enumerate bool
	relative  bool
	indent    int
	title     string
	helpFile  string
	simple    bool
	bullets   bool
	noWatch   bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "ndo [FILE]",
		Short:        "A keyboard-driven todo and note list for the terminal",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Edit todo.txt in the current directory
  ndo

  # Edit a specific list with numbered rows
  ndo -e ~/notes/groceries.txt

  # Print a list without starting the editor
  ndo print todo.txt

  # Machine-readable output
  ndo export --format edn --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, args)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	f := &app.display
	pf := cmd.PersistentFlags()
	pf.BoolVar(&f.autosave, "autosave", true, "Save after every change")
	pf.BoolVarP(&f.strike, "strikethrough", "s", false, "Strike through completed todos")
	pf.BoolVarP(&f.enumerate, "enumerate", "e", false, "Number the items")
	pf.BoolVarP(&f.relative, "relative-enumeration", "r", false, "Number the items relative to the cursor")
	pf.IntVarP(&f.indent, "indentation-level", "i", 2, "Columns per indent level on screen")
	pf.StringVarP(&f.title, "title", "t", "", "Title shown above the list (default: file name)")
	pf.StringVar(&f.helpFile, "help-file", "", "Markdown file shown by the help key")
	pf.BoolVarP(&f.simple, "simple-boxes", "x", false, "Use ASCII boxes and bullets")
	pf.BoolVarP(&f.bullets, "bullet-display", "b", false, "Draw todos as bullets instead of boxes")
	pf.BoolVar(&f.noWatch, "no-watch", false, "Do not reload the file when another program changes it")
	pf.StringVar(&app.DebugLog, "debug-log", envOr("NDO_DEBUG_LOG", ""), "Append debug logs to this file")

	cmd.AddCommand(newPrintCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newRenameCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// setup layers config files, then explicitly given flags, and opens the debug log.
func (app *App) setup(cmd *cobra.Command) error {
	cfg, used, err := store.LoadConfig()
	if err != nil {
		return err
	}
	f, fl := app.display, cmd.Flags()
	if fl.Changed("autosave") {
		cfg.Autosave = f.autosave
	}
	if fl.Changed("strikethrough") {
		cfg.Strikethrough = f.strike
	}
	if fl.Changed("enumerate") && f.enumerate {
		cfg.Numbering = "absolute"
	}
	if fl.Changed("relative-enumeration") && f.relative {
		cfg.Numbering = "relative"
	}
	if fl.Changed("indentation-level") {
		cfg.IndentWidth = f.indent
	}
	if fl.Changed("title") {
		cfg.Title = f.title
	}
	if fl.Changed("help-file") {
		cfg.HelpFile = f.helpFile
	}
	if fl.Changed("simple-boxes") {
		cfg.SimpleBoxes = f.simple
	}
	if fl.Changed("bullet-display") {
		cfg.BulletDisplay = f.bullets
	}
	if fl.Changed("no-watch") {
		cfg.Watch = !f.noWatch
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.Config = cfg
	app.ConfigFiles = used

	log, closer, err := openDebugLog(app.DebugLog)
	if err != nil {
		return err
	}
	app.log, app.logFile = log, closer
	app.log.Debug("config loaded", "files", used, "numbering", cfg.Numbering, "autosave", cfg.Autosave)
	return nil
}

func (app *App) close() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

func (app *App) logger() *slog.Logger {
	if app.log == nil {
		return discardLogger()
	}
	return app.log
}

// resolveFile picks the list file: the argument, else the config's file, else todo.txt.
func (app *App) resolveFile(args []string) (string, error) {
	arg := app.Config.File
	if len(args) > 0 {
		arg = args[0]
	}
	return store.ResolvePath(arg)
}

// openList loads the list file named by args. A file that fails to load is returned with
// the error so the caller can decide whether to continue.
func (app *App) openList(args []string) (*store.File, store.LoadResult, error) {
	path, err := app.resolveFile(args)
	if err != nil {
		return nil, store.LoadResult{}, err
	}
	f := store.Open(path, format.DefaultIndentWidth)
	res, err := f.Load()
	for _, w := range res.Warnings {
		app.logger().Warn("malformed line", "file", path, "err", w)
	}
	return f, res, err
}

func (app *App) renderConfig() render.Config {
	cfg := render.DefaultConfig()
	cfg.IndentWidth = app.Config.IndentWidth
	cfg.Strikethrough = app.Config.Strikethrough
	cfg.SimpleGlyphs = app.Config.SimpleBoxes
	cfg.BulletTodos = app.Config.BulletDisplay
	cfg.NoteBullets = app.Config.NoteBullets
	cfg.ScrollMargin = app.Config.ScrollMargin
	switch strings.ToLower(strings.TrimSpace(app.Config.Numbering)) {
	case "absolute":
		cfg.Numbering = render.NumberingAbsolute
	case "relative":
		cfg.Numbering = render.NumberingRelative
	}
	return cfg
}

func (app *App) helpText() (string, error) {
	if app.Config.HelpFile == "" {
		return "", nil
	}
	b, err := os.ReadFile(app.Config.HelpFile)
	if err != nil {
		return "", fmt.Errorf("help file: %w", err)
	}
	return string(b), nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
