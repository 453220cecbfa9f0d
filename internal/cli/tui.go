package cli

import (
	"ndo-cli/internal/clipboard"
	"ndo-cli/internal/editor"
	"ndo-cli/internal/todos"
	"ndo-cli/internal/tui"
)

func runTUI(app *App, args []string) error {
	log := app.logger()
	file, res, loadErr := app.openList(args)
	if file == nil {
		return loadErr
	}
	warnings := res.Warnings
	if loadErr != nil {
		// Start empty and refuse to overwrite the file until the user saves explicitly.
		log.Error("load failed", "file", file.Path, "err", loadErr)
		warnings = append([]error{loadErr}, warnings...)
	}
	help, err := app.helpText()
	if err != nil {
		return err
	}

	ed := editor.New(todos.New(res.Items), editor.Options{
		Saver:        file,
		Autosave:     app.Config.Autosave,
		HistoryLimit: app.Config.HistoryLimit,
		SaveBlocked:  loadErr != nil,
		Logger:       log,
	})
	log.Info("session start", "file", file.Path, "items", ed.List.Len(), "created", res.Created)

	return tui.Run(tui.Options{
		Editor:    ed,
		File:      file,
		Watch:     app.Config.Watch,
		Clipboard: clipboard.New(),
		Render:    app.renderConfig(),
		Title:     app.Config.Title,
		HelpText:  help,
		Warnings:  warnings,
		Logger:    log,
	})
}
