package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ndo-cli/internal/store"
)

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Config.Marshal()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range app.ConfigFiles {
				fmt.Fprintf(out, "# from %s\n", p)
			}
			_, err = out.Write(b)
			return err
		},
	}
	cmd.AddCommand(newConfigInitCmd(app))
	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the user config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.UserConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s: %w", path, errConfigExists)
			}
			if err := store.SaveConfig(path, app.Config); err != nil {
				return err
			}
			app.logger().Info("config written", "path", path)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file (the old one is kept as .bak)")
	return cmd
}
