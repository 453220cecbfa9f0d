package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ndo-cli/internal/store"
)

func newRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a list file (never overwrites)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := store.ResolvePath(args[0])
			if err != nil {
				return err
			}
			to, err := store.ResolvePath(args[1])
			if err != nil {
				return err
			}
			if err := store.Rename(from, to); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return errNotFound("list file", from)
				}
				return err
			}
			app.logger().Info("renamed", "from", from, "to", to)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "renamed %s -> %s\n", from, to)
			return err
		},
	}
}
