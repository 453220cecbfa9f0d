package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ndo-cli/internal/format"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		outFormat string
		pretty    bool
	)
	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the list as JSON or EDN",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, res, err := app.openList(args)
			if err != nil {
				return err
			}
			if res.Created {
				return errNotFound("list file", file.Path)
			}
			for _, warn := range res.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warn)
			}
			return format.Write(cmd.OutOrStdout(), format.NewDocument(file.Path, res.Items), outFormat, pretty)
		},
	}
	cmd.Flags().StringVar(&outFormat, "format", envOr("NDO_FORMAT", "json"), "Output format (json|edn)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print output")
	return cmd
}
