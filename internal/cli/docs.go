package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"ndo-cli/internal/docs"
)

func newDocsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				topics := docs.Topics()
				sort.Strings(topics)
				for _, t := range topics {
					if _, err := fmt.Fprintln(out, t); err != nil {
						return err
					}
				}
				return nil
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return fmt.Errorf("%w (run `ndo docs` to list topics)", errNotFound("docs topic", topic))
			}
			app.logger().Debug("docs", "topic", topic)
			_, err := fmt.Fprint(out, body)
			return err
		},
	}
}
