package cli

import (
	"fmt"
	"strings"

	"aboutliner/internal/docs"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show format guides (outline, tabular, quickfill)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": docs.Topics()})
			}
			s, ok := docs.Get(args[0])
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown topic %q (known: %s)", args[0], strings.Join(docs.Topics(), ", ")))
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), s)
			return err
		},
	}
}
