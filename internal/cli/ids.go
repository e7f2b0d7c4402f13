package cli

import (
	"strconv"
	"strings"

	"aboutliner/internal/ids"

	"github.com/spf13/cobra"
)

func newIDsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ids",
		Short: "Generate row and section ids",
	}

	var n int
	rowCmd := &cobra.Command{
		Use:   "row",
		Short: "Generate row ids (consonant, vowel, consonant, digit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return writeErr(cmd, errBadArg("-n", strconv.Itoa(n), "a positive count"))
			}
			seen := map[string]bool{}
			out := make([]string, 0, n)
			for len(out) < n {
				id := ids.NewUniqueRowID(func(id string) bool { return seen[id] })
				seen[id] = true
				out = append(out, id)
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	rowCmd.Flags().IntVarP(&n, "n", "n", 1, "How many ids")

	sectionCmd := &cobra.Command{
		Use:   "section <prefix>",
		Short: "Generate a random section id (<prefix>-xxxxxx)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := strings.TrimSpace(args[0])
			if prefix == "" {
				return writeErr(cmd, errBadArg("prefix", args[0], "a non-empty prefix"))
			}
			return writeOut(cmd, app, map[string]any{"data": ids.NewSectionID(prefix)})
		},
	}

	cmd.AddCommand(rowCmd, sectionCmd)
	return cmd
}
