package cli

import (
	"strconv"
	"strings"

	"aboutliner/internal/quickfill"

	"github.com/spf13/cobra"
)

func newQuickfillCmd(app *App) *cobra.Command {
	var col, row int
	var header string

	cmd := &cobra.Command{
		Use:   "quickfill [doc.json]",
		Short: "Suggest values for a cell from its column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDoc(cmd, argOrStdin(args))
			if err != nil {
				return writeErr(cmd, err)
			}
			if col < 0 || col >= data.ColCount() {
				return writeErr(cmd, errBadArg("--col", strconv.Itoa(col), "a data column index"))
			}
			catalog, err := app.Config.Catalog()
			if err != nil {
				return writeErr(cmd, err)
			}
			req := quickfill.Request{SectionData: data, ColIdx: col, RowIdx: row}
			if h := strings.TrimSpace(header); h != "" {
				req.GetColumnHeader = func(int) string { return h }
			}
			s := quickfill.New(catalog).Suggest(req)
			app.Logger.Debug("quickfill", "col", col, "rule", s.Rule, "set", s.Set)
			return writeOut(cmd, app, map[string]any{"data": s})
		},
	}
	cmd.Flags().IntVar(&col, "col", 0, "Data column index (0-based)")
	cmd.Flags().IntVar(&row, "row", -1, "Row being edited (index across all rows); its value is ignored")
	cmd.Flags().StringVar(&header, "header", "", "Column header to match (default: the column's name)")
	_ = cmd.MarkFlagRequired("col")
	return cmd
}
