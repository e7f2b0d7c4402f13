package cli

import (
	"errors"
	"strconv"
	"strings"

	"aboutliner/internal/mutate"

	"github.com/spf13/cobra"
)

// placementFlags binds the mutually exclusive destination flags of a move.
type placementFlags struct {
	before      string
	after       string
	into        string
	unsectioned bool
}

var placementFlagNames = []string{"before", "after", "into", "unsectioned"}

func (p *placementFlags) bind(cmd *cobra.Command, anchor string) {
	cmd.Flags().StringVar(&p.before, "before", "", "Place before this "+anchor)
	cmd.Flags().StringVar(&p.after, "after", "", "Place after this "+anchor)
	cmd.Flags().StringVar(&p.into, "into", "", "Append to the end of this section id")
	cmd.Flags().BoolVar(&p.unsectioned, "unsectioned", false, "Append to the end of the default (unsectioned) section")
}

// resolve returns the placement and its anchor (an id/index for before/after, a section id for into).
func (p placementFlags) resolve(cmd *cobra.Command) (mutate.Placement, string, error) {
	var set []string
	for _, name := range placementFlagNames {
		if cmd.Flags().Changed(name) {
			set = append(set, name)
		}
	}
	if len(set) != 1 {
		return 0, "", errExclusiveFlags(placementFlagNames, set)
	}
	switch set[0] {
	case "before":
		return mutate.PlaceBefore, strings.TrimSpace(p.before), nil
	case "after":
		return mutate.PlaceAfter, strings.TrimSpace(p.after), nil
	case "into":
		return mutate.PlaceInto, strings.TrimSpace(p.into), nil
	default:
		return mutate.PlaceInto, "", nil
	}
}

func newMoveCmd(app *App) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder rows and columns, reassigning their sections",
		Long: strings.TrimSpace(`
Moves are applied to a copy of the document. A move that would empty a section, or that
would change the number of rows/columns, is rejected and the command fails without output.`),
	}
	cmd.PersistentFlags().StringVar(&in, "in", "-", "Document to read (- for stdin)")

	var rowPlace placementFlags
	rowCmd := &cobra.Command{
		Use:   "row <row-id>",
		Short: "Move a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			placement, anchor, err := rowPlace.resolve(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			data, err := readDoc(cmd, in)
			if err != nil {
				return writeErr(cmd, err)
			}
			target := mutate.RowTarget{Placement: placement}
			if placement == mutate.PlaceInto {
				target.SectionID = anchor
			} else {
				target.RowID = strings.ToUpper(anchor)
			}
			rowID := strings.ToUpper(strings.TrimSpace(args[0]))
			res, err := mutate.MoveRow(data, rowID, target)
			if err != nil {
				logRejection(app, "row", rowID, placement, err)
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, docEnvelope(res.Data, map[string]any{"changed": res.Changed}))
		},
	}
	rowPlace.bind(rowCmd, "row id")

	var colPlace placementFlags
	colCmd := &cobra.Command{
		Use:   "col <idx>",
		Short: "Move a data column (0-based index)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return writeErr(cmd, errBadArg("column", args[0], "a 0-based index"))
			}
			placement, anchor, err := colPlace.resolve(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			target := mutate.ColTarget{Placement: placement}
			if placement == mutate.PlaceInto {
				target.SectionID = anchor
			} else {
				n, err := strconv.Atoi(anchor)
				if err != nil {
					return writeErr(cmd, errBadArg("anchor column", anchor, "a 0-based index"))
				}
				target.ColIdx = n
			}
			data, err := readDoc(cmd, in)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := mutate.MoveColumn(data, idx, target)
			if err != nil {
				logRejection(app, "column", args[0], placement, err)
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, docEnvelope(res.Data, map[string]any{"changed": res.Changed}))
		},
	}
	colPlace.bind(colCmd, "column index")

	cmd.AddCommand(rowCmd)
	cmd.AddCommand(colCmd)
	return cmd
}

func logRejection(app *App, kind, id string, placement mutate.Placement, err error) {
	if errors.Is(err, mutate.ErrSoleSectionMember) || errors.Is(err, mutate.ErrCountMismatch) {
		app.Logger.Info("move rejected", "kind", kind, "id", id, "placement", placement.String(), "reason", err)
		return
	}
	app.Logger.Debug("move failed", "kind", kind, "id", id, "err", err)
}
