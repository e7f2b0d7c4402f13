package cli

import (
	"strconv"
	"strings"

	"aboutliner/internal/ids"
	"aboutliner/internal/model"
	"aboutliner/internal/mutate"

	"github.com/spf13/cobra"
)

// editRun reads the document, applies fn and prints the edited document.
func editRun(app *App, in *string, fn func(cmd *cobra.Command, args []string, data *model.SectionData) (map[string]any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		data, err := readDoc(cmd, *in)
		if err != nil {
			return writeErr(cmd, err)
		}
		meta, err := fn(cmd, args, &data)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.Logger.Debug("edited", "command", cmd.CommandPath(), "rows", data.RowCount(), "cols", data.ColCount())
		return writeOut(cmd, app, docEnvelope(data, meta))
	}
}

func parseColIdx(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, errBadArg("column", s, "a 0-based index")
	}
	return n, nil
}

func parseKind(s string) (model.SectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "rows":
		return model.SectionKindRow, nil
	case "col", "cols", "column", "columns":
		return model.SectionKindCol, nil
	}
	return "", errBadArg("section kind", s, "row or col")
}

func newEditCmd(app *App) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit rows, columns, cells and sections of a document",
	}
	cmd.PersistentFlags().StringVar(&in, "in", "-", "Document to read (- for stdin)")

	cmd.AddCommand(newEditRowsCmd(app, &in))
	cmd.AddCommand(newEditColsCmd(app, &in))
	cmd.AddCommand(newEditCellsCmd(app, &in))
	cmd.AddCommand(newEditSectionsCmd(app, &in))
	return cmd
}

func newEditRowsCmd(app *App, in *string) *cobra.Command {
	cmd := &cobra.Command{Use: "rows", Short: "Add, delete or update rows"}

	var section, id, name, value string
	var at int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Insert a row (default: end of the unsectioned rows)",
		Args:  cobra.NoArgs,
		RunE: editRun(app, in, func(cmd *cobra.Command, _ []string, data *model.SectionData) (map[string]any, error) {
			if id != "" && !ids.IsRowID(id) {
				return nil, errBadArg("--id", id, "a row id such as ZEK3")
			}
			id = strings.ToUpper(strings.TrimSpace(id))
			pos := at
			if !cmd.Flags().Changed("at") {
				pos = data.RowCount()
			}
			row, err := mutate.InsertRow(data, section, pos, model.Row{ID: id, Name: name, Value: value})
			if err != nil {
				return nil, err
			}
			return map[string]any{"rowId": row.ID}, nil
		}),
	}
	addCmd.Flags().StringVar(&section, "section", "", "Row section id (default: unsectioned)")
	addCmd.Flags().IntVar(&at, "at", 0, "Position within the section (default: end)")
	addCmd.Flags().StringVar(&id, "id", "", "Row id (default: generated)")
	addCmd.Flags().StringVar(&name, "name", "", "Row name")
	addCmd.Flags().StringVar(&value, "value", "", "Row value")

	deleteCmd := &cobra.Command{
		Use:   "delete <row-id>",
		Short: "Delete a row",
		Args:  cobra.ExactArgs(1),
		RunE: editRun(app, in, func(_ *cobra.Command, args []string, data *model.SectionData) (map[string]any, error) {
			return nil, mutate.DeleteRow(data, strings.ToUpper(args[0]))
		}),
	}

	var setName, setValue string
	setCmd := &cobra.Command{
		Use:   "set <row-id>",
		Short: "Update a row's name and/or value",
		Args:  cobra.ExactArgs(1),
		RunE: editRun(app, in, func(cmd *cobra.Command, args []string, data *model.SectionData) (map[string]any, error) {
			rowID := strings.ToUpper(strings.TrimSpace(args[0]))
			_, _, row, ok := data.FindRow(rowID)
			if !ok {
				return nil, mutate.NotFoundError{Kind: "row", ID: rowID}
			}
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("value") {
				return nil, errExclusiveFlags([]string{"name", "value"}, nil)
			}
			n, v := row.Name, row.Value
			if cmd.Flags().Changed("name") {
				n = setName
			}
			if cmd.Flags().Changed("value") {
				v = setValue
			}
			return nil, mutate.UpdateRow(data, rowID, n, v)
		}),
	}
	setCmd.Flags().StringVar(&setName, "name", "", "New name")
	setCmd.Flags().StringVar(&setValue, "value", "", "New value")

	cmd.AddCommand(addCmd, deleteCmd, setCmd)
	return cmd
}

func newEditColsCmd(app *App, in *string) *cobra.Command {
	cmd := &cobra.Command{Use: "cols", Short: "Add, delete or rename data columns"}

	var section, name string
	var at int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Insert a data column (default: end of the unsectioned columns)",
		Args:  cobra.NoArgs,
		RunE: editRun(app, in, func(cmd *cobra.Command, _ []string, data *model.SectionData) (map[string]any, error) {
			pos := at
			if !cmd.Flags().Changed("at") {
				pos = data.ColCount()
			}
			col, err := mutate.InsertColumn(data, section, pos, name)
			if err != nil {
				return nil, err
			}
			return map[string]any{"colIdx": col.Idx}, nil
		}),
	}
	addCmd.Flags().StringVar(&section, "section", "", "Column section id (default: unsectioned)")
	addCmd.Flags().IntVar(&at, "at", 0, "Global data-column index (default: end)")
	addCmd.Flags().StringVar(&name, "name", "", "Column name")

	deleteCmd := &cobra.Command{
		Use:   "delete <idx>",
		Short: "Delete a data column",
		Args:  cobra.ExactArgs(1),
		RunE: editRun(app, in, func(_ *cobra.Command, args []string, data *model.SectionData) (map[string]any, error) {
			idx, err := parseColIdx(args[0])
			if err != nil {
				return nil, err
			}
			return nil, mutate.DeleteColumn(data, idx)
		}),
	}

	renameCmd := &cobra.Command{
		Use:   "rename <idx> <name>",
		Short: "Rename a data column",
		Args:  cobra.ExactArgs(2),
		RunE: editRun(app, in, func(_ *cobra.Command, args []string, data *model.SectionData) (map[string]any, error) {
			idx, err := parseColIdx(args[0])
			if err != nil {
				return nil, err
			}
			return nil, mutate.RenameColumn(data, idx, args[1])
		}),
	}

	cmd.AddCommand(addCmd, deleteCmd, renameCmd)
	return cmd
}

func newEditCellsCmd(app *App, in *string) *cobra.Command {
	cmd := &cobra.Command{Use: "cells", Short: "Update cell values"}
	setCmd := &cobra.Command{
		Use:   "set <row-id> <col-idx> <value>",
		Short: "Set one data cell",
		Args:  cobra.ExactArgs(3),
		RunE: editRun(app, in, func(_ *cobra.Command, args []string, data *model.SectionData) (map[string]any, error) {
			idx, err := parseColIdx(args[1])
			if err != nil {
				return nil, err
			}
			return nil, mutate.UpdateCell(data, strings.ToUpper(args[0]), idx, args[2])
		}),
	}
	cmd.AddCommand(setCmd)
	return cmd
}

func newEditSectionsCmd(app *App, in *string) *cobra.Command {
	cmd := &cobra.Command{Use: "sections", Short: "Add or rename sections"}

	addCmd := &cobra.Command{
		Use:   "add <row|col> <name>",
		Short: "Add an empty section",
		Args:  cobra.ExactArgs(2),
		RunE: editRun(app, in, func(_ *cobra.Command, args []string, data *model.SectionData) (map[string]any, error) {
			kind, err := parseKind(args[0])
			if err != nil {
				return nil, err
			}
			id, err := mutate.AddSection(data, kind, args[1])
			if err != nil {
				return nil, err
			}
			return map[string]any{"sectionId": id}, nil
		}),
	}

	renameCmd := &cobra.Command{
		Use:   "rename <row|col> <section-id> <name>",
		Short: "Rename a section; its id is unchanged",
		Args:  cobra.ExactArgs(3),
		RunE: editRun(app, in, func(_ *cobra.Command, args []string, data *model.SectionData) (map[string]any, error) {
			kind, err := parseKind(args[0])
			if err != nil {
				return nil, err
			}
			return nil, mutate.RenameSection(data, kind, args[1], args[2])
		}),
	}

	cmd.AddCommand(addCmd, renameCmd)
	return cmd
}
