package cli

import (
	"strings"

	"aboutliner/internal/publish"
	"aboutliner/internal/sections"
	"aboutliner/internal/textconv"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var from string
	var toggles toggleFlags

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Parse outline text, TSV, a pipe table, an HTML table or XLSX into a section model",
		Long: strings.TrimSpace(`
Reads the file (or stdin) and prints the section model as a {"data": ..., "meta": ...} envelope.
Without --from the format is guessed from the file extension (default: outline).`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := argOrStdin(args)
			b, err := readInput(cmd, path)
			if err != nil {
				return writeErr(cmd, err)
			}
			f := strings.TrimSpace(from)
			if f == "" {
				f = formatFromPath(path)
			}
			opts := toggles.options(cmd.Flags(), app.Config.Options())
			grid, err := importGrid(f, b, opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			data := textconv.ToSectionModel(grid)
			app.Logger.Info("imported", "format", f, "rows", data.RowCount(), "cols", data.ColCount())
			return writeOut(cmd, app, docEnvelope(data, map[string]any{"format": f, "options": opts}))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input format (outline|tsv|pipe|html|xlsx)")
	addToggleFlags(cmd.Flags(), &toggles)
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var to string
	var out string
	var overwrite bool
	var toggles toggleFlags

	cmd := &cobra.Command{
		Use:   "export [doc.json]",
		Short: "Write a section model as outline text, TSV, HTML, ASCII, Cucumber or XLSX",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDoc(cmd, argOrStdin(args))
			if err != nil {
				return writeErr(cmd, err)
			}
			f := strings.TrimSpace(to)
			if f == "" {
				f = app.Config.ExportFormat()
			}
			if isBinaryFormat(f) && strings.TrimSpace(out) == "" {
				return writeErr(cmd, errExclusiveFlags([]string{"out"}, nil))
			}
			ropt := publish.RenderOptions{
				Options:      toggles.options(cmd.Flags(), app.Config.Options()),
				MaxCellWidth: app.Config.MaxCellWidth(),
			}
			b, err := exportGrid(f, sections.ToGrid(data), ropt)
			if err != nil {
				return writeErr(cmd, err)
			}
			app.Logger.Info("exported", "format", f, "bytes", len(b))
			if err := emit(cmd, app, b, !isBinaryFormat(f), out, overwrite); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Output format (outline|tsv|tsv-rich|html|ascii|cucumber|xlsx); default from config")
	cmd.Flags().StringVar(&out, "out", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing --out file")
	addToggleFlags(cmd.Flags(), &toggles)
	return cmd
}

func newConvertCmd(app *App) *cobra.Command {
	var from, to string
	var out string
	var overwrite bool
	var toggles toggleFlags

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Import and export in one step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := argOrStdin(args)
			b, err := readInput(cmd, path)
			if err != nil {
				return writeErr(cmd, err)
			}
			src := strings.TrimSpace(from)
			if src == "" {
				src = formatFromPath(path)
			}
			dst := strings.TrimSpace(to)
			if dst == "" {
				dst = app.Config.ExportFormat()
			}
			if isBinaryFormat(dst) && strings.TrimSpace(out) == "" {
				return writeErr(cmd, errExclusiveFlags([]string{"out"}, nil))
			}

			opts := toggles.options(cmd.Flags(), app.Config.Options())
			grid, err := importGrid(src, b, opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			// Normalize through the section model so backfilled "_" sections fold away.
			grid = sections.ToGrid(textconv.ToSectionModel(grid))

			res, err := exportGrid(dst, grid, publish.RenderOptions{Options: opts, MaxCellWidth: app.Config.MaxCellWidth()})
			if err != nil {
				return writeErr(cmd, err)
			}
			app.Logger.Info("converted", "from", src, "to", dst, "rows", len(grid))
			if err := emit(cmd, app, res, !isBinaryFormat(dst), out, overwrite); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input format (outline|tsv|pipe|html|xlsx)")
	cmd.Flags().StringVar(&to, "to", "", "Output format (outline|tsv|tsv-rich|html|ascii|cucumber|xlsx)")
	cmd.Flags().StringVar(&out, "out", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing --out file")
	addToggleFlags(cmd.Flags(), &toggles)
	return cmd
}
