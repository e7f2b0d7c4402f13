package cli

import (
	"bytes"
	"path/filepath"
	"strings"

	"aboutliner/internal/model"
	"aboutliner/internal/textconv"
	"aboutliner/internal/tui"

	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	var from string
	var toggles toggleFlags

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a document in the interactive viewer",
		Long: strings.TrimSpace(`
Opens a section model (.json) or any importable file. Without --from, JSON input is
detected by content and other files by extension.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := argOrStdin(args)
			b, err := readInput(cmd, path)
			if err != nil {
				return writeErr(cmd, err)
			}
			opts := toggles.options(cmd.Flags(), app.Config.Options())
			data, err := loadViewDoc(path, from, b, opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			catalog, err := app.Config.Catalog()
			if err != nil {
				return writeErr(cmd, err)
			}
			title := "stdin"
			if path != "-" {
				title = filepath.Base(path)
			}
			return tui.Run(tui.Options{
				Title:        title,
				Data:         data,
				TextOptions:  opts,
				Catalog:      catalog,
				Style:        app.Config.TUIStyle(),
				MaxCellWidth: app.Config.MaxCellWidth(),
				InputTTY:     path == "-",
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input format (json|outline|tsv|pipe|html|xlsx)")
	addToggleFlags(cmd.Flags(), &toggles)
	return cmd
}

func loadViewDoc(path, from string, b []byte, opts textconv.Options) (model.SectionData, error) {
	from = strings.ToLower(strings.TrimSpace(from))
	isJSON := from == "json" ||
		(from == "" && (strings.EqualFold(filepath.Ext(path), ".json") || bytes.HasPrefix(bytes.TrimSpace(b), []byte("{"))))
	if isJSON {
		return decodeDoc(b, path)
	}
	if from == "" {
		from = formatFromPath(path)
	}
	grid, err := importGrid(from, b, opts)
	if err != nil {
		return model.SectionData{}, err
	}
	return textconv.ToSectionModel(grid), nil
}
