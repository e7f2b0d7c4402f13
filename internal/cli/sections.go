package cli

import (
	"aboutliner/internal/model"
	"aboutliner/internal/sections"

	"github.com/spf13/cobra"
)

type sectionSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
	Count     int    `json:"count"`
}

type sectionsReport struct {
	RowSections  []sectionSummary   `json:"rowSections"`
	ColSections  []sectionSummary   `json:"colSections"`
	Columns      []model.ColumnView `json:"columns"`
	TotalColumns int                `json:"totalColumns"`
}

func newSectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections [doc.json]",
		Short: "Summarize a document's row and column sections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDoc(cmd, argOrStdin(args))
			if err != nil {
				return writeErr(cmd, err)
			}
			rep := sectionsReport{
				RowSections:  []sectionSummary{},
				ColSections:  []sectionSummary{},
				Columns:      sections.FlattenedColumns(data),
				TotalColumns: sections.CountTotalColumns(data),
			}
			for _, s := range data.RowSections {
				rep.RowSections = append(rep.RowSections, sectionSummary{ID: s.SectionID, Name: s.SectionName, IsDefault: s.IsDefault(), Count: len(s.Rows)})
			}
			for _, s := range data.ColSections {
				rep.ColSections = append(rep.ColSections, sectionSummary{ID: s.SectionID, Name: s.SectionName, IsDefault: s.IsDefault(), Count: len(s.Cols)})
			}
			return writeOut(cmd, app, map[string]any{"data": rep})
		},
	}
}
