package textconv

import (
	"fmt"
	"slices"
	"strings"

	"aboutliner/internal/ids"
	"aboutliner/internal/model"
	"aboutliner/internal/sections"
)

// ParseTextToSectionModel parses outline text straight into the section tree.
func ParseTextToSectionModel(text string, opts Options) (model.SectionData, error) {
	grid, err := ParseOutline(text, opts)
	if err != nil {
		return model.SectionData{}, err
	}
	return ToSectionModel(grid), nil
}

// SectionModelToText writes the section tree as outline text.
func SectionModelToText(data model.SectionData, opts Options) string {
	return ExportText(sections.ToGrid(data), opts)
}

// ToSectionModel normalizes an imported grid into the section tree. Cells tagged with
// the unsectioned token land in the default sections, and data columns whose first row
// was padded take their name from the first row that named them. grid is not modified.
func ToSectionModel(in model.Grid) model.SectionData {
	grid := make(model.Grid, len(in))
	for r := range in {
		grid[r] = slices.Clone(in[r])
	}
	rowUnsectioned := ids.RowSectionID(UnsectionedToken)
	colUnsectioned := ids.ColSectionID(UnsectionedToken)
	for r := range grid {
		for c := range grid[r] {
			s := grid[r][c].Section
			if s == nil {
				continue
			}
			if (c == 0 && s.SectionID == rowUnsectioned) || (c > 0 && s.SectionID == colUnsectioned) {
				grid[r][c].Section = nil
			}
		}
	}

	data := sections.FromGrid(grid)
	for si := range data.ColSections {
		for ci := range data.ColSections[si].Cols {
			col := &data.ColSections[si].Cols[ci]
			if col.Name != "" {
				continue
			}
			for _, row := range data.AllRows() {
				if col.Idx < len(row.Cells) && row.Cells[col.Idx].Name != "" {
					col.Name = row.Cells[col.Idx].Name
					break
				}
			}
		}
	}
	return data
}

// Format names a text encoding handled by this package.
type Format string

const (
	FormatOutline Format = "outline"
	FormatTSV     Format = "tsv"
	FormatTSVRich Format = "tsv-rich"
	FormatPipe    Format = "pipe"
	FormatHTML    Format = "html"
)

// ParseFormat accepts a format name or one of its aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outline", "text", "md", "markdown":
		return FormatOutline, nil
	case "tsv":
		return FormatTSV, nil
	case "tsv-rich", "rich":
		return FormatTSVRich, nil
	case "pipe", "cucumber":
		return FormatPipe, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown text format %q", s)
	}
}

// Import parses text in the given format into a flat grid.
func Import(f Format, text string, opts Options) (model.Grid, error) {
	switch f {
	case FormatOutline:
		return ParseOutline(text, opts)
	case FormatTSV:
		return ParseImportTSV(text, opts)
	case FormatPipe:
		return ParsePipeTable(text, opts)
	case FormatHTML:
		return ParseImportHTML(text, opts)
	default:
		return nil, fmt.Errorf("format %q cannot be imported", f)
	}
}

// Export writes the grid in one of the round-trippable text formats.
func Export(f Format, grid model.Grid, opts Options) (string, error) {
	switch f {
	case FormatOutline:
		return ExportText(grid, opts), nil
	case FormatTSV:
		return ExportTSV(grid, opts), nil
	case FormatTSVRich:
		return ExportTSVRich(grid, opts)
	default:
		return "", fmt.Errorf("format %q cannot be exported as text", f)
	}
}
