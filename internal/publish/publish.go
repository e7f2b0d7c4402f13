// Package publish renders the flat grid into presentation formats (HTML, ASCII and
// Cucumber tables) and reads or writes XLSX workbooks.
package publish

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"aboutliner/internal/model"
	"aboutliner/internal/textconv"
)

type Format string

const (
	FormatHTML     Format = "html"
	FormatASCII    Format = "ascii"
	FormatCucumber Format = "cucumber"
	FormatXLSX     Format = "xlsx"
)

// ParseFormat reports whether s names a publish format.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatHTML:
		return FormatHTML, true
	case FormatASCII, "text-table":
		return FormatASCII, true
	case FormatCucumber, "gherkin":
		return FormatCucumber, true
	case FormatXLSX, "excel":
		return FormatXLSX, true
	}
	return "", false
}

type RenderOptions struct {
	textconv.Options
	// MaxCellWidth wraps ASCII table cells; 0 disables wrapping.
	MaxCellWidth int
}

// Render renders one of the text formats. XLSX is binary; use WriteXLSX.
func Render(f Format, grid model.Grid, opt RenderOptions) (string, error) {
	switch f {
	case FormatHTML:
		return RenderHTML(grid, opt), nil
	case FormatASCII:
		return RenderASCII(grid, opt), nil
	case FormatCucumber:
		return RenderCucumber(grid, opt), nil
	default:
		return "", fmt.Errorf("format %q is not a text format", f)
	}
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteFile writes b to path, refusing to replace an existing file unless overwrite is set.
func WriteFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}

// columnCells returns, for each data column, the cell of the first row that has it.
// That row is the canonical source of column names and sections.
func columnCells(grid model.Grid) []model.Cell {
	width := 0
	for _, row := range grid {
		width = max(width, len(row)-1)
	}
	out := make([]model.Cell, width)
	for c := range out {
		for _, row := range grid {
			if c+1 < len(row) {
				out[c] = row[c+1]
				break
			}
		}
	}
	return out
}

func sectionName(s *model.SectionRef) string {
	if s == nil {
		return ""
	}
	return s.SectionName
}
