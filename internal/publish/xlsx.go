package publish

import (
	"fmt"
	"io"

	"aboutliner/internal/model"
	"aboutliner/internal/textconv"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Sheet1"

// WriteXLSX writes the tabular layout to the first sheet of a new workbook. Values keep
// real newlines and wrap inside their cells.
func WriteXLSX(w io.Writer, grid model.Grid, opt textconv.Options) error {
	f := excelize.NewFile()
	defer f.Close()

	records := textconv.Records(grid, opt)
	width := 0
	for r, rec := range records {
		width = max(width, len(rec))
		for c, v := range rec {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(xlsxSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if width > 0 && len(records) > 0 {
		wrapStyle, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(width, len(records))
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(xlsxSheet, "A1", last, wrapStyle); err != nil {
			return err
		}
		if opt.IncludeHeaders {
			headStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
			if err != nil {
				return err
			}
			headEnd, err := excelize.CoordinatesToCellName(width, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(xlsxSheet, "A1", headEnd, headStyle); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

// ReadXLSX reads the first sheet of a workbook in the tabular layout.
func ReadXLSX(r io.Reader, opt textconv.Options) (model.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, textconv.ErrNothingToImport
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return textconv.FromRecords(rows, opt)
}
