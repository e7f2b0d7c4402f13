package mutate

import (
	"strings"

	"aboutliner/internal/ids"
	"aboutliner/internal/model"
	"aboutliner/internal/sections"
)

// InsertRow inserts row into the row section sectionID at position at (clamped).
// An empty sectionID targets the default section, which is created when missing.
// The row's cells are fitted to the current columns; a missing ID is generated.
func InsertRow(data *model.SectionData, sectionID string, at int, row model.Row) (model.Row, error) {
	if data == nil {
		return model.Row{}, ErrNilData
	}
	si, err := resolveRowSection(data, sectionID)
	if err != nil {
		return model.Row{}, err
	}

	row.ID = strings.ToUpper(strings.TrimSpace(row.ID))
	if row.ID == "" {
		row.ID = ids.NewUniqueRowID(func(id string) bool {
			_, _, _, ok := data.FindRow(id)
			return ok
		})
	} else if _, _, _, ok := data.FindRow(row.ID); ok {
		return model.Row{}, ErrDuplicateID
	}
	row.Cells = fitCells(*data, row.Cells)

	rows := data.RowSections[si].Rows
	at = clamp(at, 0, len(rows))
	rows = append(rows, model.Row{})
	copy(rows[at+1:], rows[at:])
	rows[at] = row
	data.RowSections[si].Rows = rows
	return row, nil
}

func DeleteRow(data *model.SectionData, rowID string) error {
	if data == nil {
		return ErrNilData
	}
	si, ri, _, ok := data.FindRow(strings.TrimSpace(rowID))
	if !ok {
		return NotFoundError{Kind: "row", ID: rowID}
	}
	rows := data.RowSections[si].Rows
	data.RowSections[si].Rows = append(rows[:ri:ri], rows[ri+1:]...)
	return nil
}

// UpdateRow sets the row's title-cell name and value.
func UpdateRow(data *model.SectionData, rowID, name, value string) error {
	if data == nil {
		return ErrNilData
	}
	_, _, row, ok := data.FindRow(strings.TrimSpace(rowID))
	if !ok {
		return NotFoundError{Kind: "row", ID: rowID}
	}
	row.Name = name
	row.Value = value
	return nil
}

// UpdateCell sets the value of data column colIdx (0-based) in the given row.
func UpdateCell(data *model.SectionData, rowID string, colIdx int, value string) error {
	if data == nil {
		return ErrNilData
	}
	_, _, row, ok := data.FindRow(strings.TrimSpace(rowID))
	if !ok {
		return NotFoundError{Kind: "row", ID: rowID}
	}
	if colIdx < 0 || colIdx >= len(row.Cells) {
		return notFoundIdx("column", colIdx)
	}
	row.Cells[colIdx].Value = value
	return nil
}

func resolveRowSection(data *model.SectionData, sectionID string) (int, error) {
	sectionID = strings.TrimSpace(sectionID)
	if sectionID == "" {
		sectionID = model.DefaultRowSectionID
	}
	if si, ok := data.FindRowSection(sectionID); ok {
		return si, nil
	}
	if sectionID == model.DefaultRowSectionID {
		data.RowSections = append(data.RowSections, sections.CreateDefaultRowSection())
		return len(data.RowSections) - 1, nil
	}
	return -1, NotFoundError{Kind: "row section", ID: sectionID}
}

// fitCells returns one SubCell per current column, tagged with the column's section.
// Provided cells are matched positionally; missing names default to the column name.
func fitCells(data model.SectionData, in []model.SubCell) []model.SubCell {
	cols := sections.FlattenedColumns(data)
	out := make([]model.SubCell, len(cols))
	for i, c := range cols {
		out[i] = model.SubCell{ColSectionID: c.SectionID, Name: c.Name}
		if i < len(in) {
			if in[i].Name != "" {
				out[i].Name = in[i].Name
			}
			out[i].Value = in[i].Value
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
