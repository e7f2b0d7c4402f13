package mutate

import (
	"sort"
	"strings"

	"aboutliner/internal/model"
	"aboutliner/internal/sections"
)

// InsertColumn inserts a data column named name into column section colSectionID at
// global data-column index at (clamped). Columns at or after at shift right by one and
// every row gains an empty cell.
func InsertColumn(data *model.SectionData, colSectionID string, at int, name string) (model.ColDescriptor, error) {
	if data == nil {
		return model.ColDescriptor{}, ErrNilData
	}
	si, err := resolveColSection(data, colSectionID)
	if err != nil {
		return model.ColDescriptor{}, err
	}
	width := data.ColCount()
	at = clamp(at, 0, width)

	for s := range data.ColSections {
		for c := range data.ColSections[s].Cols {
			if data.ColSections[s].Cols[c].Idx >= at {
				data.ColSections[s].Cols[c].Idx++
				data.ColSections[s].Cols[c].ColIndex++
			}
		}
	}
	desc := model.ColDescriptor{Idx: at, Name: name, ColIndex: at + 1}
	cs := &data.ColSections[si]
	cs.Cols = append(cs.Cols, desc)
	sort.SliceStable(cs.Cols, func(i, j int) bool { return cs.Cols[i].Idx < cs.Cols[j].Idx })

	cell := model.SubCell{ColSectionID: cs.SectionID, Name: name}
	for s := range data.RowSections {
		for r := range data.RowSections[s].Rows {
			row := &data.RowSections[s].Rows[r]
			for len(row.Cells) < at {
				row.Cells = append(row.Cells, model.SubCell{})
			}
			row.Cells = append(row.Cells, model.SubCell{})
			copy(row.Cells[at+1:], row.Cells[at:])
			row.Cells[at] = cell
		}
	}
	return desc, nil
}

// DeleteColumn removes data column colIdx and re-packs the remaining indexes.
// The owning section is kept even when it becomes empty.
func DeleteColumn(data *model.SectionData, colIdx int) error {
	if data == nil {
		return ErrNilData
	}
	si, ci, ok := data.FindColumn(colIdx)
	if !ok {
		return notFoundIdx("column", colIdx)
	}
	cols := data.ColSections[si].Cols
	data.ColSections[si].Cols = append(cols[:ci:ci], cols[ci+1:]...)
	for s := range data.ColSections {
		for c := range data.ColSections[s].Cols {
			if data.ColSections[s].Cols[c].Idx > colIdx {
				data.ColSections[s].Cols[c].Idx--
				data.ColSections[s].Cols[c].ColIndex--
			}
		}
	}
	for s := range data.RowSections {
		for r := range data.RowSections[s].Rows {
			row := &data.RowSections[s].Rows[r]
			if colIdx < len(row.Cells) {
				row.Cells = append(row.Cells[:colIdx:colIdx], row.Cells[colIdx+1:]...)
			}
		}
	}
	return nil
}

// RenameColumn renames the column descriptor and every row's cell in that column.
func RenameColumn(data *model.SectionData, colIdx int, name string) error {
	if data == nil {
		return ErrNilData
	}
	si, ci, ok := data.FindColumn(colIdx)
	if !ok {
		return notFoundIdx("column", colIdx)
	}
	data.ColSections[si].Cols[ci].Name = name
	for s := range data.RowSections {
		for r := range data.RowSections[s].Rows {
			row := &data.RowSections[s].Rows[r]
			if colIdx < len(row.Cells) {
				row.Cells[colIdx].Name = name
			}
		}
	}
	return nil
}

func resolveColSection(data *model.SectionData, sectionID string) (int, error) {
	sectionID = strings.TrimSpace(sectionID)
	if sectionID == "" {
		sectionID = model.DefaultColSectionID
	}
	if si, ok := data.FindColSection(sectionID); ok {
		return si, nil
	}
	if sectionID == model.DefaultColSectionID {
		data.ColSections = append(data.ColSections, sections.CreateDefaultColSection())
		return len(data.ColSections) - 1, nil
	}
	return -1, NotFoundError{Kind: "column section", ID: sectionID}
}
