// Package sections converts between the flat grid and the section-based tree.
//
// All functions are pure: they never mutate their input and degrade malformed input
// (nil grids, missing cells, empty section ids) to the reserved default sections.
package sections

import (
	"sort"
	"strings"

	"aboutliner/internal/ids"
	"aboutliner/internal/model"
)

func CreateDefaultRowSection() model.RowSection {
	return model.RowSection{SectionID: model.DefaultRowSectionID, SectionName: "", Rows: []model.Row{}}
}

func CreateDefaultColSection() model.ColSection {
	return model.ColSection{SectionID: model.DefaultColSectionID, SectionName: "", Cols: []model.ColDescriptor{}}
}

// CreateEmptySectionTable returns a table with one empty default section per axis.
func CreateEmptySectionTable() model.SectionData {
	return model.SectionData{
		RowSections: []model.RowSection{CreateDefaultRowSection()},
		ColSections: []model.ColSection{CreateDefaultColSection()},
	}
}

// sectionKey returns the id a cell's section resolves to, falling back to def.
func sectionKey(c model.Cell, def string) (id, name string) {
	if c.Section == nil || strings.TrimSpace(c.Section.SectionID) == "" {
		return def, ""
	}
	return c.Section.SectionID, c.Section.SectionName
}

// FromGrid builds the section-based tree from a flat grid.
//
// Column sections come from the first row's data cells (first-seen section order, grid
// order within a section). Columns that only exist on longer rows take their metadata
// from the first row that has them, so ragged input does not lose data. Row sections
// follow the same first-seen rule over the title cells. Rows without an ID get a fresh
// one that does not collide with any other ID in the grid.
func FromGrid(rows model.Grid) model.SectionData {
	if len(rows) == 0 {
		return CreateEmptySectionTable()
	}

	width := 0
	for _, r := range rows {
		if n := len(r) - 1; n > width {
			width = n
		}
	}

	out := model.SectionData{}
	colSectionByID := map[string]int{}
	colSectionOf := make([]string, width)
	for idx := 0; idx < width; idx++ {
		var cell model.Cell
		for _, r := range rows {
			if idx+1 < len(r) {
				cell = r[idx+1]
				break
			}
		}
		id, name := sectionKey(cell, model.DefaultColSectionID)
		si, ok := colSectionByID[id]
		if !ok {
			si = len(out.ColSections)
			colSectionByID[id] = si
			out.ColSections = append(out.ColSections, model.ColSection{SectionID: id, SectionName: name, Cols: []model.ColDescriptor{}})
		}
		out.ColSections[si].Cols = append(out.ColSections[si].Cols, model.ColDescriptor{
			Idx:      idx,
			Name:     cell.Name,
			ColIndex: idx + 1,
		})
		colSectionOf[idx] = id
	}

	taken := map[string]bool{}
	for _, r := range rows {
		if len(r) > 0 {
			if id := strings.TrimSpace(r[0].ID); id != "" {
				taken[id] = true
			}
		}
	}

	rowSectionByID := map[string]int{}
	for _, r := range rows {
		var title model.Cell
		if len(r) > 0 {
			title = r[0]
		}
		id, name := sectionKey(title, model.DefaultRowSectionID)
		si, ok := rowSectionByID[id]
		if !ok {
			si = len(out.RowSections)
			rowSectionByID[id] = si
			out.RowSections = append(out.RowSections, model.RowSection{SectionID: id, SectionName: name, Rows: []model.Row{}})
		}

		rowID := strings.TrimSpace(title.ID)
		if rowID == "" {
			rowID = ids.NewUniqueRowID(func(s string) bool { return taken[s] })
			taken[rowID] = true
		}

		cells := make([]model.SubCell, width)
		for idx := 0; idx < width; idx++ {
			cells[idx] = model.SubCell{ColSectionID: colSectionOf[idx]}
			if idx+1 < len(r) {
				cells[idx].Name = r[idx+1].Name
				cells[idx].Value = r[idx+1].Value
			}
		}
		out.RowSections[si].Rows = append(out.RowSections[si].Rows, model.Row{
			ID:    rowID,
			Name:  title.Name,
			Value: title.Value,
			Cells: cells,
		})
	}

	if len(out.ColSections) == 0 {
		out.ColSections = []model.ColSection{CreateDefaultColSection()}
	}
	if len(out.RowSections) == 0 {
		out.RowSections = []model.RowSection{CreateDefaultRowSection()}
	}
	return out
}

// ToGrid flattens the tree back into a grid: row-section order, then within-section
// order. Every row gets a title cell plus one cell per data column. Default sections
// are written as a nil Section, never as an empty SectionRef.
func ToGrid(data model.SectionData) model.Grid {
	width := data.ColCount()

	refByIdx := map[int]*model.SectionRef{}
	descByIdx := map[int]model.ColDescriptor{}
	colRefByID := map[string]*model.SectionRef{}
	for _, cs := range data.ColSections {
		var ref *model.SectionRef
		if !cs.IsDefault() && strings.TrimSpace(cs.SectionID) != "" {
			r := cs.Ref()
			ref = &r
		}
		colRefByID[cs.SectionID] = ref
		for _, c := range cs.Cols {
			refByIdx[c.Idx] = ref
			descByIdx[c.Idx] = c
		}
	}

	out := make(model.Grid, 0, data.RowCount())
	for _, rs := range data.RowSections {
		var rowRef *model.SectionRef
		if !rs.IsDefault() && strings.TrimSpace(rs.SectionID) != "" {
			r := rs.Ref()
			rowRef = &r
		}
		for _, row := range rs.Rows {
			line := make([]model.Cell, 0, width+1)
			line = append(line, model.Cell{ID: row.ID, Name: row.Name, Value: row.Value, Section: rowRef})
			for idx := 0; idx < width; idx++ {
				var sub model.SubCell
				present := idx < len(row.Cells)
				if present {
					sub = row.Cells[idx]
				}
				cell := model.Cell{Name: sub.Name, Value: sub.Value}
				if !present {
					cell.Name = descByIdx[idx].Name
				}
				if ref, ok := refByIdx[idx]; ok {
					cell.Section = ref
				} else {
					cell.Section = fallbackColRef(sub.ColSectionID, colRefByID)
				}
				line = append(line, cell)
			}
			out = append(out, line)
		}
	}
	return out
}

func fallbackColRef(id string, known map[string]*model.SectionRef) *model.SectionRef {
	id = strings.TrimSpace(id)
	if id == "" || id == model.DefaultColSectionID {
		return nil
	}
	if ref, ok := known[id]; ok {
		return ref
	}
	return &model.SectionRef{SectionID: id}
}

// CountTotalColumns returns 1 (title column) plus the number of data columns.
func CountTotalColumns(data model.SectionData) int {
	return 1 + data.ColCount()
}

// FlattenedColumns returns every column annotated with its section, sorted by Idx
// so callers can rely on left-to-right order regardless of section order.
func FlattenedColumns(data model.SectionData) []model.ColumnView {
	out := make([]model.ColumnView, 0, data.ColCount())
	for _, cs := range data.ColSections {
		for _, c := range cs.Cols {
			out = append(out, model.ColumnView{ColDescriptor: c, SectionID: cs.SectionID, SectionName: cs.SectionName})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Idx < out[j].Idx })
	return out
}
