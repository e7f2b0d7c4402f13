package mutate

import (
	"strings"

	"aboutliner/internal/ids"
	"aboutliner/internal/model"
)

// AddSection appends an empty section of the given kind and returns its new id.
func AddSection(data *model.SectionData, kind model.SectionKind, name string) (string, error) {
	if data == nil {
		return "", ErrNilData
	}
	switch kind {
	case model.SectionKindRow:
		id := ids.NewSectionID("rowSection")
		data.RowSections = append(data.RowSections, model.RowSection{SectionID: id, SectionName: name, Rows: []model.Row{}})
		return id, nil
	case model.SectionKindCol:
		id := ids.NewSectionID("colSection")
		data.ColSections = append(data.ColSections, model.ColSection{SectionID: id, SectionName: name, Cols: []model.ColDescriptor{}})
		return id, nil
	default:
		return "", ErrInvalidTarget
	}
}

// RenameSection changes a section's display name. Rows and cells reference sections
// by id, so the single section record is the only thing that changes.
// The reserved default sections cannot be renamed.
func RenameSection(data *model.SectionData, kind model.SectionKind, sectionID, name string) error {
	if data == nil {
		return ErrNilData
	}
	sectionID = strings.TrimSpace(sectionID)
	switch kind {
	case model.SectionKindRow:
		if sectionID == model.DefaultRowSectionID {
			return ErrInvalidTarget
		}
		si, ok := data.FindRowSection(sectionID)
		if !ok {
			return NotFoundError{Kind: "row section", ID: sectionID}
		}
		data.RowSections[si].SectionName = name
	case model.SectionKindCol:
		if sectionID == model.DefaultColSectionID {
			return ErrInvalidTarget
		}
		si, ok := data.FindColSection(sectionID)
		if !ok {
			return NotFoundError{Kind: "column section", ID: sectionID}
		}
		data.ColSections[si].SectionName = name
	default:
		return ErrInvalidTarget
	}
	return nil
}

// RenameGridSection renames every occurrence of sectionID in a flat grid and returns
// how many cells were touched. Cells may share one SectionRef; each is updated anyway.
func RenameGridSection(grid model.Grid, sectionID, name string) int {
	n := 0
	for r := range grid {
		for c := range grid[r] {
			if s := grid[r][c].Section; s != nil && s.SectionID == sectionID {
				s.SectionName = name
				n++
			}
		}
	}
	return n
}
