package model

// Reserved section ids. Rows/columns without a section live in these; their
// empty SectionName suppresses any header when rendered.
const (
	DefaultRowSectionID = "default-row-section"
	DefaultColSectionID = "default-col-section"
)

type SectionKind string

const (
	SectionKindRow SectionKind = "row"
	SectionKindCol SectionKind = "col"
)

// SectionRef identifies a section. Identity is SectionID; SectionName is display-only.
type SectionRef struct {
	SectionID   string `json:"sectionId"`
	SectionName string `json:"sectionName"`
}

// Cell is one entry of the flat grid. Column 0 is the row's title cell: it carries
// the row ID and the row section. Columns >= 1 are data cells carrying their column section.
//
// A nil Section means "no section", which is not the same as a section whose name is "".
type Cell struct {
	ID      string      `json:"id,omitempty"`
	Name    string      `json:"name"`
	Value   string      `json:"value"`
	Section *SectionRef `json:"section,omitempty"`
}

// Grid is the flat row/column representation: Grid[r][0] is the title cell of row r.
type Grid [][]Cell

type SectionData struct {
	RowSections []RowSection `json:"rowSections"`
	ColSections []ColSection `json:"colSections"`
}

type RowSection struct {
	SectionID   string `json:"sectionId"`
	SectionName string `json:"sectionName"`
	Rows        []Row  `json:"rows"`
}

type Row struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Value string    `json:"value"`
	Cells []SubCell `json:"cells"`
}

type SubCell struct {
	ColSectionID string `json:"colSectionId"`
	Name         string `json:"name"`
	Value        string `json:"value"`
}

type ColSection struct {
	SectionID   string          `json:"sectionId"`
	SectionName string          `json:"sectionName"`
	Cols        []ColDescriptor `json:"cols"`
}

// ColDescriptor describes one data column. Idx is 0-based and excludes the title
// column; ColIndex is Idx+1 (the column's position in the flat grid).
type ColDescriptor struct {
	Idx      int    `json:"idx"`
	Name     string `json:"name"`
	ColIndex int    `json:"colIndex"`
}

// ColumnView is a ColDescriptor annotated with its owning section.
type ColumnView struct {
	ColDescriptor
	SectionID   string `json:"sectionId"`
	SectionName string `json:"sectionName"`
}

// Ref returns the section as a SectionRef.
func (s RowSection) Ref() SectionRef {
	return SectionRef{SectionID: s.SectionID, SectionName: s.SectionName}
}

func (s ColSection) Ref() SectionRef {
	return SectionRef{SectionID: s.SectionID, SectionName: s.SectionName}
}

func (s RowSection) IsDefault() bool { return s.SectionID == DefaultRowSectionID }

func (s ColSection) IsDefault() bool { return s.SectionID == DefaultColSectionID }

// SectionIDOf returns the cell's section id, or "" when the cell has no section.
func (c Cell) SectionIDOf() string {
	if c.Section == nil {
		return ""
	}
	return c.Section.SectionID
}

// RowCount returns the number of rows across all row sections.
func (d SectionData) RowCount() int {
	n := 0
	for _, s := range d.RowSections {
		n += len(s.Rows)
	}
	return n
}

// ColCount returns the number of data columns across all column sections.
func (d SectionData) ColCount() int {
	n := 0
	for _, s := range d.ColSections {
		n += len(s.Cols)
	}
	return n
}

// AllRows returns every row in row-section order, then within-section order.
func (d SectionData) AllRows() []Row {
	out := make([]Row, 0, d.RowCount())
	for _, s := range d.RowSections {
		out = append(out, s.Rows...)
	}
	return out
}

// FindRow locates a row by id. The returned pointer aliases d.
func (d *SectionData) FindRow(id string) (sectionIdx, rowIdx int, row *Row, ok bool) {
	for si := range d.RowSections {
		for ri := range d.RowSections[si].Rows {
			if d.RowSections[si].Rows[ri].ID == id {
				return si, ri, &d.RowSections[si].Rows[ri], true
			}
		}
	}
	return -1, -1, nil, false
}

func (d *SectionData) FindRowSection(id string) (int, bool) {
	for i := range d.RowSections {
		if d.RowSections[i].SectionID == id {
			return i, true
		}
	}
	return -1, false
}

func (d *SectionData) FindColSection(id string) (int, bool) {
	for i := range d.ColSections {
		if d.ColSections[i].SectionID == id {
			return i, true
		}
	}
	return -1, false
}

// FindColumn locates a column descriptor by its global data-column index.
func (d *SectionData) FindColumn(idx int) (sectionIdx, colIdx int, ok bool) {
	for si := range d.ColSections {
		for ci := range d.ColSections[si].Cols {
			if d.ColSections[si].Cols[ci].Idx == idx {
				return si, ci, true
			}
		}
	}
	return -1, -1, false
}
