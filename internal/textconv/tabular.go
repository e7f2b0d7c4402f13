package textconv

import (
	"strings"

	"aboutliner/internal/ids"
	"aboutliner/internal/model"
)

// Leading header names of the tabular layout, matched case-insensitively on import.
const (
	HeaderID      = "ID"
	HeaderSection = "Section"
	HeaderName    = "Name"
	HeaderValue   = "Value"
)

// Records lays the grid out as tabular records: an optional header row, then one
// record per row holding [ID] [Section] [Name] Value and the data cells. Column headers
// carry their section as "Section ## Column". TSV, XLSX and pipe tables share this layout.
func Records(grid model.Grid, opts Options) [][]string {
	width := 0
	for _, row := range grid {
		width = max(width, len(row)-1)
	}

	var out [][]string
	if opts.IncludeHeaders {
		head := make([]string, 0, width+4)
		if opts.IncludeIDs {
			head = append(head, HeaderID)
		}
		if opts.IncludeSections {
			head = append(head, HeaderSection)
		}
		head = append(head, HeaderName, HeaderValue)
		for c := 1; c <= width; c++ {
			head = append(head, columnHeader(grid, c, opts))
		}
		out = append(out, head)
	}

	for _, row := range grid {
		var title model.Cell
		if len(row) > 0 {
			title = row[0]
		}
		rec := make([]string, 0, width+4)
		if opts.IncludeIDs {
			rec = append(rec, title.ID)
		}
		if opts.IncludeSections {
			rec = append(rec, sectionName(title.Section))
		}
		if opts.IncludeHeaders {
			rec = append(rec, title.Name)
		}
		rec = append(rec, title.Value)
		for c := 1; c <= width; c++ {
			v := ""
			if c < len(row) {
				v = row[c].Value
			}
			rec = append(rec, v)
		}
		out = append(out, rec)
	}
	return out
}

// columnHeader names data column c from the first row that has it.
func columnHeader(grid model.Grid, c int, opts Options) string {
	for _, row := range grid {
		if c >= len(row) {
			continue
		}
		cell := row[c]
		if opts.IncludeSections {
			if name := sectionName(cell.Section); name != "" {
				return name + " ## " + cell.Name
			}
		}
		return cell.Name
	}
	return ""
}

func sectionName(s *model.SectionRef) string {
	if s == nil {
		return ""
	}
	return s.SectionName
}

type tabularLayout struct {
	id, section, name, value int
	rowName                  string
	data                     int
}

// FromRecords is the inverse of Records. With headers, the leading ID, Section, Name and
// Value columns are each optional; a table with neither Name nor Value uses its first
// remaining column as the row value, named by that column's header.
func FromRecords(records [][]string, opts Options) (model.Grid, error) {
	// Blank records at the edges are padding; interior ones are empty rows.
	rows := records
	for len(rows) > 0 && blankRecord(rows[0]) {
		rows = rows[1:]
	}
	for len(rows) > 0 && blankRecord(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrNothingToImport
	}

	lay := tabularLayout{id: -1, section: -1, name: -1, value: -1}
	var headers []string
	if opts.IncludeHeaders {
		headers, rows = rows[0], rows[1:]
		i := 0
		if opts.IncludeIDs && headerIs(headers, i, HeaderID) {
			lay.id = i
			i++
		}
		if opts.IncludeSections && headerIs(headers, i, HeaderSection) {
			lay.section = i
			i++
		}
		if headerIs(headers, i, HeaderName) {
			lay.name = i
			i++
		}
		switch {
		case headerIs(headers, i, HeaderValue):
			lay.value = i
			i++
		case lay.name < 0 && i < len(headers):
			lay.value = i
			lay.rowName = strings.TrimSpace(headers[i])
			i++
		}
		lay.data = i
	} else {
		i := 0
		if opts.IncludeIDs {
			lay.id = i
			i++
		}
		if opts.IncludeSections {
			lay.section = i
			i++
		}
		lay.value = i
		lay.data = i + 1
	}
	if len(rows) == 0 {
		return nil, ErrNothingToImport
	}

	width := len(headers) - lay.data
	for _, rec := range rows {
		width = max(width, len(rec)-lay.data)
	}
	width = max(width, 0)

	colRefs := map[string]*model.SectionRef{}
	cols := make([]model.Cell, width)
	for c := range cols {
		name := field(headers, lay.data+c)
		var token string
		if opts.IncludeSections {
			if before, after, ok := strings.Cut(name, " ## "); ok {
				token, name = strings.TrimSpace(before), after
			}
		}
		cols[c] = model.Cell{
			Name:    strings.TrimSpace(name),
			Section: promoteSection(colRefs, token, ids.ColSectionID),
		}
	}

	rowRefs := map[string]*model.SectionRef{}
	grid := make(model.Grid, 0, len(rows))
	for _, rec := range rows {
		title := model.Cell{Name: lay.rowName}
		if lay.id >= 0 {
			title.ID = strings.TrimSpace(field(rec, lay.id))
		}
		if lay.section >= 0 {
			title.Section = promoteSection(rowRefs, strings.TrimSpace(field(rec, lay.section)), ids.RowSectionID)
		}
		if lay.name >= 0 {
			title.Name = field(rec, lay.name)
		}
		if lay.value >= 0 {
			title.Value = field(rec, lay.value)
		}
		line := make([]model.Cell, 0, width+1)
		line = append(line, title)
		for c, col := range cols {
			col.Value = field(rec, lay.data+c)
			line = append(line, col)
		}
		grid = append(grid, line)
	}
	assignRowIDs(grid)
	return grid, nil
}

func headerIs(headers []string, i int, want string) bool {
	return i < len(headers) && strings.EqualFold(strings.TrimSpace(headers[i]), want)
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
