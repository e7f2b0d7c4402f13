package mutate

import (
	"slices"
	"strings"

	"aboutliner/internal/model"
	"aboutliner/internal/sections"

	"github.com/tiendc/go-deepcopy"
)

type Placement int

const (
	PlaceBefore Placement = iota
	PlaceAfter
	PlaceInto
)

func (p Placement) String() string {
	switch p {
	case PlaceBefore:
		return "before"
	case PlaceAfter:
		return "after"
	case PlaceInto:
		return "into"
	default:
		return "unknown"
	}
}

// RowTarget is where a moved row lands: before/after the anchor RowID, or at the end
// of SectionID (Into; "" means unsectioned, i.e. the default section).
type RowTarget struct {
	Placement Placement
	RowID     string
	SectionID string
}

// ColTarget is the column counterpart of RowTarget; ColIdx is a global data-column index.
type ColTarget struct {
	Placement Placement
	ColIdx    int
	SectionID string
}

// MoveResult carries the reordered tree. On rejection Data is the untouched input.
type MoveResult struct {
	Data    model.SectionData
	Changed bool
}

// MoveRow moves a row to target, reassigning its section to the target's section.
// The input is never mutated: the move is applied to a deep copy and returned whole,
// or rejected with the input returned as-is.
func MoveRow(data model.SectionData, rowID string, target RowTarget) (MoveResult, error) {
	unchanged := MoveResult{Data: data}
	rowID = strings.TrimSpace(rowID)

	si, _, _, ok := data.FindRow(rowID)
	if !ok {
		return unchanged, NotFoundError{Kind: "row", ID: rowID}
	}
	if len(data.RowSections[si].Rows) == 1 {
		return unchanged, ErrSoleSectionMember
	}
	if target.Placement != PlaceInto && strings.TrimSpace(target.RowID) == rowID {
		return unchanged, nil
	}

	var next model.SectionData
	if err := deepcopy.Copy(&next, &data); err != nil {
		return unchanged, err
	}

	si, ri, _, _ := next.FindRow(rowID)
	moved := next.RowSections[si].Rows[ri]
	rows := next.RowSections[si].Rows
	next.RowSections[si].Rows = append(rows[:ri:ri], rows[ri+1:]...)

	var tsi, pos int
	switch target.Placement {
	case PlaceBefore, PlaceAfter:
		anchor := strings.TrimSpace(target.RowID)
		asi, ari, _, ok := next.FindRow(anchor)
		if !ok {
			return unchanged, NotFoundError{Kind: "row", ID: anchor}
		}
		tsi, pos = asi, ari
		if target.Placement == PlaceAfter {
			pos++
		}
	case PlaceInto:
		idx, err := resolveRowSection(&next, target.SectionID)
		if err != nil {
			return unchanged, err
		}
		tsi, pos = idx, len(next.RowSections[idx].Rows)
	default:
		return unchanged, ErrInvalidTarget
	}

	trows := next.RowSections[tsi].Rows
	trows = append(trows, model.Row{})
	copy(trows[pos+1:], trows[pos:])
	trows[pos] = moved
	next.RowSections[tsi].Rows = trows

	if next.RowCount() != data.RowCount() {
		return unchanged, ErrCountMismatch
	}
	return MoveResult{Data: next, Changed: !slices.Equal(rowOrder(data), rowOrder(next))}, nil
}

func rowOrder(d model.SectionData) []string {
	out := make([]string, 0, d.RowCount())
	for _, s := range d.RowSections {
		for _, r := range s.Rows {
			out = append(out, s.SectionID+"\x00"+r.ID)
		}
	}
	return out
}

type colSlot struct {
	oldIdx    int
	sectionID string
	name      string
}

// MoveColumn moves data column colIdx to target. Column indexes are re-packed in the
// new left-to-right order and every row's cells are permuted to match.
func MoveColumn(data model.SectionData, colIdx int, target ColTarget) (MoveResult, error) {
	unchanged := MoveResult{Data: data}

	si, _, ok := data.FindColumn(colIdx)
	if !ok {
		return unchanged, notFoundIdx("column", colIdx)
	}
	if len(data.ColSections[si].Cols) == 1 {
		return unchanged, ErrSoleSectionMember
	}
	if target.Placement != PlaceInto && target.ColIdx == colIdx {
		return unchanged, nil
	}

	var next model.SectionData
	if err := deepcopy.Copy(&next, &data); err != nil {
		return unchanged, err
	}

	flat := sections.FlattenedColumns(next)
	order := make([]colSlot, 0, len(flat))
	var moved colSlot
	for _, c := range flat {
		slot := colSlot{oldIdx: c.Idx, sectionID: c.SectionID, name: c.Name}
		if c.Idx == colIdx {
			moved = slot
			continue
		}
		order = append(order, slot)
	}

	var pos int
	switch target.Placement {
	case PlaceBefore, PlaceAfter:
		pos = -1
		for i, s := range order {
			if s.oldIdx == target.ColIdx {
				pos = i
				moved.sectionID = s.sectionID
				break
			}
		}
		if pos < 0 {
			return unchanged, notFoundIdx("column", target.ColIdx)
		}
		if target.Placement == PlaceAfter {
			pos++
		}
	case PlaceInto:
		idx, err := resolveColSection(&next, target.SectionID)
		if err != nil {
			return unchanged, err
		}
		moved.sectionID = next.ColSections[idx].SectionID
		pos = len(order)
		for i := len(order) - 1; i >= 0; i-- {
			if order[i].sectionID == moved.sectionID {
				pos = i + 1
				break
			}
		}
	default:
		return unchanged, ErrInvalidTarget
	}
	order = slices.Insert(order, pos, moved)

	sectionIdx := map[string]int{}
	for i := range next.ColSections {
		next.ColSections[i].Cols = []model.ColDescriptor{}
		sectionIdx[next.ColSections[i].SectionID] = i
	}
	for newIdx, s := range order {
		i := sectionIdx[s.sectionID]
		next.ColSections[i].Cols = append(next.ColSections[i].Cols, model.ColDescriptor{Idx: newIdx, Name: s.name, ColIndex: newIdx + 1})
	}

	for rsi := range next.RowSections {
		for ri := range next.RowSections[rsi].Rows {
			row := &next.RowSections[rsi].Rows[ri]
			cells := make([]model.SubCell, len(order))
			for newIdx, s := range order {
				if s.oldIdx < len(row.Cells) {
					cells[newIdx] = row.Cells[s.oldIdx]
				}
				cells[newIdx].ColSectionID = s.sectionID
			}
			row.Cells = cells
		}
	}

	if next.ColCount() != data.ColCount() {
		return unchanged, ErrCountMismatch
	}
	changed := false
	for newIdx, s := range order {
		if s.oldIdx != newIdx {
			changed = true
		}
	}
	if data.ColSections[si].SectionID != moved.sectionID {
		changed = true
	}
	return MoveResult{Data: next, Changed: changed}, nil
}
