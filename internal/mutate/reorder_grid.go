package mutate

import (
	"slices"

	"aboutliner/internal/model"

	"github.com/tiendc/go-deepcopy"
)

// GridTarget addresses a position in the flat grid. For Before/After, Index is the
// anchor row (for rows) or the anchor column >= 1 (for columns), in the grid's current
// coordinates. For Into, Section names the destination; nil means unsectioned.
type GridTarget struct {
	Placement Placement
	Index     int
	Section   *model.SectionRef
}

type GridMoveResult struct {
	Grid    model.Grid
	Changed bool
}

// MoveGridRow moves row from to target. The moved row's title cell takes the target's
// row section; moving to an unsectioned target removes the section entirely.
func MoveGridRow(grid model.Grid, from int, target GridTarget) (GridMoveResult, error) {
	unchanged := GridMoveResult{Grid: grid}
	if from < 0 || from >= len(grid) || len(grid[from]) == 0 {
		return unchanged, ErrInvalidTarget
	}
	srcSection := grid[from][0].SectionIDOf()
	members := 0
	for _, row := range grid {
		if len(row) > 0 && row[0].SectionIDOf() == srcSection {
			members++
		}
	}
	if members == 1 {
		return unchanged, ErrSoleSectionMember
	}
	if target.Placement != PlaceInto {
		if target.Index < 0 || target.Index >= len(grid) || len(grid[target.Index]) == 0 {
			return unchanged, ErrInvalidTarget
		}
		if target.Index == from {
			return unchanged, nil
		}
	}

	var next model.Grid
	if err := deepcopy.Copy(&next, &grid); err != nil {
		return unchanged, err
	}
	order := make([]int, len(next))
	for i := range order {
		order[i] = i
	}

	moved := next[from]
	next = slices.Delete(next, from, from+1)
	order = slices.Delete(order, from, from+1)

	var pos int
	var section *model.SectionRef
	switch target.Placement {
	case PlaceBefore, PlaceAfter:
		anchor := target.Index
		if anchor > from {
			anchor--
		}
		pos = anchor
		if target.Placement == PlaceAfter {
			pos++
		}
		section = next[anchor][0].Section
	case PlaceInto:
		want := ""
		if target.Section != nil {
			want = target.Section.SectionID
		}
		pos = len(next)
		found := false
		for i := len(next) - 1; i >= 0; i-- {
			if len(next[i]) > 0 && next[i][0].SectionIDOf() == want {
				pos = i + 1
				section = next[i][0].Section
				found = true
				break
			}
		}
		if !found && target.Section != nil {
			s := *target.Section
			section = &s
		}
	default:
		return unchanged, ErrInvalidTarget
	}

	moved[0].Section = section
	next = slices.Insert(next, pos, moved)
	order = slices.Insert(order, pos, from)

	if len(next) != len(grid) {
		return unchanged, ErrCountMismatch
	}
	changed := srcSection != moved[0].SectionIDOf()
	for i, o := range order {
		if i != o {
			changed = true
		}
	}
	return GridMoveResult{Grid: next, Changed: changed}, nil
}

// MoveGridColumn moves data column from (>= 1) to target across every row. The first
// row is the canonical source of column sections; the moved column takes the target
// column's section in every row.
func MoveGridColumn(grid model.Grid, from int, target GridTarget) (GridMoveResult, error) {
	unchanged := GridMoveResult{Grid: grid}
	if len(grid) == 0 || from < 1 || from >= len(grid[0]) {
		return unchanged, ErrInvalidTarget
	}
	width := len(grid[0])
	srcSection := grid[0][from].SectionIDOf()
	members := 0
	for c := 1; c < width; c++ {
		if grid[0][c].SectionIDOf() == srcSection {
			members++
		}
	}
	if members == 1 {
		return unchanged, ErrSoleSectionMember
	}
	if target.Placement != PlaceInto {
		if target.Index < 1 || target.Index >= width {
			return unchanged, ErrInvalidTarget
		}
		if target.Index == from {
			return unchanged, nil
		}
	}

	var next model.Grid
	if err := deepcopy.Copy(&next, &grid); err != nil {
		return unchanged, err
	}
	for r := range next {
		for len(next[r]) < width {
			next[r] = append(next[r], model.Cell{})
		}
	}

	head := slices.Delete(slices.Clone(next[0]), from, from+1)
	var pos int
	var section *model.SectionRef
	switch target.Placement {
	case PlaceBefore, PlaceAfter:
		anchor := target.Index
		if anchor > from {
			anchor--
		}
		pos = anchor
		if target.Placement == PlaceAfter {
			pos++
		}
		section = head[anchor].Section
	case PlaceInto:
		want := ""
		if target.Section != nil {
			want = target.Section.SectionID
		}
		pos = len(head)
		found := false
		for c := len(head) - 1; c >= 1; c-- {
			if head[c].SectionIDOf() == want {
				pos = c + 1
				section = head[c].Section
				found = true
				break
			}
		}
		if !found && target.Section != nil {
			s := *target.Section
			section = &s
		}
	default:
		return unchanged, ErrInvalidTarget
	}

	for r := range next {
		cell := next[r][from]
		cell.Section = section
		row := slices.Delete(next[r], from, from+1)
		next[r] = slices.Insert(row, pos, cell)
	}

	if len(next) != len(grid) || len(next[0]) != width {
		return unchanged, ErrCountMismatch
	}
	changed := pos != from || srcSection != next[0][pos].SectionIDOf()
	return GridMoveResult{Grid: next, Changed: changed}, nil
}
