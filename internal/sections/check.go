package sections

import (
	"fmt"
	"sort"

	"aboutliner/internal/model"
)

// InvariantError reports the first structural invariant a tree violates.
type InvariantError struct {
	Rule   string
	Detail string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("invalid section data (%s): %s", e.Rule, e.Detail)
}

// Check verifies the tree invariants: rectangular rows, contiguous column indexes,
// colIndex = idx+1, and document-wide unique row ids.
func Check(data model.SectionData) error {
	width := data.ColCount()

	idxs := make([]int, 0, width)
	for _, cs := range data.ColSections {
		for _, c := range cs.Cols {
			if c.ColIndex != c.Idx+1 {
				return InvariantError{Rule: "colIndex", Detail: fmt.Sprintf("column %d has colIndex %d", c.Idx, c.ColIndex)}
			}
			idxs = append(idxs, c.Idx)
		}
	}
	sort.Ints(idxs)
	for i, idx := range idxs {
		if idx != i {
			return InvariantError{Rule: "contiguous", Detail: fmt.Sprintf("expected column idx %d, found %d", i, idx)}
		}
	}

	seen := map[string]bool{}
	for _, rs := range data.RowSections {
		for _, r := range rs.Rows {
			if len(r.Cells) != width {
				return InvariantError{Rule: "rectangular", Detail: fmt.Sprintf("row %s has %d cells, expected %d", r.ID, len(r.Cells), width)}
			}
			if r.ID == "" {
				return InvariantError{Rule: "row-id", Detail: "row without id"}
			}
			if seen[r.ID] {
				return InvariantError{Rule: "row-id", Detail: "duplicate row id " + r.ID}
			}
			seen[r.ID] = true
		}
	}
	return nil
}
