package mutate

import (
	"errors"
	"fmt"
)

var (
	// ErrSoleSectionMember rejects moving the only row/column of a section.
	ErrSoleSectionMember = errors.New("rejected: sole section member")
	// ErrCountMismatch rejects a reorder whose result would gain or lose items.
	ErrCountMismatch = errors.New("rejected: item count changed")
	ErrInvalidTarget = errors.New("invalid target")
	ErrDuplicateID   = errors.New("duplicate row id")
	ErrNilData       = errors.New("missing section data")
)

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func notFoundIdx(kind string, idx int) error {
	return NotFoundError{Kind: kind, ID: fmt.Sprintf("%d", idx)}
}
