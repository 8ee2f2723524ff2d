package jdbc

import (
	"errors"
	"fmt"
)

// ErrDataAccess is the root of every data access failure in this package.
var ErrDataAccess = errors.New("data access")

var (
	// ErrNoMatchingRecord indicates a query expected to return one row returned none.
	ErrNoMatchingRecord = fmt.Errorf("%w: no matching data", ErrDataAccess)

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = fmt.Errorf("%w: duplicate entry", ErrDataAccess)

	// ErrConstraint indicates a foreign key or check constraint violation.
	ErrConstraint = fmt.Errorf("%w: constraint violation", ErrDataAccess)
)

// AmbiguousRecordCountError indicates a query expected to return one row
// returned Count rows.
type AmbiguousRecordCountError struct {
	Count int
}

func (e *AmbiguousRecordCountError) Error() string {
	return fmt.Sprintf("%s: expected 1 row, found %d", ErrDataAccess, e.Count)
}

func (e *AmbiguousRecordCountError) Unwrap() error { return ErrDataAccess }
