// Package jdbc provides small helpers for running SQL against a *sql.DB or
// the transaction bound to a context.
package jdbc

// SingleResult returns the only element of results.
// An empty slice fails with ErrNoMatchingRecord and a slice with more than one
// element fails with *AmbiguousRecordCountError.
func SingleResult[T any](results []T) (T, error) {
	var zero T
	switch len(results) {
	case 0:
		return zero, ErrNoMatchingRecord
	case 1:
		return results[0], nil
	default:
		return zero, &AmbiguousRecordCountError{Count: len(results)}
	}
}
