package transaction

import "errors"

var (
	// ErrCompleted indicates the transaction was already committed or rolled back.
	ErrCompleted = errors.New("transaction already completed")

	// ErrNestedTransaction indicates Begin was called with a context that
	// already carries a transaction.
	ErrNestedTransaction = errors.New("nested transactions are not supported")
)
