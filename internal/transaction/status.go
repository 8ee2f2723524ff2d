package transaction

import (
	"context"
	"fmt"
)

// State is the lifecycle position of a transaction.
type State int

const (
	StateOpen State = iota
	StateCommitted
	StateRolledBack
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled_back"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Tx is the part of *sql.Tx a Status needs to resolve itself.
type Tx interface {
	Commit() error
	Rollback() error
}

// Status is the handle for one begun transaction.
// It is owned by the call that began it and is not safe for concurrent use.
type Status struct {
	ctx   context.Context
	tx    Tx
	state State
}

// NewStatus creates an open Status for tx. ctx should already carry the
// transaction if stores are expected to join it.
func NewStatus(ctx context.Context, tx Tx) *Status {
	return &Status{ctx: ctx, tx: tx, state: StateOpen}
}

// Context returns the context the transaction is bound to.
func (s *Status) Context() context.Context { return s.ctx }

// State reports whether the transaction is open, committed or rolled back.
func (s *Status) State() State { return s.state }

// Completed reports whether the transaction reached a terminal state.
func (s *Status) Completed() bool { return s.state != StateOpen }

// commit moves the Status to StateCommitted before calling the driver.
// A failed driver commit still leaves the Status terminal.
func (s *Status) commit() error {
	if s.Completed() {
		return fmt.Errorf("commit %s transaction: %w", s.state, ErrCompleted)
	}
	s.state = StateCommitted
	return s.tx.Commit()
}

func (s *Status) rollback() error {
	if s.Completed() {
		return fmt.Errorf("rollback %s transaction: %w", s.state, ErrCompleted)
	}
	s.state = StateRolledBack
	return s.tx.Rollback()
}
