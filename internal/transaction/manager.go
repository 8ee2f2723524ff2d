// Package transaction demarcates database transactions.
//
// A Manager begins a transaction and hands back a Status. The Status carries a
// context with the live transaction bound to it, so stores called with that
// context join the transaction without knowing about it. Every Status must be
// resolved exactly once, by Commit or by Rollback.
package transaction

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=manager.go -destination=mocks/manager.go -package=mocks

// Definition describes the transaction to begin.
// The zero value uses the driver's defaults.
type Definition struct {
	ReadOnly bool
}

func (d Definition) txOptions() *sql.TxOptions {
	if !d.ReadOnly {
		return nil
	}
	return &sql.TxOptions{ReadOnly: true}
}

// Manager begins, commits and rolls back transactions.
type Manager interface {
	// Begin starts a transaction. The returned Status must be passed to
	// exactly one of Commit or Rollback.
	Begin(ctx context.Context, def Definition) (*Status, error)
	Commit(status *Status) error
	Rollback(status *Status) error
}
