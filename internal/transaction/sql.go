package transaction

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLManager manages transactions on a *sql.DB.
type SQLManager struct {
	db *sql.DB
}

// NewSQLManager creates a manager for db.
func NewSQLManager(db *sql.DB) *SQLManager {
	return &SQLManager{db: db}
}

// Begin starts a transaction and binds it to the returned Status's context.
func (m *SQLManager) Begin(ctx context.Context, def Definition) (*Status, error) {
	if _, ok := TxFromContext(ctx); ok {
		return nil, ErrNestedTransaction
	}
	tx, err := m.db.BeginTx(ctx, def.txOptions())
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewStatus(WithTx(ctx, tx), tx), nil
}

// Commit commits the transaction.
func (m *SQLManager) Commit(status *Status) error {
	return status.commit()
}

// Rollback aborts the transaction.
func (m *SQLManager) Rollback(status *Status) error {
	return status.rollback()
}
