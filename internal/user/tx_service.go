package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/transaction"
)

// TxService decorates a Service so that ChangePassword runs in a transaction.
// FindByID and Insert are forwarded unchanged.
type TxService struct {
	tm     transaction.Manager
	svc    Service
	logger *slog.Logger
}

// NewTxService wraps svc. A nil logger uses slog.Default().
func NewTxService(tm transaction.Manager, svc Service, logger *slog.Logger) *TxService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TxService{
		tm:     tm,
		svc:    svc,
		logger: logger,
	}
}

func (s *TxService) FindByID(ctx context.Context, id int64) (*User, error) {
	return s.svc.FindByID(ctx, id)
}

func (s *TxService) Insert(ctx context.Context, u *User) error {
	return s.svc.Insert(ctx, u)
}

// ChangePassword commits when the wrapped call succeeds. When it fails the
// error is logged, the transaction is rolled back and the same error value is
// returned. A rollback failure is joined to it rather than replacing it.
func (s *TxService) ChangePassword(ctx context.Context, id int64, newPassword, modifiedBy string) error {
	status, err := s.tm.Begin(ctx, transaction.Definition{})
	if err != nil {
		return err
	}

	// Reached only when the wrapped call panics; the panic keeps unwinding.
	returned := false
	defer func() {
		if returned {
			return
		}
		s.logger.Error("change password panicked, rolling back", "user_id", id, "modified_by", modifiedBy)
		if rbErr := s.tm.Rollback(status); rbErr != nil {
			s.logger.Error("rollback failed", "error", rbErr, "user_id", id, "modified_by", modifiedBy)
		}
	}()

	err = s.svc.ChangePassword(status.Context(), id, newPassword, modifiedBy)
	returned = true
	if err != nil {
		s.logger.Error(err.Error(), "error", err, "user_id", id, "modified_by", modifiedBy)
		if rbErr := s.tm.Rollback(status); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := s.tm.Commit(status); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
