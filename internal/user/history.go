package user

import (
	"context"
	"fmt"

	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/jdbc"
)

// HistoryStore records password change history.
type HistoryStore struct {
	tmpl *jdbc.Template
}

// NewHistoryStore creates a new history store.
func NewHistoryStore(tmpl *jdbc.Template) *HistoryStore {
	return &HistoryStore{tmpl: tmpl}
}

// Log appends h and sets its ID.
func (s *HistoryStore) Log(ctx context.Context, h *History) error {
	id, err := s.tmpl.Insert(ctx, `
		INSERT INTO user_history (user_id, account, password, email, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?)`,
		h.UserID, h.Account, h.Password, h.Email, h.CreatedAt, h.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert user history: %w", err)
	}
	h.ID = id
	return nil
}

// ForUser returns the history of userID, oldest first.
func (s *HistoryStore) ForUser(ctx context.Context, userID int64) ([]*History, error) {
	rows, err := jdbc.Query(ctx, s.tmpl, func(row jdbc.Scanner) (*History, error) {
		h := &History{}
		err := row.Scan(&h.ID, &h.UserID, &h.Account, &h.Password, &h.Email, &h.CreatedAt, &h.CreatedBy)
		return h, err
	}, `
		SELECT id, user_id, account, password, email, created_at, created_by
		FROM user_history
		WHERE user_id = ?
		ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user history: %w", err)
	}
	return rows, nil
}
