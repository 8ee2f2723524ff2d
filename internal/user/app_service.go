package user

import (
	"context"
	"fmt"
	"strings"
)

// AppService implements Service directly on the stores. It knows nothing
// about transactions; wrap it in a TxService to make ChangePassword atomic.
type AppService struct {
	users   *Store
	history *HistoryStore
	hasher  Hasher
	policy  PasswordPolicy
}

// NewAppService creates the plain user service.
func NewAppService(users *Store, history *HistoryStore, hasher Hasher, policy PasswordPolicy) *AppService {
	return &AppService{
		users:   users,
		history: history,
		hasher:  hasher,
		policy:  policy,
	}
}

func (s *AppService) FindByID(ctx context.Context, id int64) (*User, error) {
	return s.users.FindByID(ctx, id)
}

// Insert validates u and stores it with its password hashed. On success u
// carries the new ID and the hash; on failure u is left as given.
func (s *AppService) Insert(ctx context.Context, u *User) error {
	if strings.TrimSpace(u.Account) == "" {
		return &ValidationError{Field: "account", Reason: "required"}
	}
	if !strings.Contains(u.Email, "@") {
		return &ValidationError{Field: "email", Reason: "must be an email address"}
	}
	if err := s.policy.Check(u.Account, u.Password); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(u.Password)
	if err != nil {
		return err
	}
	stored := *u
	stored.Password = hash
	if err := s.users.Insert(ctx, &stored); err != nil {
		return err
	}
	*u = stored
	return nil
}

// ChangePassword stores a new password for user id and records who changed it.
// The user update and the history row are two statements; callers that need
// them to succeed or fail together must supply a transactional context.
func (s *AppService) ChangePassword(ctx context.Context, id int64, newPassword, modifiedBy string) error {
	if strings.TrimSpace(modifiedBy) == "" {
		return &ValidationError{Field: "modified_by", Reason: "required"}
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.Check(u.Account, newPassword); err != nil {
		return err
	}
	if s.hasher.Matches(u.Password, newPassword) {
		return &ValidationError{Field: "password", Reason: "must differ from the current password"}
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	u.Password = hash
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}
	if err := s.history.Log(ctx, NewHistory(u, modifiedBy)); err != nil {
		return fmt.Errorf("record password change: %w", err)
	}
	return nil
}
