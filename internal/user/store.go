package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/jdbc"
)

// Store provides access to user rows. Calls made with a context from
// transaction.Manager.Begin run inside that transaction.
type Store struct {
	tmpl *jdbc.Template
}

// NewStore creates a new user store.
func NewStore(tmpl *jdbc.Template) *Store {
	return &Store{tmpl: tmpl}
}

func scanUser(row jdbc.Scanner) (*User, error) {
	u := &User{}
	if err := row.Scan(&u.ID, &u.Account, &u.Password, &u.Email); err != nil {
		return nil, err
	}
	return u, nil
}

// notFound adds ErrNotFound to a single-row lookup that matched nothing.
func notFound(err error, what string) error {
	if errors.Is(err, jdbc.ErrNoMatchingRecord) {
		return fmt.Errorf("%s: %w: %w", what, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// FindByID retrieves a user by ID.
// Returns an error matching ErrNotFound if the user does not exist.
func (s *Store) FindByID(ctx context.Context, id int64) (*User, error) {
	u, err := jdbc.QueryForObject(ctx, s.tmpl, scanUser,
		`SELECT id, account, password, email FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("get user %d", id))
	}
	return u, nil
}

// FindByAccount retrieves a user by account name.
func (s *Store) FindByAccount(ctx context.Context, account string) (*User, error) {
	u, err := jdbc.QueryForObject(ctx, s.tmpl, scanUser,
		`SELECT id, account, password, email FROM users WHERE account = ?`, account)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("get user %q", account))
	}
	return u, nil
}

// List returns all users ordered by ID.
func (s *Store) List(ctx context.Context) ([]*User, error) {
	users, err := jdbc.Query(ctx, s.tmpl, scanUser,
		`SELECT id, account, password, email FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Insert adds u and sets its ID.
func (s *Store) Insert(ctx context.Context, u *User) error {
	id, err := s.tmpl.Insert(ctx,
		`INSERT INTO users (account, password, email) VALUES (?, ?, ?)`,
		u.Account, u.Password, u.Email)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	u.ID = id
	return nil
}

// Update overwrites the stored account, password and email of u.
func (s *Store) Update(ctx context.Context, u *User) error {
	n, err := s.tmpl.Update(ctx,
		`UPDATE users SET account = ?, password = ?, email = ? WHERE id = ?`,
		u.Account, u.Password, u.Email, u.ID)
	if err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("update user %d: %w", u.ID, ErrNotFound)
	}
	return nil
}
