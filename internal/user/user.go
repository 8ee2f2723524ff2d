// Package user manages user accounts and their password change history.
package user

import "time"

// User is a registered account. Password holds a bcrypt hash once stored.
type User struct {
	ID       int64
	Account  string
	Password string
	Email    string
}

// History is an audit snapshot of a user taken when their password changes.
type History struct {
	ID        int64
	UserID    int64
	Account   string
	Password  string
	Email     string
	CreatedAt time.Time
	CreatedBy string
}

// NewHistory snapshots u as modified by createdBy.
func NewHistory(u *User, createdBy string) *History {
	return &History{
		UserID:    u.ID,
		Account:   u.Account,
		Password:  u.Password,
		Email:     u.Email,
		CreatedAt: time.Now().UTC(),
		CreatedBy: createdBy,
	}
}
