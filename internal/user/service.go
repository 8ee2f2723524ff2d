package user

import "context"

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Service is the set of user operations shared by AppService and TxService.
type Service interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	Insert(ctx context.Context, u *User) error
	ChangePassword(ctx context.Context, id int64, newPassword, modifiedBy string) error
}

var (
	_ Service = (*AppService)(nil)
	_ Service = (*TxService)(nil)
)
