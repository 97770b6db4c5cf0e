package user

import "context"

// RepositoryInterface defines user data access
type RepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role Role, limit, offset int) ([]*User, int, error)
	Update(ctx context.Context, u *User) error
	SetActive(ctx context.Context, id int64, active bool) error
}
