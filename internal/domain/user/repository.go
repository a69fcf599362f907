package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByCustomerID(ctx context.Context, customerID string) (*User, error)
	// GetByCustomerIDForUpdate locks the row; only valid inside a transaction.
	GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, u *User) error
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
