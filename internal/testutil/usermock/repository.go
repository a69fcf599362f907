package usermock

import (
	"context"

	domain "smartpay-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled getters fail fast.
type Repo struct {
	CreateFn                   func(ctx context.Context, u *domain.User) error
	GetByCustomerIDFn          func(ctx context.Context, customerID string) (*domain.User, error)
	GetByCustomerIDForUpdateFn func(ctx context.Context, customerID string) (*domain.User, error)
	GetByEmailFn               func(ctx context.Context, email string) (*domain.User, error)
	SaveFn                     func(ctx context.Context, u *domain.User) error
	ListByRoleFn               func(ctx context.Context, role domain.Role) ([]domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.User, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*domain.User, error) {
	if m.GetByCustomerIDForUpdateFn != nil {
		return m.GetByCustomerIDForUpdateFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	return nil, context.Canceled
}
