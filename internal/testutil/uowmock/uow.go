package uowmock

import (
	"context"
	"errors"

	"smartpay-backend/internal/domain/uow"
	"smartpay-backend/internal/domain/user"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinUserTxFn func(ctx context.Context, customerID string, fn func(r uow.Repos, u *user.User) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that runs the closure directly against the given
// repos, with no real transaction. WithinUserTx resolves the user through
// r.Users.GetByCustomerIDForUpdate, mirroring the real implementation.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinUserTxFn: func(ctx context.Context, customerID string, fn func(uow.Repos, *user.User) error) error {
			u, err := r.Users.GetByCustomerIDForUpdate(ctx, customerID)
			if err != nil {
				return user.ErrNotFound
			}
			return fn(r, u)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinUserTx(ctx context.Context, customerID string, fn func(r uow.Repos, u *user.User) error) error {
	if m.WithinUserTxFn != nil {
		return m.WithinUserTxFn(ctx, customerID, fn)
	}
	return errUnimplemented
}
