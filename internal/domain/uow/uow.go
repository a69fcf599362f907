package uow

import (
	"context"

	"smartpay-backend/internal/domain/bill"
	"smartpay-backend/internal/domain/loan"
	"smartpay-backend/internal/domain/request"
	"smartpay-backend/internal/domain/user"
)

type Repos struct {
	Users    user.Repository
	Loans    loan.Repository
	Bills    bill.Repository
	Requests request.Repository
}

// UnitOfWork scopes a set of repository calls to one database transaction.
// Balance-mutating flows go through here so the affected rows can be locked
// up-front; with row locks inside a single tx, concurrent submissions and
// admin resolutions cannot lose updates to each other.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the user row first, then pass it in
	WithinUserTx(ctx context.Context, customerID string, fn func(r Repos, u *user.User) error) error
}
