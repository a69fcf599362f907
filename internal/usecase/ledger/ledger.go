package ledger

import (
	"context"
	"errors"

	"smartpay-backend/internal/domain/uow"
	"smartpay-backend/internal/domain/user"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// Field names a mutable balance on the user record. The loan limit is fixed at
// registration and is deliberately not addressable here.
type Field string

const (
	FieldLoanBalance    Field = "loan_balance"
	FieldSavingsBalance Field = "savings_balance"
)

var errUnknownField = errors.New("unknown balance field")

// Credit adds amount to one of u's balances. Pure mutation; the caller owns
// locking and persistence.
func Credit(u *user.User, f Field, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	switch f {
	case FieldLoanBalance:
		u.LoanBalance += amount
	case FieldSavingsBalance:
		u.SavingsBalance += amount
	default:
		return errUnknownField
	}
	return nil
}

// Debit subtracts amount from one of u's balances, clamping at zero. A debit
// never drives a balance negative: the policy is "deduct what's owed", not
// reject the mutation.
func Debit(u *user.User, f Field, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	switch f {
	case FieldLoanBalance:
		u.LoanBalance = clampZero(u.LoanBalance - amount)
	case FieldSavingsBalance:
		u.SavingsBalance = clampZero(u.SavingsBalance - amount)
	default:
		return errUnknownField
	}
	return nil
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Usecase applies standalone ledger mutations in their own transaction, with
// the user row locked. These are admin adjustments, so the acting account's
// role is verified inside the same transaction. Flows that already hold a
// transaction (loan approval, request resolution) call Credit/Debit directly
// on the locked row instead.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) Credit(ctx context.Context, customerID string, f Field, amount float64, adminID string) (*user.User, error) {
	return u.apply(ctx, customerID, adminID, func(usr *user.User) error { return Credit(usr, f, amount) })
}

func (u *Usecase) Debit(ctx context.Context, customerID string, f Field, amount float64, adminID string) (*user.User, error) {
	return u.apply(ctx, customerID, adminID, func(usr *user.User) error { return Debit(usr, f, amount) })
}

func (u *Usecase) apply(ctx context.Context, customerID, adminID string, mutate func(*user.User) error) (*user.User, error) {
	var out *user.User
	err := u.uow.WithinUserTx(ctx, customerID, func(r uow.Repos, usr *user.User) error {
		admin, err := r.Users.GetByCustomerID(ctx, adminID)
		if err != nil || admin.Role != user.RoleAdmin {
			return user.ErrNotAuthorized
		}
		if err := mutate(usr); err != nil {
			return err
		}
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}
		out = usr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
