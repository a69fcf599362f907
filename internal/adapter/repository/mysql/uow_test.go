package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"smartpay-backend/internal/domain/uow"
	userDomain "smartpay-backend/internal/domain/user"
	"smartpay-backend/pkg/id"
)

func TestWithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	email := "budi@example.com"
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Users.Create(ctx, &userDomain.User{
			CustomerID: id.NewID32(),
			Email:      email,
			LoanLimit:  userDomain.DefaultLoanLimit,
		})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if _, err := NewUserRepository(db).GetByEmail(ctx, email); err != nil {
		t.Fatalf("user not committed: %v", err)
	}
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Users.Create(ctx, &userDomain.User{
			CustomerID: id.NewID32(),
			Email:      "ghost@example.com",
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	if _, err := NewUserRepository(db).GetByEmail(ctx, "ghost@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("rollback failed: %v", err)
	}
}
