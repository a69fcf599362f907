package mysql

import (
	"context"

	"gorm.io/gorm"

	"smartpay-backend/internal/domain/uow"
	"smartpay-backend/internal/domain/user"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:    &UserRepository{db: tx},
		Loans:    &LoanRepository{db: tx},
		Bills:    &BillRepository{db: tx},
		Requests: &RequestRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinUserTx(ctx context.Context, customerID string, fn func(r uow.Repos, usr *user.User) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the user row up-front to serialize balance mutations
		usr, err := r.Users.GetByCustomerIDForUpdate(ctx, customerID)
		if err != nil {
			return user.ErrNotFound
		}
		return fn(r, usr)
	})
}
