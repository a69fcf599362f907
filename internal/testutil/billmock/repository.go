package billmock

import (
	"context"

	domain "smartpay-backend/internal/domain/bill"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, b *domain.Bill) error
	GetByBillIDFn          func(ctx context.Context, billID string) (*domain.Bill, error)
	GetByBillIDForUpdateFn func(ctx context.Context, billID string) (*domain.Bill, error)
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Bill, error)
	ListByCustomerIDFn     func(ctx context.Context, customerID string) ([]domain.Bill, error)
	SaveFn                 func(ctx context.Context, b *domain.Bill) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Bill) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBillID(ctx context.Context, billID string) (*domain.Bill, error) {
	if m.GetByBillIDFn != nil {
		return m.GetByBillIDFn(ctx, billID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByBillIDForUpdate(ctx context.Context, billID string) (*domain.Bill, error) {
	if m.GetByBillIDForUpdateFn != nil {
		return m.GetByBillIDForUpdateFn(ctx, billID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Bill, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Bill, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, b *domain.Bill) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}
