package bill

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByBillID(ctx context.Context, billID string) (*Bill, error)
	// GetByBillIDForUpdate locks the row; only valid inside a transaction.
	GetByBillIDForUpdate(ctx context.Context, billID string) (*Bill, error)
	GetByLoanID(ctx context.Context, loanID string) (*Bill, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Bill, error)
	Save(ctx context.Context, b *Bill) error
}
