package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row; only valid inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error

	CreateInstallments(ctx context.Context, rows []Installment) error
	// ListInstallments returns a loan's schedule ordered by seq.
	ListInstallments(ctx context.Context, loanRef uint64) ([]Installment, error)
}
