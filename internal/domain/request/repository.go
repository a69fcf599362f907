package request

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// GetByRequestIDForUpdate locks the row; only valid inside a transaction.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Request, error)
	ListByStatus(ctx context.Context, status Status) ([]Request, error)
	Save(ctx context.Context, r *Request) error
}
