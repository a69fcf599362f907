package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	billDomain "smartpay-backend/internal/domain/bill"
)

type BillRepository struct{ db *gorm.DB }

func NewBillRepository(db *gorm.DB) *BillRepository { return &BillRepository{db: db} }

func (r *BillRepository) Create(ctx context.Context, b *billDomain.Bill) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BillRepository) Save(ctx context.Context, b *billDomain.Bill) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BillRepository) GetByBillID(ctx context.Context, billID string) (*billDomain.Bill, error) {
	var out billDomain.Bill
	res := r.db.WithContext(ctx).Where("bill_id = ?", billID).First(&out)
	return &out, res.Error
}

func (r *BillRepository) GetByBillIDForUpdate(ctx context.Context, billID string) (*billDomain.Bill, error) {
	var out billDomain.Bill
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("bill_id = ?", billID).
		First(&out)
	return &out, res.Error
}

func (r *BillRepository) GetByLoanID(ctx context.Context, loanID string) (*billDomain.Bill, error) {
	var out billDomain.Bill
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *BillRepository) ListByCustomerID(ctx context.Context, customerID string) ([]billDomain.Bill, error) {
	var out []billDomain.Bill
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
