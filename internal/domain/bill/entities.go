package bill

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("bill not found")
	ErrInvalidTransition = errors.New("invalid bill state transition")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Bill is the amortization record derived from an approved loan.
// remaining_installments counts down from the loan tenor to zero.
type Bill struct {
	ID                    uint64         `gorm:"primaryKey;column:id" json:"-"`
	BillID                string         `gorm:"size:32;uniqueIndex:ux_bills_bill_id_active" json:"bill_id"`
	CustomerID            string         `gorm:"size:32;index:idx_bills_customer_active" json:"customer_id"`
	LoanID                string         `gorm:"size:32;uniqueIndex:ux_bills_loan_active" json:"loan_id"`
	Total                 float64        `gorm:"type:decimal(18,2)" json:"total"`
	MonthlyInstallment    float64        `gorm:"type:decimal(18,2)" json:"monthly_installment"`
	RemainingInstallments int            `gorm:"column:remaining_installments" json:"remaining_installments"`
	NextDueDate           time.Time      `gorm:"column:next_due_date" json:"next_due_date"`
	Status                Status         `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Bill) TableName() string { return "bills" }
