package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrAmountOutOfRange  = errors.New("loan amount out of range")
	ErrInvalidTransition = errors.New("invalid loan state transition")
	ErrAgreementRequired = errors.New("loan agreement must be accepted")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

const (
	// InterestRate is the flat rate applied once to the principal (0.3%).
	InterestRate = 0.003
	// TenorMonths is the fixed repayment tenor.
	TenorMonths = 6
	// MinPrincipal is the smallest loan a customer may apply for.
	MinPrincipal = 5_000_000
)

type Loan struct {
	ID                 uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID             string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	CustomerID         string         `gorm:"size:32;index:idx_loans_customer_active" json:"customer_id"`
	Principal          float64        `gorm:"type:decimal(18,2)" json:"principal"`
	Interest           float64        `gorm:"type:decimal(18,2)" json:"interest"`
	Total              float64        `gorm:"type:decimal(18,2)" json:"total"`
	MonthlyInstallment float64        `gorm:"type:decimal(18,2)" json:"monthly_installment"`
	Status             Status         `gorm:"size:16;default:'pending'" json:"status"`
	LoanDate           time.Time      `gorm:"column:loan_date" json:"loan_date"`
	StatusUpdatedAt    time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Resolve moves a pending loan to a terminal status. Terminal loans stay put.
func (l *Loan) Resolve(to Status, now time.Time) error {
	if l.Status != StatusPending {
		return ErrInvalidTransition
	}
	if to != StatusApproved && to != StatusRejected {
		return ErrInvalidTransition
	}
	l.Status = to
	l.StatusUpdatedAt = now
	return nil
}

// Installment is one row of a loan's repayment schedule (seq 1..6).
type Installment struct {
	ID      uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanRef uint64    `gorm:"column:loan_ref;index:idx_installments_loan" json:"-"`
	Seq     int       `gorm:"column:seq" json:"seq"`
	DueDate time.Time `gorm:"column:due_date" json:"due_date"`
	Amount  float64   `gorm:"type:decimal(18,2)" json:"amount"`
}

func (Installment) TableName() string { return "installments" }
