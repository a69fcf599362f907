package request

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("request not found")
	ErrInvalidTransition = errors.New("request already resolved")
)

// Kind tags the workflow a request belongs to. Withdrawals and top-ups share
// one lifecycle (pending → approved|rejected) and one transition function.
type Kind string

const (
	KindWithdrawal Kind = "withdrawal"
	KindTopUp      Kind = "topup"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Request struct {
	ID         uint64  `gorm:"primaryKey;column:id" json:"-"`
	RequestID  string  `gorm:"size:32;uniqueIndex:ux_requests_request_id_active" json:"request_id"`
	Kind       Kind    `gorm:"size:16;index:idx_requests_kind_status" json:"kind"`
	CustomerID string  `gorm:"size:32;index:idx_requests_customer_active" json:"customer_id"`
	Amount     float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Status     Status  `gorm:"size:16;default:'pending';index:idx_requests_kind_status" json:"status"`

	// Destination bank details; populated for withdrawals only.
	BankName          string `gorm:"size:128" json:"bank_name,omitempty"`
	AccountNumber     string `gorm:"size:64" json:"account_number,omitempty"`
	AccountHolderName string `gorm:"size:255" json:"account_holder_name,omitempty"`

	ResolvedBy string     `gorm:"size:32" json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Request) TableName() string { return "requests" }

// Resolve is the single transition out of pending. Approved and rejected are
// terminal: resolving twice fails rather than silently succeeding, so a
// double-approval can never credit or debit a balance twice.
func (r *Request) Resolve(to Status, adminID string, now time.Time) error {
	if r.Status != StatusPending {
		return ErrInvalidTransition
	}
	if to != StatusApproved && to != StatusRejected {
		return ErrInvalidTransition
	}
	r.Status = to
	r.ResolvedBy = adminID
	r.ResolvedAt = &now
	return nil
}
