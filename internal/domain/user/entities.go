package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthorized      = errors.New("actor is not authorized")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// DefaultLoanLimit is the ceiling assigned to every customer at registration.
const DefaultLoanLimit = 7_000_000

type User struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string `gorm:"size:32;uniqueIndex:ux_users_customer_id_active" json:"customer_id"`
	Email      string `gorm:"size:255;uniqueIndex:ux_users_email_active" json:"email"`
	FullName   string `gorm:"size:255" json:"full_name"`
	Role       Role   `gorm:"size:16;default:'customer'" json:"role"`

	// KYC fields, collected at registration and not further processed.
	NationalID        string `gorm:"size:16;column:national_id" json:"national_id"`
	BankName          string `gorm:"size:128" json:"bank_name"`
	AccountNumber     string `gorm:"size:64" json:"account_number"`
	AccountHolderName string `gorm:"size:255" json:"account_holder_name"`

	LoanLimit      float64 `gorm:"type:decimal(18,2)" json:"loan_limit"`
	LoanBalance    float64 `gorm:"type:decimal(18,2)" json:"loan_balance"`
	SavingsBalance float64 `gorm:"type:decimal(18,2)" json:"savings_balance"`

	Blocked      bool   `gorm:"default:false" json:"blocked"`
	PasswordHash string `gorm:"size:72;column:password_hash" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
