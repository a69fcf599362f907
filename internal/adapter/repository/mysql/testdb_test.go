package mysql

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	billDomain "smartpay-backend/internal/domain/bill"
	loanDomain "smartpay-backend/internal/domain/loan"
	requestDomain "smartpay-backend/internal/domain/request"
	userDomain "smartpay-backend/internal/domain/user"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The domain
// models avoid MySQL-only column types, so they migrate cleanly here.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{},
		&loanDomain.Loan{},
		&loanDomain.Installment{},
		&billDomain.Bill{},
		&requestDomain.Request{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
