package workflow

import "smartpay-backend/internal/domain/user"

// EligibilityThreshold is the minimum savings-to-loan ratio for withdrawals.
const EligibilityThreshold = 0.10

// SavingsRatio is savingsBalance / loanBalance, defined as 0 when the loan
// balance is zero (0/0 is 0%, not NaN).
func SavingsRatio(u *user.User) float64 {
	if u.LoanBalance <= 0 {
		return 0
	}
	return u.SavingsBalance / u.LoanBalance
}

// Eligible reports whether u may withdraw: an outstanding loan balance and
// savings of at least 10% of it. Checked at submission and re-checked at
// resolution, since balances can move between the two.
func Eligible(u *user.User) bool {
	return u.LoanBalance > 0 && SavingsRatio(u) >= EligibilityThreshold
}
