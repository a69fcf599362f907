package workflow

import (
	"testing"

	userDomain "smartpay-backend/internal/domain/user"
)

func TestEligible(t *testing.T) {
	cases := []struct {
		name    string
		loan    float64
		savings float64
		want    bool
	}{
		{"zero loan, zero savings", 0, 0, false},
		{"zero loan, large savings", 0, 10_000_000, false},
		{"exactly at threshold", 6_000_000, 600_000, true},
		{"just below threshold", 6_000_000, 599_999, false},
		{"well above threshold", 1_000_000, 500_000, true},
		{"no savings", 5_000_000, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := &userDomain.User{LoanBalance: tc.loan, SavingsBalance: tc.savings}
			if got := Eligible(u); got != tc.want {
				t.Errorf("Eligible(loan=%v, savings=%v) = %v, want %v", tc.loan, tc.savings, got, tc.want)
			}
		})
	}
}

func TestSavingsRatio_ZeroLoanIsZeroNotNaN(t *testing.T) {
	u := &userDomain.User{LoanBalance: 0, SavingsBalance: 500_000}
	if r := SavingsRatio(u); r != 0 {
		t.Fatalf("ratio = %v, want 0", r)
	}
}
