package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"smartpay-backend/internal/domain/loan"
)

// Quote is the priced breakdown of a principal amount: flat 0.3% interest,
// total payable, and the even monthly installment over the 6-month tenor.
type Quote struct {
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	Total              float64 `json:"total"`
	MonthlyInstallment float64 `json:"monthly_installment"`
}

var (
	interestRate = decimal.NewFromFloat(loan.InterestRate)
	tenor        = decimal.NewFromInt(loan.TenorMonths)
)

// NewQuote prices a principal. Pure function of (principal, rate, tenor):
// same input, same figures, no hidden state. Decimal arithmetic keeps the
// published figures exact (6,000,000 → 18,000 / 6,018,000 / 1,003,000) instead
// of accumulating binary-float drift.
func NewQuote(principal float64) Quote {
	p := decimal.NewFromFloat(principal)
	interest := p.Mul(interestRate).Round(2)
	total := p.Add(interest)
	monthly := total.Div(tenor).Round(2)
	return Quote{
		Principal:          principal,
		Interest:           interest.InexactFloat64(),
		Total:              total.InexactFloat64(),
		MonthlyInstallment: monthly.InexactFloat64(),
	}
}

// BuildSchedule lays out the repayment schedule: 6 entries, seq 1..6, each due
// exactly one calendar month after the previous, all for the same installment.
func BuildSchedule(start time.Time, monthlyInstallment float64) []loan.Installment {
	out := make([]loan.Installment, 0, loan.TenorMonths)
	for seq := 1; seq <= loan.TenorMonths; seq++ {
		out = append(out, loan.Installment{
			Seq:     seq,
			DueDate: start.AddDate(0, seq, 0),
			Amount:  monthlyInstallment,
		})
	}
	return out
}
