package bill

import (
	"context"
	"time"

	"smartpay-backend/internal/domain/bill"
	"smartpay-backend/internal/domain/loan"
	"smartpay-backend/internal/domain/uow"
	"smartpay-backend/pkg/id"
)

// Open builds the bill an approved loan carries: full tenor outstanding, first
// installment due on the schedule's opening date.
func Open(l *loan.Loan, firstDue time.Time) *bill.Bill {
	return &bill.Bill{
		BillID:                id.NewID32(),
		CustomerID:            l.CustomerID,
		LoanID:                l.LoanID,
		Total:                 l.Total,
		MonthlyInstallment:    l.MonthlyInstallment,
		RemainingInstallments: loan.TenorMonths,
		NextDueDate:           firstDue,
		Status:                bill.StatusActive,
	}
}

type Usecase struct {
	repo bill.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r bill.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type BillDTO struct {
	BillID                string    `json:"bill_id"`
	CustomerID            string    `json:"customer_id"`
	LoanID                string    `json:"loan_id"`
	Total                 float64   `json:"total"`
	MonthlyInstallment    float64   `json:"monthly_installment"`
	RemainingInstallments int       `json:"remaining_installments"`
	NextDueDate           time.Time `json:"next_due_date"`
	Status                string    `json:"status"`
}

func toDTO(b *bill.Bill) *BillDTO {
	return &BillDTO{
		BillID:                b.BillID,
		CustomerID:            b.CustomerID,
		LoanID:                b.LoanID,
		Total:                 b.Total,
		MonthlyInstallment:    b.MonthlyInstallment,
		RemainingInstallments: b.RemainingInstallments,
		NextDueDate:           b.NextDueDate,
		Status:                string(b.Status),
	}
}

// ApplyPayment records one installment against an active bill: the remaining
// count drops by one, the next due date advances along the loan's schedule,
// and the bill completes when the count reaches zero. Paying a completed bill
// is an invalid transition, not a no-op.
func (u *Usecase) ApplyPayment(ctx context.Context, billID string) (*BillDTO, error) {
	var dto *BillDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Bills.GetByBillIDForUpdate(ctx, billID)
		if err != nil {
			return bill.ErrNotFound
		}
		if b.Status != bill.StatusActive || b.RemainingInstallments <= 0 {
			return bill.ErrInvalidTransition
		}

		l, err := r.Loans.GetByLoanID(ctx, b.LoanID)
		if err != nil {
			return loan.ErrNotFound
		}
		sched, err := r.Loans.ListInstallments(ctx, l.ID)
		if err != nil {
			return err
		}

		b.RemainingInstallments--
		if b.RemainingInstallments == 0 {
			b.Status = bill.StatusCompleted
		} else {
			// paid k installments so far; the next due entry is seq k+1
			paid := loan.TenorMonths - b.RemainingInstallments
			if paid < len(sched) {
				b.NextDueDate = sched[paid].DueDate
			}
		}
		if err := r.Bills.Save(ctx, b); err != nil {
			return err
		}
		dto = toDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, billID string) (*BillDTO, error) {
	b, err := u.repo.GetByBillID(ctx, billID)
	if err != nil {
		return nil, bill.ErrNotFound
	}
	return toDTO(b), nil
}

// GetByLoan resolves the single bill an approved loan carries.
func (u *Usecase) GetByLoan(ctx context.Context, loanID string) (*BillDTO, error) {
	b, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, bill.ErrNotFound
	}
	return toDTO(b), nil
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerID string) ([]BillDTO, error) {
	bs, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]BillDTO, 0, len(bs))
	for i := range bs {
		out = append(out, *toDTO(&bs[i]))
	}
	return out, nil
}
