package loan

import (
	"context"
	"fmt"
	"time"

	"smartpay-backend/internal/domain/loan"
	"smartpay-backend/internal/domain/uow"
	"smartpay-backend/internal/domain/user"
	billUC "smartpay-backend/internal/usecase/bill"
	"smartpay-backend/internal/usecase/ledger"
	"smartpay-backend/pkg/id"
)

type Usecase struct {
	repo loan.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type ApplyInput struct {
	CustomerID        string  `json:"customer_id"`
	Principal         float64 `json:"principal"`
	AgreementAccepted bool    `json:"agreement_accepted"`
}

type LoanDTO struct {
	LoanID             string             `json:"loan_id"`
	CustomerID         string             `json:"customer_id"`
	Principal          float64            `json:"principal"`
	Interest           float64            `json:"interest"`
	Total              float64            `json:"total"`
	MonthlyInstallment float64            `json:"monthly_installment"`
	Status             string             `json:"status"`
	LoanDate           time.Time          `json:"loan_date"`
	Schedule           []loan.Installment `json:"schedule,omitempty"`
}

func toDTO(l *loan.Loan, sched []loan.Installment) *LoanDTO {
	return &LoanDTO{
		LoanID:             l.LoanID,
		CustomerID:         l.CustomerID,
		Principal:          l.Principal,
		Interest:           l.Interest,
		Total:              l.Total,
		MonthlyInstallment: l.MonthlyInstallment,
		Status:             string(l.Status),
		LoanDate:           l.LoanDate,
		Schedule:           sched,
	}
}

func checkBounds(principal, limit float64) error {
	if principal < loan.MinPrincipal || principal > limit {
		return fmt.Errorf("%w: principal must be between %.0f and %.0f",
			loan.ErrAmountOutOfRange, float64(loan.MinPrincipal), limit)
	}
	return nil
}

// Apply prices the principal and, with the agreement signed, books the loan as
// approved in one transaction: loan row, 6 installments, the bill, and the
// loan-balance credit all commit together or not at all.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if !in.AgreementAccepted {
		return nil, loan.ErrAgreementRequired
	}

	var dto *LoanDTO
	err := u.uow.WithinUserTx(ctx, in.CustomerID, func(r uow.Repos, usr *user.User) error {
		if usr.Blocked {
			return user.ErrAccountBlocked
		}
		if err := checkBounds(in.Principal, usr.LoanLimit); err != nil {
			return err
		}

		now := time.Now().UTC()
		q := NewQuote(in.Principal)
		l := &loan.Loan{
			LoanID:             id.NewID32(),
			CustomerID:         usr.CustomerID,
			Principal:          q.Principal,
			Interest:           q.Interest,
			Total:              q.Total,
			MonthlyInstallment: q.MonthlyInstallment,
			Status:             loan.StatusApproved,
			LoanDate:           now,
			StatusUpdatedAt:    now,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		sched, err := u.bookApproval(ctx, r, usr, l, now)
		if err != nil {
			return err
		}
		dto = toDTO(l, sched)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// bookApproval persists the side effects every loan approval carries: the
// installment schedule, exactly one bill, and the principal credited to the
// customer's loan balance. Caller holds the tx and the locked user row.
func (u *Usecase) bookApproval(ctx context.Context, r uow.Repos, usr *user.User, l *loan.Loan, now time.Time) ([]loan.Installment, error) {
	sched := BuildSchedule(l.LoanDate, l.MonthlyInstallment)
	for i := range sched {
		sched[i].LoanRef = l.ID
	}
	if err := r.Loans.CreateInstallments(ctx, sched); err != nil {
		return nil, err
	}

	if err := r.Bills.Create(ctx, billUC.Open(l, sched[0].DueDate)); err != nil {
		return nil, err
	}

	if err := ledger.Credit(usr, ledger.FieldLoanBalance, l.Principal); err != nil {
		return nil, err
	}
	if err := r.Users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return sched, nil
}

// Resolve is the admin workflow over loans still pending: approve books the
// same side effects as a direct application; reject only flips the status.
// Terminal loans signal an invalid transition either way.
func (u *Usecase) Resolve(ctx context.Context, loanID string, approve bool, adminID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		admin, err := r.Users.GetByCustomerID(ctx, adminID)
		if err != nil {
			return user.ErrNotAuthorized
		}
		if admin.Role != user.RoleAdmin {
			return user.ErrNotAuthorized
		}

		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return loan.ErrNotFound
		}

		now := time.Now().UTC()
		target := loan.StatusRejected
		if approve {
			target = loan.StatusApproved
		}
		if err := l.Resolve(target, now); err != nil {
			return err
		}

		var sched []loan.Installment
		if approve {
			usr, err := r.Users.GetByCustomerIDForUpdate(ctx, l.CustomerID)
			if err != nil {
				return user.ErrNotFound
			}
			l.LoanDate = now
			if sched, err = u.bookApproval(ctx, r, usr, l, now); err != nil {
				return err
			}
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l, sched)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, loan.ErrNotFound
	}
	sched, err := u.repo.ListInstallments(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return toDTO(l, sched), nil
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerID string) ([]LoanDTO, error) {
	ls, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i], nil))
	}
	return out, nil
}
