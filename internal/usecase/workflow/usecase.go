package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartpay-backend/internal/domain/request"
	"smartpay-backend/internal/domain/uow"
	"smartpay-backend/internal/domain/user"
	"smartpay-backend/internal/usecase/ledger"
	"smartpay-backend/pkg/id"
)

var (
	ErrNameMismatch = errors.New("account holder name does not match registered name")
	ErrNotEligible  = errors.New("savings below the 10% withdrawal threshold")
)

// MinTopUp is the smallest accepted savings top-up.
const MinTopUp = 50_000

type Usecase struct {
	repo request.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r request.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type WithdrawalInput struct {
	CustomerID        string  `json:"customer_id"`
	Amount            float64 `json:"amount"`
	BankName          string  `json:"bank_name"`
	AccountNumber     string  `json:"account_number"`
	AccountHolderName string  `json:"account_holder_name"`
}

type TopUpInput struct {
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
}

type RequestDTO struct {
	RequestID  string     `json:"request_id"`
	Kind       string     `json:"kind"`
	CustomerID string     `json:"customer_id"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	ResolvedBy string     `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toDTO(r *request.Request) *RequestDTO {
	return &RequestDTO{
		RequestID:  r.RequestID,
		Kind:       string(r.Kind),
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Status:     string(r.Status),
		ResolvedBy: r.ResolvedBy,
		ResolvedAt: r.ResolvedAt,
		CreatedAt:  r.CreatedAt,
	}
}

// SubmitWithdrawal creates a pending withdrawal after the gate checks: the
// customer is not blocked, the amount fits the outstanding loan balance, the
// destination account is in the customer's own name, and the savings
// eligibility rule holds.
func (u *Usecase) SubmitWithdrawal(ctx context.Context, in WithdrawalInput) (*RequestDTO, error) {
	var dto *RequestDTO
	err := u.uow.WithinUserTx(ctx, in.CustomerID, func(r uow.Repos, usr *user.User) error {
		if usr.Blocked {
			return user.ErrAccountBlocked
		}
		if in.Amount <= 0 || in.Amount > usr.LoanBalance {
			return fmt.Errorf("%w: amount must be positive and at most %.0f", ledger.ErrInvalidAmount, usr.LoanBalance)
		}
		if !strings.EqualFold(in.AccountHolderName, usr.FullName) {
			return ErrNameMismatch
		}
		if !Eligible(usr) {
			return ErrNotEligible
		}

		req := &request.Request{
			RequestID:         id.NewID32(),
			Kind:              request.KindWithdrawal,
			CustomerID:        usr.CustomerID,
			Amount:            in.Amount,
			Status:            request.StatusPending,
			BankName:          in.BankName,
			AccountNumber:     in.AccountNumber,
			AccountHolderName: in.AccountHolderName,
		}
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		dto = toDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// SubmitTopUp creates a pending savings top-up. Nothing is credited until an
// admin approves.
func (u *Usecase) SubmitTopUp(ctx context.Context, in TopUpInput) (*RequestDTO, error) {
	var dto *RequestDTO
	err := u.uow.WithinUserTx(ctx, in.CustomerID, func(r uow.Repos, usr *user.User) error {
		if usr.Blocked {
			return user.ErrAccountBlocked
		}
		if in.Amount < MinTopUp {
			return fmt.Errorf("%w: top-up must be at least %d", ledger.ErrInvalidAmount, MinTopUp)
		}

		req := &request.Request{
			RequestID:  id.NewID32(),
			Kind:       request.KindTopUp,
			CustomerID: usr.CustomerID,
			Amount:     in.Amount,
			Status:     request.StatusPending,
		}
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		dto = toDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Resolve is the one transition function shared by both request kinds. Only an
// admin may call it, only pending requests move, and the ledger effect runs in
// the same transaction as the status flip with the customer row locked.
// Re-resolving a terminal request fails before any balance is touched.
func (u *Usecase) Resolve(ctx context.Context, requestID string, approve bool, adminID string) (*RequestDTO, error) {
	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		admin, err := r.Users.GetByCustomerID(ctx, adminID)
		if err != nil || admin.Role != user.RoleAdmin {
			return user.ErrNotAuthorized
		}

		req, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return request.ErrNotFound
		}
		usr, err := r.Users.GetByCustomerIDForUpdate(ctx, req.CustomerID)
		if err != nil {
			return user.ErrNotFound
		}

		now := time.Now().UTC()
		target := request.StatusRejected
		if approve {
			target = request.StatusApproved
		}
		if err := req.Resolve(target, adminID, now); err != nil {
			return err
		}

		if approve {
			switch req.Kind {
			case request.KindWithdrawal:
				// Balances may have moved since submission; the rule must
				// still hold at resolution time.
				if !Eligible(usr) {
					return ErrNotEligible
				}
				if err := ledger.Debit(usr, ledger.FieldLoanBalance, req.Amount); err != nil {
					return err
				}
			case request.KindTopUp:
				if err := ledger.Credit(usr, ledger.FieldSavingsBalance, req.Amount); err != nil {
					return err
				}
			}
			if err := r.Users.Save(ctx, usr); err != nil {
				return err
			}
		}

		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		dto = toDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerID string) ([]RequestDTO, error) {
	rs, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func (u *Usecase) ListByStatus(ctx context.Context, status request.Status) ([]RequestDTO, error) {
	rs, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func toDTOs(rs []request.Request) []RequestDTO {
	out := make([]RequestDTO, 0, len(rs))
	for i := range rs {
		out = append(out, *toDTO(&rs[i]))
	}
	return out
}
