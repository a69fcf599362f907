package directory

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartpay-backend/internal/domain/user"
	"smartpay-backend/pkg/id"
)

type Usecase struct{ repo user.Repository }

func NewUsecase(r user.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	NationalID        string `json:"national_id"`
	BankName          string `json:"bank_name"`
	AccountNumber     string `json:"account_number"`
	AccountHolderName string `json:"account_holder_name"`
}

type UserDTO struct {
	CustomerID     string    `json:"customer_id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	LoanLimit      float64   `json:"loan_limit"`
	LoanBalance    float64   `json:"loan_balance"`
	SavingsBalance float64   `json:"savings_balance"`
	Blocked        bool      `json:"blocked"`
	CreatedAt      time.Time `json:"created_at"`
}

func toDTO(u *user.User) *UserDTO {
	return &UserDTO{
		CustomerID:     u.CustomerID,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           string(u.Role),
		LoanLimit:      u.LoanLimit,
		LoanBalance:    u.LoanBalance,
		SavingsBalance: u.SavingsBalance,
		Blocked:        u.Blocked,
		CreatedAt:      u.CreatedAt,
	}
}

// Register creates a customer with the default loan limit and zero balances.
// The password is bcrypt-hashed before it reaches the repository; plaintext
// credentials are never persisted.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	if _, err := u.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, user.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	nu := &user.User{
		CustomerID:        id.NewID32(),
		Email:             in.Email,
		FullName:          in.FullName,
		Role:              user.RoleCustomer,
		NationalID:        in.NationalID,
		BankName:          in.BankName,
		AccountNumber:     in.AccountNumber,
		AccountHolderName: in.AccountHolderName,
		LoanLimit:         user.DefaultLoanLimit,
		PasswordHash:      string(hash),
	}
	if err := u.repo.Create(ctx, nu); err != nil {
		// The unique index catches the race the pre-check cannot.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, err
	}
	return toDTO(nu), nil
}

// Authenticate checks credentials. Unknown email and wrong password are
// indistinguishable to the caller; blocked accounts are refused outright.
func (u *Usecase) Authenticate(ctx context.Context, email, password string) (*UserDTO, error) {
	usr, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}
	if usr.Blocked {
		return nil, user.ErrAccountBlocked
	}
	return toDTO(usr), nil
}

// Get returns the session view of an account. There is no denormalized copy:
// the directory row is the single source of truth.
func (u *Usecase) Get(ctx context.Context, customerID string) (*UserDTO, error) {
	usr, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, user.ErrNotFound
	}
	return toDTO(usr), nil
}

func (u *Usecase) ListCustomers(ctx context.Context) ([]UserDTO, error) {
	us, err := u.repo.ListByRole(ctx, user.RoleCustomer)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(us))
	for i := range us {
		out = append(out, *toDTO(&us[i]))
	}
	return out, nil
}

// SetBlocked flips the login gate on a customer account.
func (u *Usecase) SetBlocked(ctx context.Context, customerID string, blocked bool, adminID string) (*UserDTO, error) {
	admin, err := u.repo.GetByCustomerID(ctx, adminID)
	if err != nil || admin.Role != user.RoleAdmin {
		return nil, user.ErrNotAuthorized
	}
	usr, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, user.ErrNotFound
	}
	usr.Blocked = blocked
	if err := u.repo.Save(ctx, usr); err != nil {
		return nil, err
	}
	return toDTO(usr), nil
}

// SeedAdmin creates the one admin account if it does not exist yet. Idempotent
// across restarts.
func (u *Usecase) SeedAdmin(ctx context.Context, email, password string) error {
	if _, err := u.repo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.repo.Create(ctx, &user.User{
		CustomerID:   id.NewID32(),
		Email:        email,
		FullName:     "Administrator",
		Role:         user.RoleAdmin,
		PasswordHash: string(hash),
	})
}
