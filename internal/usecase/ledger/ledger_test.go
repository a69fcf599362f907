package ledger

import (
	"context"
	"errors"
	"testing"

	"smartpay-backend/internal/domain/uow"
	userDomain "smartpay-backend/internal/domain/user"
	"smartpay-backend/internal/testutil/uowmock"
	"smartpay-backend/internal/testutil/usermock"
)

func TestCredit(t *testing.T) {
	u := &userDomain.User{LoanBalance: 100, SavingsBalance: 50}

	if err := Credit(u, FieldLoanBalance, 900); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if u.LoanBalance != 1000 {
		t.Errorf("loan balance = %v, want 1000", u.LoanBalance)
	}
	if err := Credit(u, FieldSavingsBalance, 25); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if u.SavingsBalance != 75 {
		t.Errorf("savings balance = %v, want 75", u.SavingsBalance)
	}
}

func TestCredit_RejectsNonPositiveAmounts(t *testing.T) {
	u := &userDomain.User{LoanBalance: 100}
	for _, amt := range []float64{0, -1, -100} {
		if err := Credit(u, FieldLoanBalance, amt); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Credit(%v): err = %v, want ErrInvalidAmount", amt, err)
		}
	}
	if u.LoanBalance != 100 {
		t.Errorf("balance changed on rejected credit: %v", u.LoanBalance)
	}
}

func TestDebit_ClampsAtZero(t *testing.T) {
	cases := []struct {
		name    string
		balance float64
		amount  float64
		want    float64
	}{
		{"partial", 1000, 400, 600},
		{"exact", 1000, 1000, 0},
		{"overdraw clamps", 1000, 2500, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := &userDomain.User{SavingsBalance: tc.balance}
			if err := Debit(u, FieldSavingsBalance, tc.amount); err != nil {
				t.Fatalf("Debit: %v", err)
			}
			if u.SavingsBalance != tc.want {
				t.Errorf("balance = %v, want %v", u.SavingsBalance, tc.want)
			}
		})
	}
}

func TestDebit_RejectsNonPositiveAmounts(t *testing.T) {
	u := &userDomain.User{LoanBalance: 100}
	if err := Debit(u, FieldLoanBalance, -5); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestUnknownField(t *testing.T) {
	u := &userDomain.User{}
	if err := Credit(u, Field("loan_limit"), 10); err == nil {
		t.Fatal("expected error for unknown field")
	}
	if err := Debit(u, Field("loan_limit"), 10); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

const testAdminID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

// ledgerUsers backs the usecase tests: one customer row plus an admin account
// for the role check.
func ledgerUsers(cust *userDomain.User, saved **userDomain.User) *usermock.Repo {
	return &usermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, id string) (*userDomain.User, error) {
			if id == testAdminID {
				return &userDomain.User{CustomerID: testAdminID, Role: userDomain.RoleAdmin}, nil
			}
			return nil, userDomain.ErrNotFound
		},
		GetByCustomerIDForUpdateFn: func(ctx context.Context, id string) (*userDomain.User, error) {
			if id != cust.CustomerID {
				return nil, userDomain.ErrNotFound
			}
			return cust, nil
		},
		SaveFn: func(ctx context.Context, u *userDomain.User) error {
			if saved != nil {
				*saved = u
			}
			return nil
		},
	}
}

func TestUsecase_CreditPersistsThroughTx(t *testing.T) {
	cust := &userDomain.User{CustomerID: "cccccccccccccccccccccccccccccccc", SavingsBalance: 10}
	var saved *userDomain.User
	users := ledgerUsers(cust, &saved)
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Users: users}))

	out, err := uc.Credit(context.Background(), cust.CustomerID, FieldSavingsBalance, 90, testAdminID)
	if err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if out.SavingsBalance != 100 {
		t.Errorf("savings = %v, want 100", out.SavingsBalance)
	}
	if saved == nil {
		t.Fatal("user not saved")
	}
}

func TestUsecase_InvalidAmountDoesNotSave(t *testing.T) {
	cust := &userDomain.User{CustomerID: "cccccccccccccccccccccccccccccccc", LoanBalance: 10}
	users := ledgerUsers(cust, nil)
	users.SaveFn = func(ctx context.Context, u *userDomain.User) error {
		t.Fatal("Save must not be called for an invalid amount")
		return nil
	}
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Users: users}))
	if _, err := uc.Debit(context.Background(), cust.CustomerID, FieldLoanBalance, 0, testAdminID); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestUsecase_NonAdminCannotAdjust(t *testing.T) {
	cust := &userDomain.User{CustomerID: "cccccccccccccccccccccccccccccccc", SavingsBalance: 10}
	users := ledgerUsers(cust, nil)
	users.GetByCustomerIDFn = func(ctx context.Context, id string) (*userDomain.User, error) {
		return &userDomain.User{CustomerID: id, Role: userDomain.RoleCustomer}, nil
	}
	users.SaveFn = func(ctx context.Context, u *userDomain.User) error {
		t.Fatal("Save must not be called for an unauthorized actor")
		return nil
	}
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Users: users}))

	if _, err := uc.Credit(context.Background(), cust.CustomerID, FieldSavingsBalance, 90, cust.CustomerID); !errors.Is(err, userDomain.ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
	if cust.SavingsBalance != 10 {
		t.Errorf("balance changed without authorization: %v", cust.SavingsBalance)
	}
}
