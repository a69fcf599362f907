package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	billDomain "smartpay-backend/internal/domain/bill"
	loanDomain "smartpay-backend/internal/domain/loan"
	requestDomain "smartpay-backend/internal/domain/request"
	userDomain "smartpay-backend/internal/domain/user"
	"smartpay-backend/internal/usecase/ledger"
	"smartpay-backend/internal/usecase/workflow"
)

// writeDomainErr maps domain sentinels onto HTTP statuses. Everything in the
// taxonomy is a client-recoverable rejection; only unknown errors become 500s.
func writeDomainErr(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, billDomain.ErrNotFound),
		errors.Is(err, requestDomain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, userDomain.ErrDuplicateEmail),
		errors.Is(err, requestDomain.ErrInvalidTransition),
		errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, billDomain.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, userDomain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, userDomain.ErrAccountBlocked),
		errors.Is(err, userDomain.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrAmountOutOfRange),
		errors.Is(err, loanDomain.ErrAgreementRequired),
		errors.Is(err, workflow.ErrNameMismatch),
		errors.Is(err, workflow.ErrNotEligible):
		status = http.StatusUnprocessableEntity
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}
