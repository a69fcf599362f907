package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"smartpay-backend/internal/usecase/ledger"
)

// LedgerHandler exposes the raw credit/debit contract for admin balance
// adjustments, outside the request workflows.
type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type adjustReq struct {
	AdminID string  `json:"admin_id" validate:"required,hex32"`
	Field   string  `json:"field"    validate:"required,oneof=loan_balance savings_balance"`
	Amount  float64 `json:"amount"   validate:"required,gt=0"`
}

func (h *LedgerHandler) Adjust(credit bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req adjustReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: ToFieldErrors(err),
			})
		}
		customerID := c.Param("customer_id")
		field := ledger.Field(req.Field)

		var err error
		var dto any
		if credit {
			dto, err = h.uc.Credit(c.Request().Context(), customerID, field, req.Amount, req.AdminID)
		} else {
			dto, err = h.uc.Debit(c.Request().Context(), customerID, field, req.Amount, req.AdminID)
		}
		if err != nil {
			return writeDomainErr(c, err)
		}
		return c.JSON(http.StatusOK, dto)
	}
}
