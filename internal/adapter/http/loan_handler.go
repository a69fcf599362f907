package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"smartpay-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	CustomerID        string  `json:"customer_id"        validate:"required,hex32"`
	Principal         float64 `json:"principal"          validate:"required,gt=0"`
	AgreementAccepted bool    `json:"agreement_accepted"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		CustomerID:        req.CustomerID,
		Principal:         req.Principal,
		AgreementAccepted: req.AgreementAccepted,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListByCustomer(c echo.Context) error {
	dtos, err := h.uc.ListByCustomer(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type resolveReq struct {
	AdminID string `json:"admin_id" validate:"required,hex32"`
}

func (h *LoanHandler) Resolve(approve bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req resolveReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: ToFieldErrors(err),
			})
		}
		dto, err := h.uc.Resolve(c.Request().Context(), c.Param("loan_id"), approve, req.AdminID)
		if err != nil {
			return writeDomainErr(c, err)
		}
		return c.JSON(http.StatusOK, dto)
	}
}
