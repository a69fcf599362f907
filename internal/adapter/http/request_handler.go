package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	requestDomain "smartpay-backend/internal/domain/request"
	"smartpay-backend/internal/usecase/workflow"
)

type RequestHandler struct{ uc *workflow.Usecase }

func NewRequestHandler(uc *workflow.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type withdrawalReq struct {
	CustomerID        string  `json:"customer_id"          validate:"required,hex32"`
	Amount            float64 `json:"amount"               validate:"required,gt=0"`
	BankName          string  `json:"bank_name"            validate:"required"`
	AccountNumber     string  `json:"account_number"       validate:"required"`
	AccountHolderName string  `json:"account_holder_name"  validate:"required"`
}

func (h *RequestHandler) SubmitWithdrawal(c echo.Context) error {
	var req withdrawalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SubmitWithdrawal(c.Request().Context(), workflow.WithdrawalInput{
		CustomerID:        req.CustomerID,
		Amount:            req.Amount,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		AccountHolderName: req.AccountHolderName,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type topUpReq struct {
	CustomerID string  `json:"customer_id" validate:"required,hex32"`
	Amount     float64 `json:"amount"      validate:"required,gte=50000"`
}

func (h *RequestHandler) SubmitTopUp(c echo.Context) error {
	var req topUpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SubmitTopUp(c.Request().Context(), workflow.TopUpInput{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequestHandler) ListByCustomer(c echo.Context) error {
	dtos, err := h.uc.ListByCustomer(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *RequestHandler) ListByStatus(c echo.Context) error {
	status := requestDomain.Status(c.QueryParam("status"))
	if status == "" {
		status = requestDomain.StatusPending
	}
	switch status {
	case requestDomain.StatusPending, requestDomain.StatusApproved, requestDomain.StatusRejected:
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status"})
	}
	dtos, err := h.uc.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *RequestHandler) Resolve(approve bool) echo.HandlerFunc {
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
		dto, err := h.uc.Resolve(c.Request().Context(), c.Param("request_id"), approve, req.AdminID)
		if err != nil {
			return writeDomainErr(c, err)
		}
		return c.JSON(http.StatusOK, dto)
	}
}
