package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"smartpay-backend/internal/usecase/bill"
)

type BillHandler struct{ uc *bill.Usecase }

func NewBillHandler(uc *bill.Usecase) *BillHandler { return &BillHandler{uc: uc} }

func (h *BillHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("bill_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BillHandler) GetByLoan(c echo.Context) error {
	dto, err := h.uc.GetByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BillHandler) ListByCustomer(c echo.Context) error {
	dtos, err := h.uc.ListByCustomer(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *BillHandler) Pay(c echo.Context) error {
	dto, err := h.uc.ApplyPayment(c.Request().Context(), c.Param("bill_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
