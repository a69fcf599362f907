package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"smartpay-backend/internal/usecase/directory"
)

type DirectoryHandler struct{ uc *directory.Usecase }

func NewDirectoryHandler(uc *directory.Usecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

type registerReq struct {
	FullName          string `json:"full_name"            validate:"required"`
	Email             string `json:"email"                validate:"required,email"`
	Password          string `json:"password"             validate:"required,min=6"`
	NationalID        string `json:"national_id"          validate:"required,digits16"`
	BankName          string `json:"bank_name"            validate:"required"`
	AccountNumber     string `json:"account_number"       validate:"required"`
	AccountHolderName string `json:"account_holder_name"  validate:"required"`
}

func (h *DirectoryHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Register(c.Request().Context(), directory.RegisterInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Password:          req.Password,
		NationalID:        req.NationalID,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		AccountHolderName: req.AccountHolderName,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *DirectoryHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DirectoryHandler) GetCustomer(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DirectoryHandler) ListCustomers(c echo.Context) error {
	dtos, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type blockReq struct {
	AdminID string `json:"admin_id" validate:"required,hex32"`
}

func (h *DirectoryHandler) SetBlocked(blocked bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req blockReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: ToFieldErrors(err),
			})
		}
		dto, err := h.uc.SetBlocked(c.Request().Context(), c.Param("customer_id"), blocked, req.AdminID)
		if err != nil {
			return writeDomainErr(c, err)
		}
		return c.JSON(http.StatusOK, dto)
	}
}
