package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
)

// envelope is the uniform response body: {status, message, data|errors|error}.
type envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, envelope{Status: true, Message: message, Data: data})
}

func respondError(c echo.Context, code int, message, detail string) error {
	return c.JSON(code, envelope{Status: false, Message: message, Error: detail})
}

func respondValidation(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusUnprocessableEntity, envelope{Status: false, Message: "validation failed", Errors: fields})
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createCustomerRequest struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

type updateCustomerRequest struct {
	Name     string `json:"name"     validate:"omitempty,max=255"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type updateProfileRequest struct {
	Name string `json:"name" validate:"omitempty,max=255"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// --- Response types ---

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	Role        domain.Role `json:"role"`
	ExpiresIn   int64       `json:"expires_in"`
}

type paginationResponse struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

type listCustomersResponse struct {
	Customers  []*domain.Customer `json:"customers"`
	Pagination paginationResponse `json:"pagination"`
}

type listOrdersResponse struct {
	Orders     []*domain.OrderWithCustomer `json:"orders"`
	Pagination paginationResponse          `json:"pagination"`
}
