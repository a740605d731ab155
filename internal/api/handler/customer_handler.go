package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

// CustomerHandler serves both the admin CRUD surface and the customer
// self-service endpoints.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /admin/customers.
//
// @Summary      List customers
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search    query     string  false  "Substring match on name or email"
// @Param        sort      query     string  false  "Sort by creation time: asc or desc (default desc)"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        per_page  query     int     false  "Rows per page (default 10, max 100)"
// @Success      200       {object}  envelope
// @Failure      401       {object}  envelope
// @Failure      403       {object}  envelope
// @Router       /admin/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	filter := ports.ListCustomersFilter{
		Search:  c.QueryParam("search"),
		SortAsc: c.QueryParam("sort") == "asc",
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 10),
	}

	page, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "customers retrieved", listCustomersResponse{
		Customers:  page.Customers,
		Pagination: paginationResponse{Total: page.Total, Page: page.Page, PerPage: page.PerPage, LastPage: page.LastPage},
	})
}

// Create handles POST /admin/customers. New accounts always get the
// customer role.
//
// @Summary      Create a customer
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /admin/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// A taken email renders like any other field failure.
		if errors.Is(err, domain.ErrEmailTaken) {
			return respondValidation(c, map[string]string{"email": "email already exists"})
		}
		return err
	}

	return respond(c, http.StatusCreated, "customer created", created)
}

// Update handles PUT /admin/customers/:id (name and/or password).
//
// @Summary      Update a customer
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /admin/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req updateCustomerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCustomerInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "customer updated", updated)
}

// Delete handles DELETE /admin/customers/:id. Customers that still own
// orders cannot be removed.
//
// @Summary      Delete a customer
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Customer id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /admin/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "customer deleted", nil)
}

// ChangePassword handles PUT /admin/change-password for the authenticated
// admin's own account.
//
// @Summary      Change own password (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /admin/change-password [put]
func (h *CustomerHandler) ChangePassword(c echo.Context) error {
	return h.changeOwnPassword(c, domain.RoleAdmin)
}

// ChangePasswordSelf handles PUT /customer/change-password.
//
// @Summary      Change own password (customer)
// @Tags         customer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /customer/change-password [put]
func (h *CustomerHandler) ChangePasswordSelf(c echo.Context) error {
	return h.changeOwnPassword(c, domain.RoleCustomer)
}

// changeOwnPassword re-checks the caller's role even though the role guard
// already ran before re-proving the old password.
func (h *CustomerHandler) changeOwnPassword(c echo.Context, required domain.Role) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if identity.Role != required {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	var req changePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.service.ChangePassword(c.Request().Context(), identity.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, domain.ErrOldPasswordMismatch) {
			return respondError(c, http.StatusUnauthorized, "password change failed", "old password is incorrect")
		}
		return err
	}

	return respond(c, http.StatusOK, "password changed", nil)
}

// Info handles GET /customer/info — the caller's own profile.
//
// @Summary      Own profile
// @Tags         customer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /customer/info [get]
func (h *CustomerHandler) Info(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "profile retrieved", identity)
}

// UpdateProfile handles PUT /customer — self-service, name only.
//
// @Summary      Update own profile
// @Tags         customer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /customer [put]
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	updated, err := h.service.UpdateProfile(c.Request().Context(), identity.ID, req.Name)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "profile updated", updated)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
