package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// ListAll handles GET /admin/orders — every order with its owner embedded.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  query     string  false  "Exact order id"
// @Param        name      query     string  false  "Substring match on the owner's name"
// @Param        email     query     string  false  "Substring match on the owner's email"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        per_page  query     int     false  "Rows per page (default 10, max 100)"
// @Success      200       {object}  envelope
// @Failure      401       {object}  envelope
// @Failure      403       {object}  envelope
// @Router       /admin/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	page, err := h.service.ListAll(c.Request().Context(), ports.ListAllOrdersInput{
		OrderID:       c.QueryParam("order_id"),
		CustomerName:  c.QueryParam("name"),
		CustomerEmail: c.QueryParam("email"),
		Page:          queryInt(c, "page", 1),
		PerPage:       queryInt(c, "per_page", 10),
	})
	if err != nil {
		return err
	}

	message := "orders retrieved"
	if page.Total == 0 {
		message = "no orders found"
	}

	return respond(c, http.StatusOK, message, listOrdersResponse{
		Orders:     page.Orders,
		Pagination: paginationResponse{Total: page.Total, Page: page.Page, PerPage: page.PerPage, LastPage: page.LastPage},
	})
}

// ListMine handles GET /customer/orders — the caller's own orders.
//
// @Summary      Own orders
// @Tags         customer
// @Produce     json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /customer/orders [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListForCustomer(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	message := "orders retrieved"
	if len(orders) == 0 {
		message = "no orders found"
	}
	return respond(c, http.StatusOK, message, orders)
}
