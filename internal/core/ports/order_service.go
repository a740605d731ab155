package ports

import (
	"context"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
)

// ListAllOrdersInput carries the admin order-listing filters.
type ListAllOrdersInput struct {
	OrderID       string // optional: exact order id
	CustomerName  string // optional: substring match on the owner's name
	CustomerEmail string // optional: substring match on the owner's email
	Page          int
	PerPage       int
}

// OrderPage is one page of the admin order listing, owners embedded.
type OrderPage struct {
	Orders   []*domain.OrderWithCustomer
	Total    int64
	Page     int
	PerPage  int
	LastPage int
}

type OrderService interface {
	ListAll(ctx context.Context, in ListAllOrdersInput) (*OrderPage, error)
	ListForCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
}
