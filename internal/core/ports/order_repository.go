package ports

import (
	"context"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
)

// ListOrdersFilter carries query parameters for the admin order listing.
type ListOrdersFilter struct {
	OrderID     string   // optional: exact match on order id
	CustomerIDs []string // nil = no owner filter; non-nil = owner must be in the set
	Page        int      // 1-based
	PerPage     int
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	// List returns a page of orders matching filter and the total count.
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	// CountByCustomer backs the referential guard on customer deletion.
	CountByCustomer(ctx context.Context, customerID string) (int64, error)
}
