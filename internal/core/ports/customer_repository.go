package ports

import (
	"context"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
)

// ListCustomersFilter carries all query parameters for listing customers.
type ListCustomersFilter struct {
	Search  string // optional: substring match on name or email
	SortAsc bool   // sort by created_at; default is newest first
	Page    int    // 1-based
	PerPage int    // max rows per page (capped at 100 by the service)
}

// CustomerRepository defines persistence operations for customer accounts.
// Email uniqueness is enforced by a store-level constraint, not by the
// application.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	// FindByIDs returns the customers whose IDs appear in ids; missing IDs
	// are silently skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Customer, error)
	// FindIDsMatching returns the IDs of customers whose name or email
	// contains the respective (non-empty) filter value.
	FindIDsMatching(ctx context.Context, name, email string) ([]string, error)
	// List returns a page of customers matching filter and the total count.
	List(ctx context.Context, filter ListCustomersFilter) ([]*domain.Customer, int64, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
}
