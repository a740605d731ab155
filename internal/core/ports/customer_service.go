package ports

import (
	"context"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
)

// CreateCustomerInput carries the fields for admin account creation. The
// role is never an input: accounts created this way are always customers.
type CreateCustomerInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateCustomerInput carries the optional fields of an admin update.
// Empty values leave the stored field untouched.
type UpdateCustomerInput struct {
	Name     string
	Password string
}

// CustomerPage is one page of a customer listing.
type CustomerPage struct {
	Customers []*domain.Customer
	Total     int64
	Page      int
	PerPage   int
	LastPage  int
}

// CustomerService covers admin CRUD and customer self-service operations.
type CustomerService interface {
	List(ctx context.Context, filter ListCustomersFilter) (*CustomerPage, error)
	Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (*domain.Customer, error)
	// Delete removes the customer unless it still owns orders.
	Delete(ctx context.Context, id string) error
	// ChangePassword requires re-proof of the current password before the
	// new one is hashed and stored.
	ChangePassword(ctx context.Context, customerID, oldPassword, newPassword string) error
	// UpdateProfile is the self-service path; it may only touch the name.
	UpdateProfile(ctx context.Context, customerID, name string) (*domain.Customer, error)
}
