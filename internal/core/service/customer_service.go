package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/zerolog"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// CustomerService implements admin CRUD and customer self-service.
type CustomerService struct {
	customers ports.CustomerRepository
	orders    ports.OrderRepository
	log       zerolog.Logger
}

func NewCustomerService(customers ports.CustomerRepository, orders ports.OrderRepository, log zerolog.Logger) *CustomerService {
	return &CustomerService{customers: customers, orders: orders, log: log}
}

// List returns a page of customers, optionally filtered by a search term
// matched against name or email, sorted by creation time.
func (s *CustomerService) List(ctx context.Context, filter ports.ListCustomersFilter) (*ports.CustomerPage, error) {
	filter.Page, filter.PerPage = normalizePage(filter.Page, filter.PerPage)

	customers, total, err := s.customers.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.CustomerPage{
		Customers: customers,
		Total:     total,
		Page:      filter.Page,
		PerPage:   filter.PerPage,
		LastPage:  lastPage(total, filter.PerPage),
	}, nil
}

// Create stores a new customer account with role Customer. The raw password
// is hashed and discarded; it never reaches the repository.
func (s *CustomerService) Create(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
	if _, err := s.customers.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.customers.Create(ctx, &domain.Customer{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("customer_id", created.ID).Msg("customer created")
	return created, nil
}

// Update touches name and/or password of an existing account. Email and
// role are immutable through this path.
func (s *CustomerService) Update(ctx context.Context, id string, in ports.UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		customer.Name = in.Name
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = string(hash)
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer unless it still owns orders; the order rows are
// never cascaded.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.orders.CountByCustomer(ctx, customer.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrCustomerHasOrders
	}

	if err := s.customers.Delete(ctx, customer.ID); err != nil {
		return err
	}

	s.log.Info().Str("customer_id", customer.ID).Msg("customer deleted")
	return nil
}

// ChangePassword verifies the current password before accepting the new
// one. A failed re-proof leaves the stored hash unchanged.
func (s *CustomerService) ChangePassword(ctx context.Context, customerID, oldPassword, newPassword string) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrOldPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	customer.PasswordHash = string(hash)

	if err := s.customers.Update(ctx, customer); err != nil {
		return err
	}

	s.log.Info().Str("customer_id", customer.ID).Msg("password changed")
	return nil
}

// UpdateProfile is the self-service update; it may only touch the name.
func (s *CustomerService) UpdateProfile(ctx context.Context, customerID, name string) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		customer.Name = name
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func lastPage(total int64, perPage int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
