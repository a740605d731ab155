package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

// OrderService implements order listings for both roles.
type OrderService struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	log       zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, customers ports.CustomerRepository, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, customers: customers, log: log}
}

// ListAll returns a page of orders with their owning customer embedded.
// Name and email filters are resolved against customers first; when no
// owner matches, the result is an empty page, not an error.
func (s *OrderService) ListAll(ctx context.Context, in ports.ListAllOrdersInput) (*ports.OrderPage, error) {
	page, perPage := normalizePage(in.Page, in.PerPage)

	filter := ports.ListOrdersFilter{OrderID: in.OrderID, Page: page, PerPage: perPage}
	if in.CustomerName != "" || in.CustomerEmail != "" {
		ids, err := s.customers.FindIDsMatching(ctx, in.CustomerName, in.CustomerEmail)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return &ports.OrderPage{Orders: []*domain.OrderWithCustomer{}, Page: page, PerPage: perPage, LastPage: 1}, nil
		}
		filter.CustomerIDs = ids
	}

	orders, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	owners, err := s.loadOwners(ctx, orders)
	if err != nil {
		return nil, err
	}

	enriched := make([]*domain.OrderWithCustomer, 0, len(orders))
	for _, o := range orders {
		item := &domain.OrderWithCustomer{Order: *o}
		if owner, ok := owners[o.CustomerID]; ok {
			item.Customer = domain.CustomerSummary{ID: owner.ID, Name: owner.Name, Email: owner.Email}
		}
		enriched = append(enriched, item)
	}

	return &ports.OrderPage{
		Orders:   enriched,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage(total, perPage),
	}, nil
}

// ListForCustomer returns the orders owned by one customer.
func (s *OrderService) ListForCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

func (s *OrderService) loadOwners(ctx context.Context, orders []*domain.Order) (map[string]*domain.Customer, error) {
	seen := make(map[string]struct{}, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.CustomerID]; ok {
			continue
		}
		seen[o.CustomerID] = struct{}{}
		ids = append(ids, o.CustomerID)
	}
	if len(ids) == 0 {
		return map[string]*domain.Customer{}, nil
	}

	customers, err := s.customers.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*domain.Customer, len(customers))
	for _, c := range customers {
		owners[c.ID] = c
	}
	return owners, nil
}
