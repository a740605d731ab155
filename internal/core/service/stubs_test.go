package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

// In-memory fakes shared by the service tests.

type memCustomerRepo struct {
	mu    sync.Mutex
	seq   int
	byID  map[string]*domain.Customer
	byEml map[string]string // email -> id
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byID: make(map[string]*domain.Customer), byEml: make(map[string]string)}
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *memCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEml[c.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.seq++
	stored := cloneCustomer(c)
	stored.ID = fmt.Sprintf("c%d", r.seq)
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.byID[stored.ID] = stored
	r.byEml[stored.Email] = stored.ID
	return cloneCustomer(stored), nil
}

func (r *memCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return cloneCustomer(c), nil
}

func (r *memCustomerRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEml[email]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return cloneCustomer(r.byID[id]), nil
}

func (r *memCustomerRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Customer, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.byID[id]; ok {
			out = append(out, cloneCustomer(c))
		}
	}
	return out, nil
}

func (r *memCustomerRepo) FindIDsMatching(_ context.Context, name, email string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for id, c := range r.byID {
		if name != "" && !strings.Contains(c.Name, name) {
			continue
		}
		if email != "" && !strings.Contains(c.Email, email) {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

func (r *memCustomerRepo) List(_ context.Context, filter ports.ListCustomersFilter) ([]*domain.Customer, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*domain.Customer
	for _, c := range r.byID {
		if filter.Search != "" && !strings.Contains(c.Name, filter.Search) && !strings.Contains(c.Email, filter.Search) {
			continue
		}
		all = append(all, cloneCustomer(c))
	}
	total := int64(len(all))
	start := (filter.Page - 1) * filter.PerPage
	if start >= len(all) {
		return []*domain.Customer{}, total, nil
	}
	end := start + filter.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *memCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[c.ID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.byEml, stored.Email)
	updated := cloneCustomer(c)
	r.byID[c.ID] = updated
	r.byEml[updated.Email] = c.ID
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.byEml, c.Email)
	delete(r.byID, id)
	return nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	seq    int
	orders []*domain.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{}
}

func (r *memOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	stored := *o
	stored.ID = fmt.Sprintf("o%d", r.seq)
	stored.CreatedAt = time.Now()
	r.orders = append(r.orders, &stored)
	clone := stored
	return &clone, nil
}

func (r *memOrderRepo) List(_ context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	allowed := map[string]struct{}{}
	for _, id := range filter.CustomerIDs {
		allowed[id] = struct{}{}
	}
	var matched []*domain.Order
	for _, o := range r.orders {
		if filter.OrderID != "" && o.ID != filter.OrderID {
			continue
		}
		if filter.CustomerIDs != nil {
			if _, ok := allowed[o.CustomerID]; !ok {
				continue
			}
		}
		clone := *o
		matched = append(matched, &clone)
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PerPage
	if start >= len(matched) {
		return []*domain.Order{}, total, nil
	}
	end := start + filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *memOrderRepo) ListByCustomer(_ context.Context, customerID string) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Order{}
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memOrderRepo) CountByCustomer(_ context.Context, customerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

type memTokenStore struct {
	mu      sync.Mutex
	revoked map[string]struct{}
	failing bool
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{revoked: make(map[string]struct{})}
}

func (s *memTokenStore) Invalidate(_ context.Context, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return fmt.Errorf("store unavailable")
	}
	s.revoked[tokenID] = struct{}{}
	return nil
}

func (s *memTokenStore) IsInvalidated(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return false, fmt.Errorf("store unavailable")
	}
	_, ok := s.revoked[tokenID]
	return ok, nil
}
