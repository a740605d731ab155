// Package seed inserts the demo rows used for local development: one admin,
// one customer, and two orders. Seeding is idempotent — an account whose
// email already exists is left alone, orders included.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

type demoAccount struct {
	name     string
	email    string
	password string
	role     domain.Role
	orders   []domain.Order
}

var demoAccounts = []demoAccount{
	{
		name:     "Jane Smith",
		email:    "janesmith@example.com",
		password: "securepassword",
		role:     domain.RoleAdmin,
		orders: []domain.Order{
			{Total: 100.50, Status: "pending"},
		},
	},
	{
		name:     "John Doe",
		email:    "johndoe@example.com",
		password: "password123",
		role:     domain.RoleCustomer,
		orders: []domain.Order{
			{Total: 250.75, Status: "completed"},
		},
	},
}

// Run inserts the demo accounts and their orders.
func Run(ctx context.Context, customers ports.CustomerRepository, orders ports.OrderRepository, log zerolog.Logger) error {
	for _, acc := range demoAccounts {
		if _, err := customers.FindByEmail(ctx, acc.email); err == nil {
			log.Debug().Str("email", acc.email).Msg("seed account already exists, skipping")
			continue
		} else if !errors.Is(err, domain.ErrCustomerNotFound) {
			return fmt.Errorf("seed lookup %s: %w", acc.email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed hash %s: %w", acc.email, err)
		}

		created, err := customers.Create(ctx, &domain.Customer{
			Name:         acc.name,
			Email:        acc.email,
			PasswordHash: string(hash),
			Role:         acc.role,
		})
		if err != nil {
			return fmt.Errorf("seed customer %s: %w", acc.email, err)
		}

		for _, o := range acc.orders {
			o.CustomerID = created.ID
			if _, err := orders.Create(ctx, &o); err != nil {
				return fmt.Errorf("seed order for %s: %w", acc.email, err)
			}
		}

		log.Info().Str("customer_id", created.ID).Str("email", acc.email).Str("role", acc.role.String()).Msg("seeded demo account")
	}
	return nil
}
