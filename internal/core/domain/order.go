package domain

import (
	"errors"
	"time"
)

// Order is owned by exactly one customer. Status is a free-form label
// ("pending", "completed", ...); orders block deletion of their owner.
type Order struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CustomerSummary is the owner projection embedded in admin order listings.
type CustomerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderWithCustomer pairs an order with its owning customer's summary.
type OrderWithCustomer struct {
	Order
	Customer CustomerSummary `json:"customer"`
}

var ErrOrderNotFound = errors.New("order not found")
