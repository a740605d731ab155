package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is the coarse access class of a customer account. The system is a
// closed two-value world: there is no hierarchy and no wildcard.
type Role int

const (
	RoleAdmin    Role = 0
	RoleCustomer Role = 1
)

// ParseRole converts a raw integer into a Role, rejecting anything outside
// the closed set at the boundary.
func ParseRole(v int) (Role, error) {
	switch Role(v) {
	case RoleAdmin, RoleCustomer:
		return Role(v), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidRole, v)
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleCustomer:
		return "customer"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Customer models an account in the system. PasswordHash is never serialized.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrCustomerNotFound = errors.New("customer not found")
var ErrEmailTaken = errors.New("email already taken")
var ErrCustomerHasOrders = errors.New("customer has orders")
var ErrOldPasswordMismatch = errors.New("old password does not match")
