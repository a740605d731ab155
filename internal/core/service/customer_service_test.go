package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/ports"
)

func TestCustomerService_Create_HashesPassword(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo, newMemOrderRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateCustomerInput{
		Name:     "John Doe",
		Email:    "johndoe@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.PasswordHash == "password123" {
		t.Fatalf("raw password stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if created.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %v", created.Role)
	}
}

func TestCustomerService_Create_DuplicateEmail(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo, newMemOrderRepo(), zerolog.Nop())

	in := ports.CreateCustomerInput{Name: "John", Email: "johndoe@example.com", Password: "password123"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCustomerService_Delete_NoOrders(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo, newMemOrderRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "John", Email: "j@example.com", Password: "password123"})
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("customer still present after delete")
	}
}

func TestCustomerService_Delete_WithOrders(t *testing.T) {
	repo := newMemCustomerRepo()
	orders := newMemOrderRepo()
	svc := NewCustomerService(repo, orders, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "John", Email: "j@example.com", Password: "password123"})
	if _, err := orders.Create(context.Background(), &domain.Order{CustomerID: created.ID, Total: 100.50, Status: "pending"}); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrCustomerHasOrders) {
		t.Fatalf("expected ErrCustomerHasOrders, got %v", err)
	}

	// Both rows survive a refused delete.
	if _, err := repo.FindByID(context.Background(), created.ID); err != nil {
		t.Fatalf("customer gone after refused delete: %v", err)
	}
	if n, _ := orders.CountByCustomer(context.Background(), created.ID); n != 1 {
		t.Fatalf("expected 1 order, got %d", n)
	}
}

func TestCustomerService_Delete_Unknown(t *testing.T) {
	svc := NewCustomerService(newMemCustomerRepo(), newMemOrderRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerService_ChangePassword_WrongOld(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo, newMemOrderRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "John", Email: "j@example.com", Password: "password123"})
	before, _ := repo.FindByID(context.Background(), created.ID)

	err := svc.ChangePassword(context.Background(), created.ID, "not-the-password", "newpassword")
	if !errors.Is(err, domain.ErrOldPasswordMismatch) {
		t.Fatalf("expected ErrOldPasswordMismatch, got %v", err)
	}

	after, _ := repo.FindByID(context.Background(), created.ID)
	if after.PasswordHash != before.PasswordHash {
		t.Fatalf("stored hash changed after a failed attempt")
	}
}

func TestCustomerService_ChangePassword_Success(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo, newMemOrderRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "John", Email: "j@example.com", Password: "password123"})
	if err := svc.ChangePassword(context.Background(), created.ID, "password123", "newpassword"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	after, _ := repo.FindByID(context.Background(), created.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("newpassword")); err != nil {
		t.Fatalf("new password does not verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("password123")); err == nil {
		t.Fatalf("old password still verifies")
	}
}

func TestCustomerService_Update_Partial(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo, newMemOrderRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "John", Email: "j@example.com", Password: "password123"})

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateCustomerInput{Name: "Johnny"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Johnny" {
		t.Fatalf("name not updated: %s", updated.Name)
	}
	if updated.Email != "j@example.com" {
		t.Fatalf("email must be immutable, got %s", updated.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("password changed by a name-only update")
	}
}

func TestCustomerService_UpdateProfile_NameOnly(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo, newMemOrderRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateCustomerInput{Name: "John", Email: "j@example.com", Password: "password123"})

	updated, err := svc.UpdateProfile(context.Background(), created.ID, "John D.")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "John D." {
		t.Fatalf("name not updated")
	}
	if updated.Role != domain.RoleCustomer || updated.Email != "j@example.com" {
		t.Fatalf("profile update touched authorization fields")
	}
}

func TestCustomerService_List_Pagination(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo, newMemOrderRepo(), zerolog.Nop())

	for i := 0; i < 25; i++ {
		_, err := svc.Create(context.Background(), ports.CreateCustomerInput{
			Name:     fmt.Sprintf("Customer %02d", i),
			Email:    fmt.Sprintf("customer%02d@example.com", i),
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	page, err := svc.List(context.Background(), ports.ListCustomersFilter{Page: 3, PerPage: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 25 {
		t.Fatalf("expected total 25, got %d", page.Total)
	}
	if page.LastPage != 3 {
		t.Fatalf("expected last page 3, got %d", page.LastPage)
	}
	if len(page.Customers) != 5 {
		t.Fatalf("expected 5 rows on the last page, got %d", len(page.Customers))
	}
}

func TestCustomerService_List_DefaultsAndCap(t *testing.T) {
	svc := NewCustomerService(newMemCustomerRepo(), newMemOrderRepo(), zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListCustomersFilter{Page: 0, PerPage: 1000})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("page not normalized: %d", page.Page)
	}
	if page.PerPage != 100 {
		t.Fatalf("per_page not capped: %d", page.PerPage)
	}
	if page.LastPage != 1 {
		t.Fatalf("empty listing should still report one page, got %d", page.LastPage)
	}
}
