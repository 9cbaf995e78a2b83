package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
)

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	products := newStubCatalogRepo()
	orders := newStubOrderRepo()
	svc := NewAdminService(users, products, orders, zerolog.Nop())

	_, _ = users.Create(ctx, &domain.User{Name: "A", Email: "a@example.com", Role: domain.RoleCustomer})
	_, _ = users.Create(ctx, &domain.User{Name: "B", Email: "b@example.com", Role: domain.RoleAdmin})
	_, _ = products.Create(ctx, &domain.Product{Name: "Widget", Price: 10, Stock: 5})

	_, _ = orders.Create(ctx, &domain.Order{UserID: "u1", Total: 40, Status: domain.OrderCompleted})
	_, _ = orders.Create(ctx, &domain.Order{UserID: "u1", Total: 15, Status: domain.OrderPending})
	_, _ = orders.Create(ctx, &domain.Order{UserID: "u2", Total: 99, Status: domain.OrderCancelled})

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Users != 2 || stats.Products != 1 || stats.Orders != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	// Pending and cancelled orders never count toward revenue.
	if stats.Revenue != 40 {
		t.Fatalf("expected revenue 40, got %v", stats.Revenue)
	}
}

func TestAdminService_SetUserRole(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	svc := NewAdminService(users, newStubCatalogRepo(), newStubOrderRepo(), zerolog.Nop())

	created, _ := users.Create(ctx, &domain.User{Name: "A", Email: "a@example.com", Role: domain.RoleCustomer})

	if err := svc.SetUserRole(ctx, created.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("set role failed: %v", err)
	}
	updated, _ := users.FindByID(ctx, created.ID)
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", updated.Role)
	}

	if err := svc.SetUserRole(ctx, created.ID, "owner"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if err := svc.SetUserRole(ctx, "ghost", domain.RoleAdmin); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	svc := NewAdminService(users, newStubCatalogRepo(), newStubOrderRepo(), zerolog.Nop())

	created, _ := users.Create(ctx, &domain.User{Name: "A", Email: "a@example.com", Role: domain.RoleCustomer})

	if err := svc.DeleteUser(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := users.FindByID(ctx, created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := svc.DeleteUser(ctx, created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on repeat delete, got %v", err)
	}
}
