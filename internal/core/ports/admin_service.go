package ports

import (
	"context"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
)

// DashboardStats are the aggregate figures shown on the admin dashboard.
type DashboardStats struct {
	Users    int64
	Products int64
	Orders   int64
	Revenue  float64
}

// AdminService defines the admin dashboard operations: stats plus user
// management. Role changes are validated against the role enumeration.
type AdminService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserRole(ctx context.Context, userID, role string) error
	DeleteUser(ctx context.Context, userID string) error
}
