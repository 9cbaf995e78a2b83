package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
	"github.com/sbcommerce/storefront-system/internal/core/ports"
)

type adminService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	orders   ports.OrderRepository
	log      zerolog.Logger
}

// NewAdminService returns an AdminService implementation.
func NewAdminService(
	users ports.UserRepository,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	log zerolog.Logger,
) ports.AdminService {
	return &adminService{users: users, products: products, orders: orders, log: log}
}

// Stats aggregates the dashboard counters. Revenue only counts completed
// orders.
func (s *adminService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orders.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		Users:    users,
		Products: products,
		Orders:   orders,
		Revenue:  revenue,
	}, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *adminService) SetUserRole(ctx context.Context, userID, role string) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Str("role", role).Msg("user role updated")
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}
