package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
	"github.com/sbcommerce/storefront-system/internal/core/ports"
)

type orderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	cart     ports.CartService
	log      zerolog.Logger
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	cart ports.CartService,
	log zerolog.Logger,
) ports.OrderService {
	return &orderService{
		orders:   orders,
		products: products,
		cart:     cart,
		log:      log,
	}
}

// Checkout snapshots the session cart into a pending order and clears the
// cart. Line names and unit prices are frozen at this point; the order
// total is recomputed from the snapshot, not read from the cart.
func (s *orderService) Checkout(ctx context.Context, userID, sessionID string) (*ports.CheckoutResult, error) {
	cartView, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if len(cartView.Lines) == 0 {
		return nil, domain.ErrCartEmpty
	}

	lines := make([]domain.OrderLine, 0, len(cartView.Lines))
	var total float64
	for _, l := range cartView.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.Price,
			Quantity:  l.Quantity,
		})
		total += l.Price * float64(l.Quantity)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		UserID:    userID,
		Lines:     lines,
		Total:     total,
		Status:    domain.OrderPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create order")
		return nil, err
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		// Order already exists; a stale cart is recoverable, losing the order is not.
		s.log.Warn().Err(err).Str("order_id", created.ID).Msg("failed to clear cart after checkout")
	}

	s.log.Info().Str("order_id", created.ID).Str("user_id", userID).Float64("total", total).Msg("order placed")

	return &ports.CheckoutResult{
		OrderID:   created.ID,
		Total:     created.Total,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}

// Process settles one pending order: stock is decremented per line and
// the order transitions to completed, or to cancelled when any line
// cannot be covered. Re-processing a settled order is a no-op so
// dispatcher retries stay harmless.
func (s *orderService) Process(ctx context.Context, orderID string) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("process order: %w", err)
	}

	if order.Status != domain.OrderPending {
		s.log.Debug().Str("order_id", orderID).Str("status", string(order.Status)).Msg("order already settled, skipped")
		return nil
	}

	next := domain.OrderCompleted
	taken := make([]domain.OrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
			s.log.Warn().Err(err).
				Str("order_id", orderID).
				Str("product_id", line.ProductID).
				Int("quantity", line.Quantity).
				Msg("stock not covered, cancelling order")
			next = domain.OrderCancelled
			s.restoreStock(ctx, orderID, taken)
			break
		}
		taken = append(taken, line)
	}

	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("process order: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return fmt.Errorf("process order: update status: %w", err)
	}

	s.log.Info().Str("order_id", orderID).Str("status", string(next)).Msg("order processed")
	return nil
}

// restoreStock returns units already taken for lines that cleared before
// a later line forced a cancellation.
func (s *orderService) restoreStock(ctx context.Context, orderID string, lines []domain.OrderLine) {
	for _, line := range lines {
		if err := s.products.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
			s.log.Error().Err(err).
				Str("order_id", orderID).
				Str("product_id", line.ProductID).
				Int("quantity", line.Quantity).
				Msg("failed to restore stock after cancellation")
		}
	}
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrOrderNotFound) {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListAll(ctx)
}
