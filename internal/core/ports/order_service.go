package ports

import (
	"context"
	"time"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Count(ctx context.Context) (int64, error)
	// Revenue sums the totals of all completed orders.
	Revenue(ctx context.Context) (float64, error)
}

// CheckoutResult is returned after a cart has been turned into an order.
type CheckoutResult struct {
	OrderID   string
	Total     float64
	Status    string
	CreatedAt time.Time
}

// OrderService defines checkout and order queries. Process is invoked
// asynchronously by the dispatcher workers, one call per order id.
type OrderService interface {
	Checkout(ctx context.Context, userID, sessionID string) (*CheckoutResult, error)
	Process(ctx context.Context, orderID string) error
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
}
