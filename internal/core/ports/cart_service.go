package ports

import (
	"context"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
)

// CartStorage is the single durable key-value collaborator both the cart
// manager and tests depend on. Production wires a Redis-backed store; tests
// inject an in-memory fake. Get returns (nil, nil) for a missing key.
type CartStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}

// AddItemInput carries a product snapshot to merge into the cart.
type AddItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Quantity  int
}

// CartView is the cart projection returned after every operation: the lines
// plus the derived total and unit count, recomputed on read.
type CartView struct {
	Lines []domain.CartLine
	Total float64
	Count int
}

// CartService defines the session-scoped cart operations. Content mutations
// never fail on invalid input (it is dropped); errors only surface from the
// storage collaborator.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
	Add(ctx context.Context, sessionID string, item AddItemInput) (*CartView, error)
	SetQuantity(ctx context.Context, sessionID, productID string, qty int) (*CartView, error)
	Increment(ctx context.Context, sessionID, productID string, step int) (*CartView, error)
	Decrement(ctx context.Context, sessionID, productID string, step int) (*CartView, error)
	Remove(ctx context.Context, sessionID, productID string) (*CartView, error)
	Clear(ctx context.Context, sessionID string) error
}
