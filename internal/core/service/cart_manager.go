package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
	"github.com/sbcommerce/storefront-system/internal/core/ports"
)

const cartKeyPrefix = "cart:"

// CartManager is the single source of truth for session carts. Every
// operation hydrates the cart from the storage collaborator, applies a
// pure domain mutation, persists the full line collection back, and
// returns the recomputed projection. A missing key or an unparseable
// payload hydrates as an empty cart, never as an error.
type CartManager struct {
	storage ports.CartStorage
	log     zerolog.Logger
}

// NewCartManager returns a CartService backed by the given storage.
func NewCartManager(storage ports.CartStorage, log zerolog.Logger) ports.CartService {
	return &CartManager{storage: storage, log: log}
}

func (m *CartManager) Get(ctx context.Context, sessionID string) (*ports.CartView, error) {
	cart := m.load(ctx, sessionID)
	return view(cart), nil
}

// Add merges the posted snapshot into the cart. Snapshots with a missing
// name or price are dropped by the domain mutation; the cart is returned
// unchanged rather than erroring, so a bad add never breaks the caller.
func (m *CartManager) Add(ctx context.Context, sessionID string, item ports.AddItemInput) (*ports.CartView, error) {
	qty := item.Quantity
	if qty == 0 {
		qty = 1
	}
	return m.mutate(ctx, sessionID, func(c *domain.Cart) {
		c.Add(domain.CartLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
		}, qty)
	})
}

func (m *CartManager) SetQuantity(ctx context.Context, sessionID, productID string, qty int) (*ports.CartView, error) {
	return m.mutate(ctx, sessionID, func(c *domain.Cart) {
		c.SetQuantity(productID, qty)
	})
}

func (m *CartManager) Increment(ctx context.Context, sessionID, productID string, step int) (*ports.CartView, error) {
	return m.mutate(ctx, sessionID, func(c *domain.Cart) {
		c.Increment(productID, step)
	})
}

func (m *CartManager) Decrement(ctx context.Context, sessionID, productID string, step int) (*ports.CartView, error) {
	return m.mutate(ctx, sessionID, func(c *domain.Cart) {
		c.Decrement(productID, step)
	})
}

func (m *CartManager) Remove(ctx context.Context, sessionID, productID string) (*ports.CartView, error) {
	return m.mutate(ctx, sessionID, func(c *domain.Cart) {
		c.Remove(productID)
	})
}

// Clear tears the cart down entirely. This only happens on explicit user
// action; nothing clears a cart implicitly.
func (m *CartManager) Clear(ctx context.Context, sessionID string) error {
	return m.storage.Clear(ctx, cartKey(sessionID))
}

// mutate is the single write path: hydrate, apply, persist, project.
func (m *CartManager) mutate(ctx context.Context, sessionID string, fn func(*domain.Cart)) (*ports.CartView, error) {
	cart := m.load(ctx, sessionID)
	fn(cart)

	raw, err := json.Marshal(cart.Lines)
	if err != nil {
		return nil, err
	}
	if err := m.storage.Set(ctx, cartKey(sessionID), raw); err != nil {
		return nil, err
	}
	return view(cart), nil
}

func (m *CartManager) load(ctx context.Context, sessionID string) *domain.Cart {
	cart := &domain.Cart{}

	raw, err := m.storage.Get(ctx, cartKey(sessionID))
	if err != nil {
		m.log.Warn().Err(err).Str("session", sessionID).Msg("cart read failed, starting empty")
		return cart
	}
	if len(raw) == 0 {
		return cart
	}
	if err := json.Unmarshal(raw, &cart.Lines); err != nil {
		m.log.Warn().Err(err).Str("session", sessionID).Msg("cart payload unparseable, starting empty")
		cart.Lines = nil
	}
	return cart
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func view(c *domain.Cart) *ports.CartView {
	return &ports.CartView{
		Lines: c.Lines,
		Total: c.Total(),
		Count: c.Count(),
	}
}
