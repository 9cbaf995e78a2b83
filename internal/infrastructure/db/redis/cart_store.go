package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Carts idle for this long are dropped; every write renews the clock.
const cartTTL = 30 * 24 * time.Hour

// CartStore is the durable key-value collaborator behind the cart
// manager. Keys are whatever the manager hands over; the store does not
// interpret them. A missing key reads as (nil, nil) so the manager can
// hydrate an empty cart without an error branch.
type CartStore struct {
	client *redis.Client
}

// NewCartStore wraps the given Redis client.
func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

func (s *CartStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cart get: %w", err)
	}
	return raw, nil
}

func (s *CartStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, cartTTL).Err(); err != nil {
		return fmt.Errorf("cart set: %w", err)
	}
	return nil
}

func (s *CartStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}
