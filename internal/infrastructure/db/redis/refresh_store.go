package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
)

const refreshTTL = 7 * 24 * time.Hour

// RefreshStore keeps opaque refresh tokens in Redis with a server-side
// expiry. Key format: refresh:<token> -> user id.
type RefreshStore struct {
	client *redis.Client
}

// NewRefreshStore wraps the given Redis client.
func NewRefreshStore(client *redis.Client) *RefreshStore {
	return &RefreshStore{client: client}
}

func (s *RefreshStore) Save(ctx context.Context, token, userID string) error {
	if err := s.client.Set(ctx, refreshKey(token), userID, refreshTTL).Err(); err != nil {
		return fmt.Errorf("refresh save: %w", err)
	}
	return nil
}

// Lookup returns the user id bound to token. An expired or unknown token
// surfaces as ErrInvalidToken.
func (s *RefreshStore) Lookup(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, refreshKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("refresh lookup: %w", err)
	}
	return userID, nil
}

// Delete drops the token. Deleting an absent token is not an error.
func (s *RefreshStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, refreshKey(token)).Err(); err != nil {
		return fmt.Errorf("refresh delete: %w", err)
	}
	return nil
}

func refreshKey(token string) string {
	return "refresh:" + token
}
