package ports

import (
	"context"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
)

// TokenClaims are the identity claims embedded in an access token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token        string
	RefreshToken string
	User         *domain.User
}

// AuthService defines registration, login and credential verification.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyToken(raw string) (*TokenClaims, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error)
}

// RefreshTokenStore persists opaque refresh tokens bound to a user id.
// Entries expire server-side; a missing entry means the token is no
// longer acceptable.
type RefreshTokenStore interface {
	Save(ctx context.Context, token, userID string) error
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
