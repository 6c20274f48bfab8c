// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase owns the persisted token pair.
type SessionUsecase interface {
	// Login exchanges credentials for tokens and persists them. Gateway errors are returned untouched.
	Login(ctx context.Context, username, password string) (*entity.Session, error)
	// Logout forgets both tokens without contacting the gateway.
	Logout(ctx context.Context) error
	// IsAuthenticated reports whether an access token is present. Expiry is not checked.
	IsAuthenticated() bool
	AccessToken() string
	// Claims decodes the access token without verifying it.
	Claims() (*entity.TokenClaims, bool)
}
