// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// Fixed storage keys of the persisted token pair.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// CredentialRepository persists the session token pair across process restarts.
// Current is answered from memory so authentication checks never block.
type CredentialRepository interface {
	// Current returns the token pair loaded at startup or last saved.
	Current() entity.Session

	// Save persists both tokens and makes them current.
	Save(ctx context.Context, session entity.Session) error

	// Delete removes both tokens. The in-memory pair is cleared even when storage fails.
	Delete(ctx context.Context) error
}
