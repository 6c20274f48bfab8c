package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens, in the shape the shop backend issues them.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username,omitempty"`
	IsStaff  bool   `json:"is_staff,omitempty"`
	Type     string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Only the development gateway signs tokens; the client merely decodes them.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the signature, expiry and type of an access token.
	ValidateToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}

// ClaimsDecoder reads claims from a token without verifying its signature.
// The result is advisory: it only enriches the locally known user record.
type ClaimsDecoder interface {
	Decode(tokenString string) (*entity.TokenClaims, error)
}
