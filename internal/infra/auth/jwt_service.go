// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// jwtService signs HS256 tokens shaped like the shop backend's access/refresh pair.
type jwtService struct {
	secret     []byte        // Signing key shared by both token types.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
// An empty secret gets a random per-process key, so tokens do not survive a restart.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.DevGateway == nil {
		return nil, errors.New("devGateway configuration must be provided")
	}

	secret := cfg.DevGateway.SecretKey
	if secret == "" {
		secret = uuid.NewString() + uuid.NewString()
	}

	return &jwtService{
		secret:     []byte(secret),
		accessTTL:  cfg.DevGateway.AccessTTL,
		refreshTTL: cfg.DevGateway.RefreshTTL,
		now:        time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(user, s.accessTTL, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(user, s.refreshTTL, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken accepts only unexpired access tokens signed with our key.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Errorf("token type %q is not an access token", claims.Type)
	}

	return claims, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) generateToken(user *entity.User, ttl time.Duration, tokenType string) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsStaff:  user.IsAdmin,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
