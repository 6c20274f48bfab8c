package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// claimsDecoder reads token claims without a key; the client never holds the signing secret.
type claimsDecoder struct {
	parser *jwt.Parser
}

// NewClaimsDecoder is the constructor for claimsDecoder.
func NewClaimsDecoder() service.ClaimsDecoder {
	return &claimsDecoder{parser: jwt.NewParser()}
}

// Decode returns the identity carried by tokenString. Signature and expiry are not checked.
func (d *claimsDecoder) Decode(tokenString string) (*entity.TokenClaims, error) {
	claims := &service.Claims{}
	if _, _, err := d.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, "decode token claims")
	}

	decoded := &entity.TokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsStaff:  claims.IsStaff,
	}
	if claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time
		decoded.ExpiresAt = &expiresAt
	}

	return decoded, nil
}
