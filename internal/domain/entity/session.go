package entity

import "time"

// Session is the locally persisted token pair. It is owned by the credential store.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// IsZero reports whether there is no access token, i.e. no authenticated identity.
func (s Session) IsZero() bool {
	return s.AccessToken == ""
}

// TokenClaims is what the client can learn from an access token without verifying it.
type TokenClaims struct {
	UserID    int64
	Username  string
	IsStaff   bool
	ExpiresAt *time.Time
}

// Expired reports whether the claims carry an expiry before now.
func (c *TokenClaims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
