package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Keys of the authenticated identity on echo.Context.
const (
	ContextKeyUserID  = "userID"
	ContextKeyIsStaff = "isStaff"
)

// Messages the backend uses for rejected credentials.
const (
	msgMissingCredentials = "Authentication credentials were not provided."
	msgInvalidToken       = "Given token not valid for any token type"
	msgPermissionDenied   = "You do not have permission to perform this action."
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the user id and staff flag on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, msgMissingCredentials)
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken).SetInternal(err)
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyIsStaff, claims.IsStaff)

		return next(c)
	}
}

// RequireStaff must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if isStaff, _ := c.Get(ContextKeyIsStaff).(bool); !isStaff {
			return echo.NewHTTPError(http.StatusForbidden, msgPermissionDenied)
		}

		return next(c)
	}
}

// UserID returns the authenticated user's id.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextKeyUserID).(int64)

	return id, ok && id > 0
}
