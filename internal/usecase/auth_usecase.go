package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthEvent is delivered to subscribers after every successful login or logout.
type AuthEvent struct {
	Authenticated bool
	User          *entity.User // nil after logout
}

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// AuthUsecase wraps the session with the identity known to this process.
type AuthUsecase interface {
	// Login signs in and records a partial user (username, plus id/admin flag when the token carries them).
	Login(ctx context.Context, username, password string) error
	// Register creates an account. It does not sign in.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Logout(ctx context.Context) error
	// LoadProfile replaces the partial user with the server's profile.
	LoadProfile(ctx context.Context) (*entity.User, error)

	User() (*entity.User, bool)
	IsAuthenticated() bool
	IsAdmin() bool

	// Subscribe registers fn for auth events, delivered synchronously in subscription order.
	Subscribe(fn func(ctx context.Context, event AuthEvent)) (unsubscribe func())
}
