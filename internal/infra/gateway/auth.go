package gateway

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/domain/entity"
)

const (
	pathRegister = "/register/"
	pathLogin    = "/login/"
	pathMe       = "/user/me/"
)

func (c *Client) Register(ctx context.Context, registration *entity.Registration) (*entity.User, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, pathRegister, registrationWire{
		Username:  registration.Username,
		Email:     registration.Email,
		Password:  registration.Password,
		Password2: registration.Password2,
		FirstName: registration.FirstName,
		LastName:  registration.LastName,
	})
	if err != nil {
		return nil, transportFailure("Registration failed", err)
	}
	if !resp.ok() {
		return nil, authFailure(resp, "Registration failed")
	}

	// The account exists at this point, so an odd body only loses profile details.
	var user userWire
	if err := c.decodeValid(resp.body, &user); err != nil {
		c.log(ctx).Warn("Registration response has unexpected shape", slog.Any("error", err))

		return &entity.User{
			Username:  registration.Username,
			Email:     registration.Email,
			FirstName: registration.FirstName,
			LastName:  registration.LastName,
		}, nil
	}

	return user.toEntity(), nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*entity.Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, pathLogin, loginWire{Username: username, Password: password})
	if err != nil {
		return nil, transportFailure("Login failed", err)
	}
	if !resp.ok() {
		return nil, authFailure(resp, "Login failed")
	}

	var tokens tokensWire
	if err := c.decodeValid(resp.body, &tokens); err != nil {
		return nil, shapeFailure("login response", err)
	}

	return &entity.Session{AccessToken: tokens.Access, RefreshToken: tokens.Refresh}, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*entity.User, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, pathMe, nil)
	if err != nil {
		return nil, transportFailure("Failed to fetch user", err)
	}
	if !resp.ok() {
		return nil, fetchFailure(resp, "Failed to fetch user", true)
	}

	var user userWire
	if err := c.decodeValid(resp.body, &user); err != nil {
		return nil, shapeFailure("user response", err)
	}

	return user.toEntity(), nil
}
