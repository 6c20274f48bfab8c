// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	gateway     service.Gateway
	credentials repository.CredentialRepository
	claims      service.ClaimsDecoder
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	gateway service.Gateway,
	credentials repository.CredentialRepository,
	claims service.ClaimsDecoder,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		gateway:     gateway,
		credentials: credentials,
		claims:      claims,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Login(ctx context.Context, username, password string) (*entity.Session, error) {
	session, err := srv.gateway.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := srv.credentials.Save(ctx, *session); err != nil {
		srv.log(ctx).Error("Failed to persist session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Debug("Session stored", slog.String("username", username))

	return session, nil
}

func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.credentials.Delete(ctx); err != nil {
		srv.log(ctx).Warn("Failed to delete persisted session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

func (srv *sessionService) IsAuthenticated() bool {
	return !srv.credentials.Current().IsZero()
}

func (srv *sessionService) AccessToken() string {
	return srv.credentials.Current().AccessToken
}

func (srv *sessionService) Claims() (*entity.TokenClaims, bool) {
	token := srv.AccessToken()
	if token == "" {
		return nil, false
	}

	claims, err := srv.claims.Decode(token)
	if err != nil {
		srv.logger.Debug("Access token carries no readable claims", slog.Any("error", err))

		return nil, false
	}

	return claims, true
}
