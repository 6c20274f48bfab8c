package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	session  usecase.SessionUsecase
	gateway  service.Gateway
	validate *validator.CustomValidator
	logger   *slog.Logger

	mu   sync.RWMutex
	user *entity.User

	events broadcaster[usecase.AuthEvent]
}

// NewAuthService is the constructor for authService.
// A session restored from storage counts as authenticated; the user is then known only from token claims.
func NewAuthService(
	session usecase.SessionUsecase,
	gateway service.Gateway,
	logger *slog.Logger,
) usecase.AuthUsecase {
	srv := &authService{
		session:  session,
		gateway:  gateway,
		validate: validator.New(),
		logger:   logger,
	}

	if session.IsAuthenticated() {
		if claims, ok := session.Claims(); ok && claims.Username != "" {
			srv.user = userFromClaims(claims.Username, claims)
		}
	}

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Login(ctx context.Context, username, password string) error {
	if _, err := srv.session.Login(ctx, username, password); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

		return err
	}

	claims, _ := srv.session.Claims()
	user := userFromClaims(username, claims)

	srv.mu.Lock()
	srv.user = user
	srv.mu.Unlock()

	srv.log(ctx).Info("Signed in", slog.String("username", username), slog.Bool("is_admin", user.IsAdmin))
	srv.events.publish(ctx, usecase.AuthEvent{Authenticated: true, User: cloneUser(user)})

	return nil
}

func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if err := srv.validate.Validate(input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(validator.Describe(err)))
	}

	user, err := srv.gateway.Register(ctx, &entity.Registration{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		Password2: input.Password2,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Account registered", slog.String("username", user.Username))

	return user, nil
}

func (srv *authService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	srv.user = nil
	srv.mu.Unlock()

	err := srv.session.Logout(ctx)

	// The in-memory session is gone even when storage cleanup failed.
	srv.events.publish(ctx, usecase.AuthEvent{Authenticated: false})

	return err
}

func (srv *authService) LoadProfile(ctx context.Context) (*entity.User, error) {
	if !srv.session.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	user, err := srv.gateway.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	srv.user = user
	srv.mu.Unlock()

	return cloneUser(user), nil
}

func (srv *authService) User() (*entity.User, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.user == nil || !srv.session.IsAuthenticated() {
		return nil, false
	}

	return cloneUser(srv.user), true
}

func (srv *authService) IsAuthenticated() bool {
	return srv.session.IsAuthenticated()
}

func (srv *authService) IsAdmin() bool {
	user, ok := srv.User()

	return ok && user.IsAdmin
}

func (srv *authService) Subscribe(fn func(ctx context.Context, event usecase.AuthEvent)) func() {
	return srv.events.subscribe(fn)
}

// userFromClaims builds the partial user known right after login.
func userFromClaims(username string, claims *entity.TokenClaims) *entity.User {
	user := &entity.User{Username: username}
	if claims != nil {
		user.ID = claims.UserID
		user.IsAdmin = claims.IsStaff
	}

	return user
}

func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}
	clone := *user

	return &clone
}
