// Package devgateway serves an in-memory implementation of the shop backend's REST contract
// for local development and end-to-end tests of the storefront client.
package devgateway

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/devgateway/router"
	"storefront/internal/delivery/middleware"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

type Params struct {
	fx.In
	fx.Lifecycle

	Config              *config.Config
	Logger              *slog.Logger
	RouterParams        router.RouterParams
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
	ErrorMiddleware     *middleware.ErrorMiddleware
}

// Server is the development gateway's HTTP server.
type Server struct {
	cfg    *config.DevGatewayConfig
	logger *slog.Logger
	server *echo.Echo
}

var _ delivery.Delivery = (*Server)(nil)

func NewServer(params Params) (*Server, error) {
	if params.Config.DevGateway == nil {
		return nil, errors.New("devGateway configuration must be provided")
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Use(params.RequestIDMiddleware.Process)
	echoServer.Use(params.LoggerMiddleware.Handle)
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.CORS())
	echoServer.Use(echomiddleware.BodyLimit(params.Config.DevGateway.MaxRequestBodySize))

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &Server{
		cfg:    params.Config.DevGateway,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Handler exposes the routes without a listener, for httptest.
func (s *Server) Handler() http.Handler {
	return s.server
}

func (s *Server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Port))
	s.logger.Info("Starting development gateway",
		slog.String("hostPort", hostPort),
		slog.String("baseUrl", "http://"+hostPort+router.APIPrefix),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down development gateway")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
