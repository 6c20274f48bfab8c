// Package cli is the terminal front end of the storefront. Each invocation runs one subcommand
// against the shop backend; the token pair persists between invocations.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - account: register, login, logout, whoami
// - catalog: products, product, qr
// - admin:   product-create, product-update, product-delete
// - cart:    cart, cart-add, cart-update, cart-reduce, cart-remove, cart-clear, checkout
// - orders:  orders

// ErrUsage is returned when the command line cannot be understood.
var ErrUsage = errors.New("invalid usage")

// Params holds dependencies for the CLI, injected by Fx
type Params struct {
	fx.In

	Auth    usecase.AuthUsecase
	Cart    usecase.CartUsecase
	Catalog usecase.CatalogUsecase
	Orders  usecase.OrderUsecase
	Logger  *slog.Logger

	Stdin  io.Reader `name:"cliInput" optional:"true"`
	Stdout io.Writer `name:"cliOutput" optional:"true"`
	Stderr io.Writer `name:"cliErrors" optional:"true"`
}

// App dispatches subcommands to the use cases.
type App struct {
	auth    usecase.AuthUsecase
	cart    usecase.CartUsecase
	catalog usecase.CatalogUsecase
	orders  usecase.OrderUsecase
	logger  *slog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp creates the CLI; unset streams default to the process's standard streams.
func NewApp(params Params) *App {
	app := &App{
		auth:    params.Auth,
		cart:    params.Cart,
		catalog: params.Catalog,
		orders:  params.Orders,
		logger:  params.Logger,
		in:      params.Stdin,
		out:     params.Stdout,
		errOut:  params.Stderr,
	}
	if app.in == nil {
		app.in = os.Stdin
	}
	if app.out == nil {
		app.out = os.Stdout
	}
	if app.errOut == nil {
		app.errOut = os.Stderr
	}

	return app
}

type handlerFunc func(ctx context.Context, args []string) error

func (a *App) commands() map[string]handlerFunc {
	return map[string]handlerFunc{
		"register":       a.handleRegister,
		"login":          a.handleLogin,
		"logout":         a.handleLogout,
		"whoami":         a.handleWhoAmI,
		"products":       a.handleProducts,
		"models":         a.handleModels,
		"product":        a.handleProduct,
		"qr":             a.handleQR,
		"product-create": a.handleProductCreate,
		"product-update": a.handleProductUpdate,
		"product-delete": a.handleProductDelete,
		"cart":           a.handleCart,
		"cart-add":       a.handleCartAdd,
		"cart-update":    a.handleCartUpdate,
		"cart-reduce":    a.handleCartReduce,
		"cart-remove":    a.handleCartRemove,
		"cart-clear":     a.handleCartClear,
		"checkout":       a.handleCheckout,
		"orders":         a.handleOrders,
	}
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.PrintUsage()
		if len(args) == 0 {
			return errors.WithStack(ErrUsage)
		}

		return nil
	}

	handle, ok := a.commands()[args[0]]
	if !ok {
		a.PrintUsage()

		return errors.Wrapf(ErrUsage, "unknown subcommand %q", args[0])
	}

	ctx, requestID := deliverycontext.EnsureRequestID(ctx)
	logger := a.logger.With(slog.String("command", args[0]), slog.String("request_id", requestID))
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.Debug("Running command", slog.Any("args", args[1:]))

	return handle(ctx, args[1:])
}

// PrintUsage lists every subcommand.
func (a *App) PrintUsage() {
	fmt.Fprint(a.errOut, `Usage: storefront <command> [flags]

Account:
  register -username U -email E -password P -first F -last L
  login -username U [-password P]     password is read from stdin when omitted
  logout
  whoami

Catalog:
  products [-model M] [-q TEXT]
  models
  product <id>
  qr <id> [-out FILE.png]

Admin:
  product-create -name N -price P -quantity Q -model M [-image FILE ...]
  product-update <id> [-name N] [-price P] [-quantity Q] [-active=false] ...
  product-delete <id>

Cart:
  cart
  cart-add <id> [-quantity N]
  cart-update <id> -quantity N        quantity 0 removes the line
  cart-reduce <id> [-quantity N]      a line reaching 0 is removed
  cart-remove <id>
  cart-clear
  checkout
  orders
`)
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(ErrUsage, "failed to parse %s flags: %v", fs.Name(), err)
	}

	return nil
}

// reportedError marks a failure that was already shown to the user as a notification.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

func reported(err error) error {
	if err == nil {
		return nil
	}

	return reportedError{error: err}
}

// Describe renders err for the terminal. It returns "" when the user has already been told.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var shown reportedError
	if errors.As(err, &shown) {
		return ""
	}
	if errors.Is(err, ErrUsage) {
		return err.Error()
	}

	message := domainerrors.MessageOf(err)
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		message += " (" + appErr.Details() + ")"
	}

	return strings.TrimSpace(message)
}
