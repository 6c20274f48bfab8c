package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"storefront/config"
	"storefront/internal/delivery/cli"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/gateway"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/notification"
	"storefront/internal/infra/persistence/blobstore"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

const stopTimeout = 5 * time.Second

func main() {
	var app *cli.App
	container := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Provide(cli.NewApp),
		fx.Populate(&app),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := container.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := app.Run(ctx, os.Args[1:])

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	if err := container.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	if runErr != nil {
		if message := cli.Describe(runErr); message != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
		cancel()
		stopCancel()
		os.Exit(1)
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		blobstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			blobstore.NewCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			gateway.New,
			auth.NewClaimsDecoder,
			qrcode.New,
			notification.NewConsoleNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthService,
			impl.NewCartService,
			impl.NewCatalogService,
			impl.NewOrderService,
		),
	)
}
