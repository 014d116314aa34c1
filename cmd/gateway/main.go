package main

import (
	"context"
	"log/slog"
	"os"

	"mycloudmen/config"
	"mycloudmen/internal/delivery"
	"mycloudmen/internal/delivery/api"
	apimiddleware "mycloudmen/internal/delivery/api/middleware"
	"mycloudmen/internal/delivery/api/router"
	"mycloudmen/internal/delivery/api/router/handler"
	"mycloudmen/internal/delivery/middleware"
	"mycloudmen/internal/domain/lifecycle"
	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/infra/auth/oidc"
	"mycloudmen/internal/infra/backend"
	logs "mycloudmen/internal/infra/log"
	"mycloudmen/internal/infra/pubsub"
	"mycloudmen/internal/infra/session"
	"mycloudmen/internal/usecase"
	"mycloudmen/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			subscribeAuthObservers,
			startPoller,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return session.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewClient,
			newProfileGateway,
			oidc.NewProvider,
		),
		pubsub.Module,
	)
}

// newProfileGateway exposes the backend client through its port.
func newProfileGateway(client *backend.Client) service.ProfileGateway {
	return client
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditRecorder,
			impl.NewProfileService,
			impl.NewCompanyStatusResolver,
			impl.NewReconciliationService,
			impl.NewIdentityBridge,
			impl.NewGuardService,
			impl.NewStatusPoller,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewLoginRateLimiter,
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewAdminHandler,
			router.NewBackendProxy,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// subscribeAuthObservers lets the engine and the poller follow session
// authentication changes.
func subscribeAuthObservers(identity usecase.IdentityUsecase, reconciler usecase.ReconciliationUsecase, poller usecase.StatusPoller) {
	identity.Subscribe(reconciler)
	identity.Subscribe(poller)
}

func startPoller(lc fx.Lifecycle, poller usecase.StatusPoller) {
	lc.Append(fx.StartStopHook(
		poller.Start,
		func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return poller.Stop(stopCtx)
		},
	))
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
