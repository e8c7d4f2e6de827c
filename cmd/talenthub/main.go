package main

import (
	"context"
	"log/slog"
	"os"

	"talenthub/config"
	"talenthub/internal/delivery"
	"talenthub/internal/delivery/http"
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/delivery/http/router/handler"
	"talenthub/internal/domain/repository"
	"talenthub/internal/domain/service"
	"talenthub/internal/infra/cache"
	"talenthub/internal/infra/gateway"
	logs "talenthub/internal/infra/log"
	"talenthub/internal/usecase/impl"

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
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newProfileCache,
		newProfileGateway,
	)
}

// newProfileCache selects the snapshot cache backend from configuration.
func newProfileCache(cfg *config.Config) repository.ProfileCache {
	if cfg.Cache != nil && cfg.Cache.Backend == "redis" && cfg.Cache.Redis != nil {
		return cache.NewRedisCache(cfg.Cache.Redis)
	}

	return cache.NewMemoryCache()
}

// newProfileGateway creates the upstream Profile API client.
func newProfileGateway(cfg *config.Config, profileCache repository.ProfileCache, logger *slog.Logger) service.ProfileGateway {
	return gateway.NewHTTPGateway(cfg.ProfileAPI, profileCache, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileEditorService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		delivery := delivery
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
