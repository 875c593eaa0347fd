package main

import (
	"context"
	"log/slog"
	"os"

	"cardapio/config"
	"cardapio/internal/delivery"
	"cardapio/internal/delivery/http"
	"cardapio/internal/delivery/http/middleware"
	"cardapio/internal/delivery/http/router/handler"
	"cardapio/internal/infra/auth"
	"cardapio/internal/infra/cache"
	logs "cardapio/internal/infra/log"
	"cardapio/internal/infra/metrics"
	"cardapio/internal/infra/persistence/postgres"
	"cardapio/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTenantService,
			impl.NewAuthService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewPromotionService,
			impl.NewPublicService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewMetricsMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTenantHandler,
			handler.NewAuthHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewPromotionHandler,
			handler.NewPublicHandler,
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
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
