package main

import (
	"context"
	"log/slog"
	"os"

	"bookshelf/config"
	"bookshelf/internal/delivery"
	"bookshelf/internal/delivery/http"
	"bookshelf/internal/delivery/http/middleware"
	"bookshelf/internal/delivery/http/router/handler"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/infra/auth"
	"bookshelf/internal/infra/cache"
	"bookshelf/internal/infra/catalog/googlebooks"
	logs "bookshelf/internal/infra/log"
	"bookshelf/internal/infra/persistence/postgres"
	"bookshelf/internal/usecase/impl"

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
		cache.New,
		cache.NewCollectionCache,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBookRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSHA256Hasher,
			newBookCatalog,
		),
	)
}

// newBookCatalog creates the external catalog client with dependency injection
func newBookCatalog(cfg *config.Config, logger *slog.Logger) service.BookCatalog {
	return googlebooks.NewClient(cfg.Catalog, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewBookService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewBookHandler,
			handler.NewSystemHandler,
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
