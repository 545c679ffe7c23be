package components

import (
	"book-manager/internal/infra/kvs"
	"book-manager/internal/infra/readstore"
	"book-manager/internal/infra/repository"
	"book-manager/internal/usecase"
	"book-manager/internal/usecase/commands"
	"book-manager/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewCheckoutRepository,
			fx.As(new(commands.CheckoutStore)),
		),
		fx.Annotate(
			repository.NewBookRepository,
			fx.As(new(commands.BookStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserStore)),
		),
		// Read side
		fx.Annotate(
			readstore.NewCheckoutReadStore,
			fx.As(new(queries.CheckoutReadStore)),
		),
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
			fx.As(new(commands.BookReader)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.AuthReader)),
		),
		// Session store
		func(c *kvs.Client) commands.TokenStore { return c },
		func(c *kvs.Client) usecase.TokenResolver { return c },
	),
)
