package components

import (
	"book-manager/internal/pkg/clock"
	"book-manager/internal/pkg/config"
	"book-manager/internal/usecase"
	"book-manager/internal/usecase/commands"
	"book-manager/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,

		commands.NewCheckoutCommands,
		commands.NewBookCommands,
		commands.NewUserCommands,
		NewAuthCommands,

		queries.NewCheckoutQueries,
		queries.NewBookQueries,
		queries.NewUserQueries,

		usecase.NewTokenValidator,
	),
)

func NewAuthCommands(reader commands.AuthReader, tokens commands.TokenStore, cfg config.Config) commands.AuthCommands {
	return commands.NewAuthCommands(reader, tokens, cfg.Auth.TokenTTL)
}
