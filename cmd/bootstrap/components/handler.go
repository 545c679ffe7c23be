package components

import (
	"book-manager/internal/handler"
	"book-manager/internal/handler/api"
	"book-manager/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewAuthHandler,
		api.NewBookHandler,
		api.NewCheckoutHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
