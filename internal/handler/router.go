package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"book-manager/internal/handler/api"
	"book-manager/internal/handler/middleware"
	"book-manager/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	healthHandler *api.HealthHandler,
	authHandler *api.AuthHandler,
	bookHandler *api.BookHandler,
	checkoutHandler *api.CheckoutHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, healthHandler, authHandler, bookHandler, checkoutHandler, userHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	healthHandler *api.HealthHandler,
	authHandler *api.AuthHandler,
	bookHandler *api.BookHandler,
	checkoutHandler *api.CheckoutHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthHandler.Check)
	engine.GET("/health/db", healthHandler.CheckDB)
	engine.GET("/health/redis", healthHandler.CheckRedis)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api/v1")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		books := apiGroup.Group("/books")
		books.Use(authMiddleware.RequireAuth())
		{
			addRoutes(books, []route{
				{Method: http.MethodPost, Path: "", Handler: bookHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookHandler.List},
				{Method: http.MethodGet, Path: "/checkouts", Handler: checkoutHandler.ListUnreturned},
				{Method: http.MethodGet, Path: "/:book_id", Handler: bookHandler.Get},
				{Method: http.MethodPut, Path: "/:book_id", Handler: bookHandler.Update},
				{Method: http.MethodDelete, Path: "/:book_id", Handler: bookHandler.Delete},
				{Method: http.MethodPost, Path: "/:book_id/checkouts", Handler: checkoutHandler.Checkout},
				{Method: http.MethodPut, Path: "/:book_id/checkouts/:checkout_id/returned", Handler: checkoutHandler.Return},
				{Method: http.MethodGet, Path: "/:book_id/checkout-history", Handler: checkoutHandler.History},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: userHandler.List},
				{Method: http.MethodGet, Path: "/me", Handler: userHandler.Me},
				{Method: http.MethodGet, Path: "/me/checkouts", Handler: checkoutHandler.ListMine},
				{Method: http.MethodPut, Path: "/me/password", Handler: userHandler.ChangePassword},
			})

			admin := users.Group("")
			admin.Use(authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: userHandler.Create},
				{Method: http.MethodDelete, Path: "/:user_id", Handler: userHandler.Delete},
				{Method: http.MethodPut, Path: "/:user_id/role", Handler: userHandler.ChangeRole},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
