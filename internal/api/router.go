package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/staffhub/admin-api/internal/api/handler"
	"github.com/staffhub/admin-api/internal/api/middleware"
	"github.com/staffhub/admin-api/internal/core/ports"
	"github.com/staffhub/admin-api/internal/core/service"
	"github.com/staffhub/admin-api/internal/infrastructure/config"
	"github.com/staffhub/admin-api/internal/infrastructure/db/postgres"
	"github.com/staffhub/admin-api/internal/infrastructure/db/redis"
	"github.com/staffhub/admin-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	db *sqlx.DB,
	rdb *goredis.Client,
	notifier ports.ResetNotifier,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("staffhub"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	assignationRepo := postgres.NewAssignationRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	tokenRepo := postgres.NewPasswordTokenRepository(db)

	// Principal lookups go through the Redis cache; the user service
	// invalidates entries when the enabled flag changes, everything else
	// ages out within the TTL.
	principalCache := redis.NewPrincipalCache(rdb, userRepo)

	// --- Services ---
	userService := service.NewUserService(userRepo, tokenRepo, notifier, principalCache, cfg.Auth.PasswordTokenTTL, log)
	clientService := service.NewClientService(clientRepo, log)
	accountService := service.NewAccountService(accountRepo, userRepo, clientRepo, log)
	assignationService := service.NewAssignationService(assignationRepo, userRepo, accountRepo, log)
	authService := service.NewAuthService(
		userRepo, tokenRepo, roleRepo, notifier,
		cfg.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.PasswordTokenTTL,
		cfg.Auth.BcryptCost, log,
	)

	// --- Handlers ---
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	accountHandler := handler.NewAccountHandler(accountService)
	assignationHandler := handler.NewAssignationHandler(assignationService)
	authHandler := handler.NewAuthHandler(authService)

	authRequired := middleware.Auth(cfg.JWTSecret, principalCache)
	authorized := middleware.Authorize()

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/users", userHandler.Register)
	apiGroup.GET("/users", userHandler.List)
	apiGroup.GET("/users/:id", userHandler.Get)
	apiGroup.PATCH("/users/:id", userHandler.Update)
	apiGroup.PATCH("/users/:id/enabled", userHandler.UpdateEnabled)

	apiGroup.POST("/clients", clientHandler.Register)
	apiGroup.GET("/clients", clientHandler.List)
	apiGroup.GET("/clients/:id", clientHandler.Get)
	apiGroup.PATCH("/clients/:id", clientHandler.Update)
	apiGroup.PATCH("/clients/:id/archived", clientHandler.UpdateArchived)

	apiGroup.POST("/accounts", accountHandler.Register)
	apiGroup.GET("/accounts", accountHandler.List)
	apiGroup.GET("/accounts/:id", accountHandler.Get)
	apiGroup.PATCH("/accounts/:id", accountHandler.Update)
	apiGroup.PATCH("/accounts/:id/archived", accountHandler.UpdateArchived)

	apiGroup.POST("/assignations", assignationHandler.Register, authRequired, authorized)
	apiGroup.GET("/assignations", assignationHandler.List, authRequired, authorized)
	apiGroup.PATCH("/assignations/:id", assignationHandler.Terminate, authRequired, authorized)

	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/resetpassword", authHandler.ResetPassword)
	apiGroup.PATCH("/auth/password", authHandler.UpdatePassword)
	apiGroup.GET("/auth/roles", authHandler.Roles, authRequired, authorized)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
