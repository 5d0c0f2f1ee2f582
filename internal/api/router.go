package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moviehub/movie-api/internal/api/handler"
	"github.com/moviehub/movie-api/internal/api/middleware"
	"github.com/moviehub/movie-api/internal/core/service"
	"github.com/moviehub/movie-api/internal/infrastructure/config"
	"github.com/moviehub/movie-api/internal/infrastructure/crypto"
	mongodb "github.com/moviehub/movie-api/internal/infrastructure/db/mongo"
	redisdb "github.com/moviehub/movie-api/internal/infrastructure/db/redis"
	"github.com/moviehub/movie-api/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit dispatcher's workers run until ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("movieapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)
	issuer := crypto.NewJWTIssuer(cfg.JWTSecret)

	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	movieCache := redisdb.NewMovieCache(rdb)

	authService := service.NewAuthService(userRepo, hasher, issuer, cfg.TokenTTL, log)
	movieService := service.NewMovieService(movieRepo, movieCache, dispatcher, log)

	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	authMiddleware := middleware.Auth(authService)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the Movie API"})
	})
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	e.GET("/users/me", authHandler.Me, authMiddleware)

	movies := e.Group("/v1/movies", authMiddleware)
	movies.POST("", movieHandler.Create)
	movies.GET("", movieHandler.List)
	movies.GET("/:id", movieHandler.Get)
	movies.PATCH("/:id", movieHandler.Update)
	movies.DELETE("/:id", movieHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
