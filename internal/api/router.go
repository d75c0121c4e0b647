package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/plantvision/plantvision-api/internal/api/handler"
	"github.com/plantvision/plantvision-api/internal/api/middleware"
	"github.com/plantvision/plantvision-api/internal/core/ports"
	"github.com/plantvision/plantvision-api/internal/core/service"
	"github.com/plantvision/plantvision-api/internal/infrastructure/config"
	"github.com/plantvision/plantvision-api/internal/infrastructure/db/postgres"
	redisdb "github.com/plantvision/plantvision-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The classifier and upload store are constructed by the caller during the
// startup init phase, before the listener starts.
func NewRouter(
	db *sql.DB,
	rdb *goredis.Client,
	classifier ports.Classifier,
	uploads service.ImageStore,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("plantvision"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour, log)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	predictionRepo := postgres.NewPredictionRepository(db)
	resultCache := redisdb.NewClassificationCache(rdb)
	predictionService := service.NewPredictionService(predictionRepo, classifier, uploads, resultCache, log)
	predictionHandler := handler.NewPredictionHandler(predictionService)

	// --- API routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/predict", predictionHandler.Predict)
	e.GET("/api/history", predictionHandler.History)
	e.GET("/api/me", authHandler.Me, authMiddleware)

	// --- Liveness, readiness, metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
