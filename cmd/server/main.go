package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"clinicdesk/cmd/server/docs"
	"clinicdesk/internal/api"
	apimiddleware "clinicdesk/internal/api/middleware"
	"clinicdesk/internal/api/ws"
	"clinicdesk/internal/config"
	"clinicdesk/internal/logging"
	"clinicdesk/internal/metrics"
	"clinicdesk/internal/redis"
	"clinicdesk/internal/repository"
	"clinicdesk/internal/tracing"
	"clinicdesk/internal/worker"
)

const serviceName = "clinicdesk"

// @title Clinic Desk API
// @version 1.0
// @description Customer, FAQ, message template and appointment management for a clinic front desk.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Staff JWT. Example: Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(serviceName, cfg.LogLevel)

	shutdownTracing, err := tracing.Setup(ctx, serviceName, cfg.Tracing)
	if err != nil {
		logger.Error("failed to set up tracing", "err", err)
		os.Exit(1)
	}

	db, err := repository.New(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to initialize database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	var rdb *goredis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.New(cfg.Redis)
		if err := redis.Ping(ctx, rdb); err != nil {
			logger.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
	} else {
		logger.Warn("REDIS_ADDR not set, rate limiting disabled")
	}

	hub := ws.NewHub(logger)
	defer hub.Close()

	docs.SwaggerInfo.Host = cfg.HTTPAddr
	if cfg.IsProduction() {
		docs.SwaggerInfo.Schemes = []string{"https"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http"}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(otelecho.Middleware(serviceName))
	e.Use(apimiddleware.RequestLogger(logger))
	e.Use(metrics.PrometheusMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api.SetupRoutes(e, db.DB(), rdb, hub, cfg, logger)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env, "auth", cfg.Auth.Enabled)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	statsWorker := worker.NewStatsWorker(repository.NewStatsRepository(db.DB()), cfg.StatsInterval, logger)
	go statsWorker.StartWorker(ctx)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", "err", err)
	}
}
