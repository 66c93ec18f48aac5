package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/weiyuzhang/dealerhub/config"
	"github.com/weiyuzhang/dealerhub/internal/email"
	"github.com/weiyuzhang/dealerhub/internal/health"
	"github.com/weiyuzhang/dealerhub/internal/infrastructure/postgres"
	ctxlog "github.com/weiyuzhang/dealerhub/internal/log"
	"github.com/weiyuzhang/dealerhub/internal/maintenance"
	"github.com/weiyuzhang/dealerhub/internal/metrics"
	httptransport "github.com/weiyuzhang/dealerhub/internal/transport/http"
	"github.com/weiyuzhang/dealerhub/internal/transport/http/handler"
	"github.com/weiyuzhang/dealerhub/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	// Auth
	userRepo := postgres.NewUserRepository(pool)
	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)
	authUsecase := usecase.NewAuthUsecase(userRepo, emailSender, []byte(cfg.JWTSecret), cfg.MagicLinkBase)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Catalog
	carRepo := postgres.NewCarRepository(pool)
	dealerRepo := postgres.NewDealerRepository(pool)
	catalogUsecase := usecase.NewCatalogUsecase(carRepo, dealerRepo)
	carHandler := handler.NewCarHandler(catalogUsecase, logger)
	dealerHandler := handler.NewDealerHandler(catalogUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr: ":" + cfg.Port,
		Handler: httptransport.NewRouter(
			logger, carHandler, dealerHandler, authHandler,
			userRepo, cfg.JWKSURL, []byte(cfg.JWTSecret),
		),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	purger := maintenance.NewTokenPurger(userRepo, logger, cfg.TokenPurgeCron)
	go func() {
		if err := purger.Start(ctx); err != nil {
			logger.Error("token purger", "error", err)
		}
	}()

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
