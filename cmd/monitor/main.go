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

	"github.com/agencydesk/agencydesk/config"
	"github.com/agencydesk/agencydesk/internal/email"
	"github.com/agencydesk/agencydesk/internal/health"
	"github.com/agencydesk/agencydesk/internal/infrastructure/postgres"
	ctxlog "github.com/agencydesk/agencydesk/internal/log"
	"github.com/agencydesk/agencydesk/internal/metrics"
	"github.com/agencydesk/agencydesk/internal/monitor"
	"github.com/agencydesk/agencydesk/internal/usecase"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	logger.Info("db connected")

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	userRepo := postgres.NewUserRepository(pool)
	siteRepo := postgres.NewSiteRepository(pool)
	hostingRepo := postgres.NewHostingAccountRepository(pool)
	appRepo := postgres.NewMobileAppRepository(pool)
	settingsRepo := postgres.NewReminderSettingsRepository(pool)

	renewalUC := usecase.NewRenewalUsecase(siteRepo, hostingRepo, appRepo, sender, logger)

	mon, err := monitor.New(
		userRepo,
		settingsRepo,
		renewalUC,
		logger,
		cfg.ScanCronExpr,
		cfg.LookaheadDays,
		cfg.ScanWorkers,
	)
	if err != nil {
		stop()
		log.Fatalf("monitor: %v", err)
	}
	go mon.Start(ctx)

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)
	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}

	logger.Info("monitor shut down")
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
