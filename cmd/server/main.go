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
	httptransport "github.com/agencydesk/agencydesk/internal/transport/http"
	"github.com/agencydesk/agencydesk/internal/transport/http/handler"
	"github.com/agencydesk/agencydesk/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
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

	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	siteRepo := postgres.NewSiteRepository(pool)
	hostingRepo := postgres.NewHostingAccountRepository(pool)
	appRepo := postgres.NewMobileAppRepository(pool)
	devAccountRepo := postgres.NewDeveloperAccountRepository(pool)
	settingsRepo := postgres.NewReminderSettingsRepository(pool)

	authUC := usecase.NewAuthUsecase(userRepo, sender, []byte(cfg.JWTSecret), cfg.AppBaseURL)
	clientUC := usecase.NewClientUsecase(clientRepo)
	siteUC := usecase.NewSiteUsecase(siteRepo, hostingRepo)
	hostingUC := usecase.NewHostingUsecase(hostingRepo)
	appUC := usecase.NewMobileAppUsecase(appRepo, devAccountRepo)
	devAccountUC := usecase.NewDeveloperAccountUsecase(devAccountRepo)
	settingsUC := usecase.NewSettingsUsecase(settingsRepo)
	renewalUC := usecase.NewRenewalUsecase(siteRepo, hostingRepo, appRepo, sender, logger)

	handlers := httptransport.Handlers{
		Auth:       handler.NewAuthHandler(authUC, logger),
		Client:     handler.NewClientHandler(clientUC, logger),
		Site:       handler.NewSiteHandler(siteUC, logger),
		Hosting:    handler.NewHostingHandler(hostingUC, logger),
		MobileApp:  handler.NewMobileAppHandler(appUC, logger),
		DevAccount: handler.NewDeveloperAccountHandler(devAccountUC, logger),
		Settings:   handler.NewSettingsHandler(settingsUC, logger),
		Renewal:    handler.NewRenewalHandler(renewalUC, logger),
	}

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, handlers, []byte(cfg.JWTSecret)),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

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
