package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/drgilson/gascrm-backend/api/routes"
	authsvc "github.com/drgilson/gascrm-backend/internal/auth"
	"github.com/drgilson/gascrm-backend/internal/customers"
	"github.com/drgilson/gascrm-backend/internal/messages"
	"github.com/drgilson/gascrm-backend/internal/setup"
	"github.com/drgilson/gascrm-backend/internal/stats"
	"github.com/drgilson/gascrm-backend/internal/users"
	"github.com/drgilson/gascrm-backend/pkg/auth/session"
	"github.com/drgilson/gascrm-backend/pkg/config"
	"github.com/drgilson/gascrm-backend/pkg/db"
	"github.com/drgilson/gascrm-backend/pkg/logger"
	"github.com/drgilson/gascrm-backend/pkg/metrics"
	"github.com/drgilson/gascrm-backend/pkg/migrate"
	redisclient "github.com/drgilson/gascrm-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	// Schema is applied at startup so a fresh deploy serves immediately;
	// /api/init-db stays available for the legacy frontend flow.
	if err := migrate.Up(context.Background(), dbClient); err != nil {
		logg.Error(context.Background(), "failed to apply migrations", err)
		os.Exit(1)
	}

	redisClient, err := redisclient.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())

	setupService, err := setup.NewService(setup.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create setup service", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	customersRepo := customers.NewRepository(dbClient.DB())
	customersService, err := customers.NewService(customersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create customers service", err)
		os.Exit(1)
	}

	messagesService, err := messages.NewService(messages.ServiceParams{
		Repo:         messages.NewRepository(dbClient.DB()),
		Customers:    customersRepo,
		HistoryLimit: cfg.Messaging.HistoryLimit,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create messages service", err)
		os.Exit(1)
	}

	statsService, err := stats.NewService(stats.ServiceParams{
		Repo:          stats.NewRepository(dbClient.DB()),
		LookaheadDays: cfg.Stats.AlertLookaheadDays,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create stats service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	router := routes.NewRouter(routes.RouterParams{
		Config:           cfg,
		Logger:           logg,
		DB:               dbClient,
		Redis:            redisClient,
		Sessions:         sessionManager,
		HTTPMetrics:      httpMetrics,
		Registry:         registry,
		SetupService:     setupService,
		AuthService:      authService,
		CustomersService: customersService,
		MessagesService:  messagesService,
		StatsService:     statsService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(logCtx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(logCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(logCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var closeErr error
	closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
	closeErr = multierr.Append(closeErr, redisClient.Close())
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(logCtx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(logCtx, "shutdown complete")
}
