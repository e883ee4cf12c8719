package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/config"
	"github.com/boddenberg/casa-cashflow-go/internal/domain"
	"github.com/boddenberg/casa-cashflow-go/internal/engine"
	"github.com/boddenberg/casa-cashflow-go/internal/handler"
	"github.com/boddenberg/casa-cashflow-go/internal/infra/cache"
	"github.com/boddenberg/casa-cashflow-go/internal/infra/observability"
	"github.com/boddenberg/casa-cashflow-go/internal/infra/resilience"
	"github.com/boddenberg/casa-cashflow-go/internal/infra/supabase"
	"github.com/boddenberg/casa-cashflow-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.Int("projection_days_default", cfg.ProjectionDaysDefault),
		zap.Int("projection_days_max", cfg.ProjectionDaysMax),
		zap.Bool("reject_negative_amounts", cfg.RejectNegativeAmounts),
	)

	if cfg.SupabaseURL == "" {
		logger.Fatal("SUPABASE_URL is required")
	}

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "casa-cashflow")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Cache ---
	projectionCache := cache.New[*domain.CashflowProjection](cfg.CacheTTL)

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	cb := resilience.NewCircuitBreaker("supabase")

	// --- Supabase client & stores ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	supabaseClient := supabase.NewClient(
		httpClient,
		cfg.SupabaseURL,
		cfg.SupabaseAnonKey,
		cfg.SupabaseServiceKey,
		cb,
		resilienceCfg,
		logger,
	)
	financeStore := supabase.NewFinanceStore(supabaseClient)
	snapshotStore := supabase.NewSnapshotStore(supabaseClient)
	notificationStore := supabase.NewNotificationStore(supabaseClient)
	authStore := supabase.NewAuthStore(supabaseClient)

	// --- Services ---
	cashflowSvc := service.NewCashflowService(
		financeStore,
		snapshotStore,
		notificationStore,
		projectionCache,
		metrics,
		logger,
		service.CashflowConfig{
			DaysDefault:          cfg.ProjectionDaysDefault,
			DaysMax:              cfg.ProjectionDaysMax,
			RejectNegative:       cfg.RejectNegativeAmounts,
			TwiceMonthlyFallback: engine.TwiceMonthlyFullAmount,
		},
	)
	financeSvc := service.NewFinanceService(financeStore, cashflowSvc, logger, cfg.RejectNegativeAmounts)
	authSvc := service.NewAuthService(authStore, logger, cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	// --- Router ---
	router := handler.NewRouter(cashflowSvc, financeSvc, authSvc, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
