package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/thewellnesslondon/wellness-api/cmd/mainconfig"
	"github.com/thewellnesslondon/wellness-api/internal/api/router"
	"github.com/thewellnesslondon/wellness-api/internal/bookings"
	"github.com/thewellnesslondon/wellness-api/internal/catalog"
	"github.com/thewellnesslondon/wellness-api/internal/chat"
	appconfig "github.com/thewellnesslondon/wellness-api/internal/config"
	"github.com/thewellnesslondon/wellness-api/internal/notify"
	"github.com/thewellnesslondon/wellness-api/internal/observability/metrics"
	"github.com/thewellnesslondon/wellness-api/internal/triage"
	"github.com/thewellnesslondon/wellness-api/internal/webchat"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

func main() {
	// Load .env if present; real deployments rely on the environment.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting wellness-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Postgres
	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Redis session store
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() { _ = redisClient.Close() }()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	clinicMetrics := metrics.NewClinicMetrics(registry)

	// Conversational oracle with deterministic fallback
	var oracle chat.LLMClient
	if cfg.GeminiAPIKey != "" {
		gemini, err := chat.NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer func() { _ = gemini.Close() }()
		oracle = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat falls back to canned replies")
	}
	llmClient := chat.NewFallbackLLMClient(oracle, chat.NewRuleResponder(), logger)

	// Email sender
	emailSender := newEmailSender(ctx, cfg, logger)
	notifier := notify.NewService(emailSender, cfg.ClinicName, cfg.ClinicPhone, cfg.LLMTimeout, clinicMetrics, logger)

	// Services
	sessionStore := chat.NewSessionStore(redisClient)
	sessionSigner := chat.NewSessionSigner(cfg.SessionSecret)
	chatService := chat.NewService(llmClient, sessionStore, sessionSigner, cfg.LLMTimeout, cfg.LLMMaxTokens, clinicMetrics, logger)
	triageService := triage.NewService(triage.NewPostgresRepository(pool), clinicMetrics, logger)
	bookingService := bookings.NewService(bookings.NewPostgresRepository(pool), notifier, clinicMetrics, logger)

	// Router
	routerCfg := &router.Config{
		Logger:             logger,
		ChatHandler:        chat.NewHandler(chatService, logger),
		TriageHandler:      triage.NewHandler(triageService, logger),
		BookingsHandler:    bookings.NewHandler(bookingService, logger),
		CatalogHandler:     catalog.NewHandler(logger),
		WebChatHandler:     webchat.NewHandler(chatService, nil, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ServiceName:        cfg.ClinicName + " API",
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

func newEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			return sender
		}
		logger.Warn("SENDGRID_API_KEY not set, confirmations are logged only")
	case "ses":
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			return sender
		}
	default:
		logger.Warn("email provider not configured, confirmations are logged only")
	}
	return notify.NewStubEmailSender(logger)
}
