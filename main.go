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

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/blogem/customer-logs/authenticator"
	"github.com/blogem/customer-logs/config"
	"github.com/blogem/customer-logs/controllers"
	"github.com/blogem/customer-logs/logging"
	"github.com/blogem/customer-logs/services"
	"github.com/blogem/customer-logs/telemetry"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using process environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.ServiceName, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OtelEnabled,
		ServiceName:  cfg.ServiceName,
		OTLPEndpoint: cfg.OtelEndpoint,
		SampleRatio:  cfg.OtelSampleRatio,
	})
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	// Initialize the data store
	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize %s store: %v", cfg.DataStore, err)
	}

	// Initialize services
	srvs := services.NewServices(st.repos)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, logger, cfg.ServiceName,
		controllers.ReadyCheck{Name: cfg.DataStore, Check: st.ready},
	)

	// Bearer token verification is optional
	var verifier authenticator.Verifier
	if cfg.AuthEnabled() {
		oidcVerifier, err := authenticator.NewOpenIDVerifier(ctx, authenticator.OpenIDConfig{
			IssuerURL: cfg.OIDCIssuerURL,
			ClientID:  cfg.OIDCClientID,
		})
		if err != nil {
			log.Fatalf("Failed to initialize OpenID verifier: %v", err)
		}
		verifier = oidcVerifier
	}

	// Set up router
	r, err := setupRouter(ctrl, routerOptions{
		Logger:         logger,
		Verifier:       verifier,
		RequestTimeout: cfg.RequestTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(r, cfg.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"data_store", cfg.DataStore,
			"auth_enabled", cfg.AuthEnabled(),
			"tracing_enabled", cfg.OtelEnabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	if err := st.close(shutdownCtx); err != nil {
		logger.Error("store close failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", "error", err)
	}
}
