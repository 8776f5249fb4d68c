package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jacmel/storefront-backend/api/routes"
	"github.com/jacmel/storefront-backend/internal/cart"
	"github.com/jacmel/storefront-backend/internal/catalog"
	"github.com/jacmel/storefront-backend/internal/checkout"
	"github.com/jacmel/storefront-backend/internal/media"
	"github.com/jacmel/storefront-backend/internal/settings"
	"github.com/jacmel/storefront-backend/pkg/config"
	"github.com/jacmel/storefront-backend/pkg/logger"
	"github.com/jacmel/storefront-backend/pkg/metrics"
	"github.com/jacmel/storefront-backend/pkg/storage"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
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
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg, logg)
	requireResource(ctx, logg, "storage", err)
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing storage", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewStorefrontMetrics(registry)

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Repo:   catalog.NewRepository(store),
		Logger: logg,
	})
	requireResource(ctx, logg, "catalog service", err)

	settingsService, err := settings.NewService(settings.NewRepository(store, settings.Defaults(cfg.Storefront)), logg)
	requireResource(ctx, logg, "settings service", err)

	cartService, err := cart.NewService(cart.ServiceParams{
		Repo:    cart.NewRepository(store),
		Menu:    catalogService,
		Logger:  logg,
		Metrics: recorder,
	})
	requireResource(ctx, logg, "cart service", err)

	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Carts:       cartService,
		Settings:    settingsService,
		ChatBaseURL: cfg.Storefront.ChatBaseURL,
		Currency:    cfg.Storefront.Currency,
		City:        cfg.Storefront.City,
		Location:    cfg.Storefront.Location(),
		Logger:      logg,
		Metrics:     recorder,
	})
	requireResource(ctx, logg, "checkout service", err)

	mediaService := media.NewService(cfg.Media.MaxUploadBytes, logg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"storage": cfg.Storage.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, store, registry, recorder,
			catalogService, settingsService, cartService, checkoutService, mediaService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, "resource not working: "+resource, err)
	os.Exit(1)
}
