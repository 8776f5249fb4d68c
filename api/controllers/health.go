package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/jacmel/storefront-backend/api/responses"
	"github.com/jacmel/storefront-backend/pkg/config"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/logger"
)

const envHeader = "X-Storefront-Env"

// Pinger is the readiness probe surface of the storage backend.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the storage backend answers.
func HealthReady(cfg *config.Config, logg *logger.Logger, store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage unavailable").
					WithDetails(map[string]any{"backend": cfg.Storage.Backend}))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready", "storage": cfg.Storage.Backend})
	}
}
