package migrate

import (
	"context"
	"fmt"

	"github.com/jacmel/storefront-backend/pkg/config"
	"github.com/jacmel/storefront-backend/pkg/db"
	"github.com/jacmel/storefront-backend/pkg/logger"
)

// MaybeAutoRun applies pending migrations when the SQL backend is selected and the
// auto-migrate flag is on.
func MaybeAutoRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if client == nil || cfg.Storage.Backend != config.StorageBackendSQL || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "driver": client.Driver()})
	logg.Info(ctx, "running goose migrations (auto-run)")

	if err := Run(ctx, sqlDB, client.Driver(), "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
