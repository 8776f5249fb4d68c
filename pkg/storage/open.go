package storage

import (
	"context"
	"fmt"

	"github.com/jacmel/storefront-backend/pkg/config"
	"github.com/jacmel/storefront-backend/pkg/db"
	"github.com/jacmel/storefront-backend/pkg/logger"
	"github.com/jacmel/storefront-backend/pkg/migrate"
	"github.com/jacmel/storefront-backend/pkg/redis"
	"go.uber.org/multierr"
)

// Open builds the backend selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger) (Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendRedis:
		client, err := redis.New(ctx, cfg.Redis, cfg.Storage.Namespace, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap redis: %w", err)
		}
		return NewRedisStore(client), nil

	case config.StorageBackendSQL:
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap database: %w", err)
		}
		if err := migrate.MaybeAutoRun(ctx, cfg, logg, client); err != nil {
			return nil, multierr.Append(fmt.Errorf("migrate database: %w", err), client.Close())
		}
		return NewSQLStore(client), nil

	case config.StorageBackendMemory, "":
		if logg != nil {
			logg.Warn(ctx, "using in-memory storage; carts and menu edits are lost on restart")
		}
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
