package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Storage.Backend != StorageBackendMemory {
		t.Fatalf("expected memory backend by default, got %q", cfg.Storage.Backend)
	}
	if cfg.Storefront.BusinessName != "Bistro Jacmel" {
		t.Fatalf("unexpected business name %q", cfg.Storefront.BusinessName)
	}
	if !cfg.Storefront.DeliveryFeeAmount().Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected delivery fee 150, got %s", cfg.Storefront.DeliveryFeeAmount())
	}
	if cfg.Media.MaxUploadBytes != 2*1024*1024 {
		t.Fatalf("expected 2MiB upload limit, got %d", cfg.Media.MaxUploadBytes)
	}
}

func TestLoad_SQLBackendBuildsDSN(t *testing.T) {
	t.Setenv(EnvStorageBackend, StorageBackendSQL)
	t.Setenv(EnvDBHost, "localhost")
	t.Setenv(EnvDBUser, "jacmel")
	t.Setenv(EnvDBName, "storefront")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DB.DSN != "postgres://jacmel@localhost:5432/storefront?sslmode=disable" {
		t.Fatalf("unexpected dsn %q", cfg.DB.DSN)
	}
}

func TestLoad_SQLBackendMissingParts(t *testing.T) {
	t.Setenv(EnvStorageBackend, StorageBackendSQL)
	t.Setenv(EnvDBHost, "localhost")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing db parts to return an error")
	}
}

func TestLoad_RedisBackendRequiresAddress(t *testing.T) {
	t.Setenv(EnvStorageBackend, StorageBackendRedis)

	if _, err := Load(); err == nil {
		t.Fatal("expected redis backend without url to fail")
	}

	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	if _, err := Load(); err != nil {
		t.Fatalf("unexpected error with redis url: %v", err)
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv(EnvStorageBackend, "mongo")
	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend to fail")
	}
}

func TestLoad_RejectsNegativeDeliveryFee(t *testing.T) {
	t.Setenv(EnvDeliveryFee, "-10")
	if _, err := Load(); err == nil {
		t.Fatal("expected negative delivery fee to fail")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}

func TestStorefrontLocationFallback(t *testing.T) {
	cfg := StorefrontConfig{TimeZone: "Not/AZone"}
	if cfg.Location() != time.UTC {
		t.Fatalf("expected UTC fallback for invalid zone")
	}
}
