package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	Storage      StorageConfig
	DB           DBConfig
	Redis        RedisConfig
	Storefront   StorefrontConfig
	Media        MediaConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	if cfg.Storage.Backend == StorageBackendSQL {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	if cfg.Storage.Backend == StorageBackendRedis && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("either %s or %s is required for the redis backend", EnvRedisURL, EnvRedisAddr)
	}
	if err := cfg.Storefront.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" default:"dev"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"STOREFRONT_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the key-value backend that holds the menu, settings and carts.
type StorageConfig struct {
	Backend   string `envconfig:"STOREFRONT_STORAGE_BACKEND" default:"memory"`
	Namespace string `envconfig:"STOREFRONT_STORAGE_NAMESPACE" default:"jacmel"`
}

func (s StorageConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Backend)) {
	case StorageBackendMemory, StorageBackendRedis, StorageBackendSQL:
		return nil
	}
	return fmt.Errorf("%s must be one of %s, %s or %s", EnvStorageBackend, StorageBackendMemory, StorageBackendRedis, StorageBackendSQL)
}

type DBConfig struct {
	DSN    string `envconfig:"STOREFRONT_DB_DSN"`
	Driver string `envconfig:"STOREFRONT_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"STOREFRONT_DB_HOST"`
	Port     int    `envconfig:"STOREFRONT_DB_PORT" default:"5432"`
	User     string `envconfig:"STOREFRONT_DB_USER"`
	Password string `envconfig:"STOREFRONT_DB_PASSWORD"`
	Name     string `envconfig:"STOREFRONT_DB_NAME"`
	SSLMode  string `envconfig:"STOREFRONT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STOREFRONT_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"STOREFRONT_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver is sqlite.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DBDriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// StorefrontConfig carries the business defaults used until an admin saves settings.
type StorefrontConfig struct {
	BusinessName   string   `envconfig:"STOREFRONT_BUSINESS_NAME" default:"Bistro Jacmel"`
	ContactNumber  string   `envconfig:"STOREFRONT_CONTACT_NUMBER" default:"50937000000"`
	WelcomeMessage string   `envconfig:"STOREFRONT_WELCOME_MESSAGE" default:"Bienvenue! Découvrez nos saveurs locales."`
	DeliveryFee    string   `envconfig:"STOREFRONT_DELIVERY_FEE" default:"150"`
	Currency       string   `envconfig:"STOREFRONT_CURRENCY" default:"HTG"`
	ChatBaseURL    string   `envconfig:"STOREFRONT_CHAT_BASE_URL" default:"https://wa.me"`
	TimeZone       string   `envconfig:"STOREFRONT_TIME_ZONE" default:"America/Port-au-Prince"`
	City           string   `envconfig:"STOREFRONT_CITY" default:"Jacmel, Haïti"`
	AllowedOrigins []string `envconfig:"STOREFRONT_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// DeliveryFeeAmount parses the configured fee.
func (s StorefrontConfig) DeliveryFeeAmount() decimal.Decimal {
	fee, err := decimal.NewFromString(strings.TrimSpace(s.DeliveryFee))
	if err != nil {
		return decimal.Zero
	}
	return fee
}

// Location resolves the configured time zone, falling back to UTC.
func (s StorefrontConfig) Location() *time.Location {
	if strings.TrimSpace(s.TimeZone) == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s StorefrontConfig) validate() error {
	fee, err := decimal.NewFromString(strings.TrimSpace(s.DeliveryFee))
	if err != nil {
		return fmt.Errorf("%s must be numeric: %w", EnvDeliveryFee, err)
	}
	if fee.IsNegative() {
		return fmt.Errorf("%s must be non-negative", EnvDeliveryFee)
	}
	if _, err := url.ParseRequestURI(s.ChatBaseURL); err != nil {
		return fmt.Errorf("%s must be an absolute url: %w", EnvChatBaseURL, err)
	}
	return nil
}

type MediaConfig struct {
	MaxUploadBytes int64 `envconfig:"STOREFRONT_MEDIA_MAX_UPLOAD_BYTES" default:"2097152"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"STOREFRONT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required for the sqlite driver", EnvDBDSN)
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range dbPartsEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
