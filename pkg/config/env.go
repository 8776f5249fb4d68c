package config

// EnvPrefix is handed to envconfig. Fields resolve through their explicit envconfig tags.
const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	StorageBackendMemory = "memory"
	StorageBackendRedis  = "redis"
	StorageBackendSQL    = "sql"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

const (
	EnvAppEnv         = "STOREFRONT_APP_ENV"
	EnvPort           = "STOREFRONT_APP_PORT"
	EnvStorageBackend = "STOREFRONT_STORAGE_BACKEND"
	EnvDBDSN          = "STOREFRONT_DB_DSN"
	EnvDBDriver       = "STOREFRONT_DB_DRIVER"
	EnvDBHost         = "STOREFRONT_DB_HOST"
	EnvDBUser         = "STOREFRONT_DB_USER"
	EnvDBName         = "STOREFRONT_DB_NAME"
	EnvRedisURL       = "STOREFRONT_REDIS_URL"
	EnvRedisAddr      = "STOREFRONT_REDIS_ADDR"
	EnvDeliveryFee    = "STOREFRONT_DELIVERY_FEE"
	EnvChatBaseURL    = "STOREFRONT_CHAT_BASE_URL"
	EnvTimeZone       = "STOREFRONT_TIME_ZONE"
)

var dbPartsEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
