package config

const EnvPrefix = "OPUSCLIP"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

const (
	EnvAppEnv             = "OPUSCLIP_APP_ENV"
	EnvPort               = "OPUSCLIP_APP_PORT"
	EnvLogLevel           = "OPUSCLIP_LOG_LEVEL"
	EnvStorageBackend     = "OPUSCLIP_STORAGE_BACKEND"
	EnvStorageFilePath    = "OPUSCLIP_STORAGE_FILE_PATH"
	EnvDBDSN              = "OPUSCLIP_DB_DSN"
	EnvRedisURL           = "OPUSCLIP_REDIS_URL"
	EnvRedisAddr          = "OPUSCLIP_REDIS_ADDR"
	EnvLatencyScale       = "OPUSCLIP_LATENCY_SCALE"
	EnvOnboardingGate     = "OPUSCLIP_ONBOARDING_GATE"
	EnvAnalyticsMaxEvents = "OPUSCLIP_ANALYTICS_MAX_EVENTS"
)
