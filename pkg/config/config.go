package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	Storage    StorageConfig
	DB         DBConfig
	Redis      RedisConfig
	Latency    LatencyConfig
	Editor     EditorConfig
	Transition TransitionConfig
	Onboarding OnboardingConfig
	Analytics  AnalyticsConfig
	Uploads    UploadsConfig
	Exports    ExportsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"OPUSCLIP_APP_ENV" required:"true"`
	Port         string `envconfig:"OPUSCLIP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"OPUSCLIP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"OPUSCLIP_LOG_WARN_STACK" default:"false"`
	EnableDebug  bool   `envconfig:"OPUSCLIP_ENABLE_DEBUG_ROUTES" default:"true"`

	CORSOrigins     []string      `envconfig:"OPUSCLIP_CORS_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"OPUSCLIP_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the backend that stands in for browser-local storage.
type StorageConfig struct {
	Backend   string `envconfig:"OPUSCLIP_STORAGE_BACKEND" default:"file"`
	FilePath  string `envconfig:"OPUSCLIP_STORAGE_FILE_PATH" default:"./data/opusclip-storage.json"`
	Namespace string `envconfig:"OPUSCLIP_STORAGE_NAMESPACE" default:"oc"`
}

type DBConfig struct {
	DSN    string `envconfig:"OPUSCLIP_DB_DSN"`
	Driver string `envconfig:"OPUSCLIP_DB_DRIVER" default:"sqlite"`

	AutoMigrate     bool          `envconfig:"OPUSCLIP_AUTO_MIGRATE" default:"true"`
	MaxOpenConns    int           `envconfig:"OPUSCLIP_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"OPUSCLIP_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"OPUSCLIP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"OPUSCLIP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"OPUSCLIP_REDIS_URL"`
	Address      string        `envconfig:"OPUSCLIP_REDIS_ADDR"`
	Password     string        `envconfig:"OPUSCLIP_REDIS_PASSWORD"`
	DB           int           `envconfig:"OPUSCLIP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"OPUSCLIP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"OPUSCLIP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"OPUSCLIP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"OPUSCLIP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"OPUSCLIP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// LatencyConfig scales the artificial round-trip delay of every data access call.
// A scale of 0 disables the delay.
type LatencyConfig struct {
	Scale float64 `envconfig:"OPUSCLIP_LATENCY_SCALE" default:"1"`
}

type EditorConfig struct {
	SaveDelay time.Duration `envconfig:"OPUSCLIP_EDITOR_SAVE_DELAY" default:"500ms"`
	SeekStep  time.Duration `envconfig:"OPUSCLIP_EDITOR_SEEK_STEP" default:"10s"`
}

type TransitionConfig struct {
	Window   time.Duration `envconfig:"OPUSCLIP_TRANSITION_WINDOW" default:"300ms"`
	NavDelay time.Duration `envconfig:"OPUSCLIP_TRANSITION_NAV_DELAY" default:"50ms"`
}

type OnboardingConfig struct {
	GateEnabled       bool          `envconfig:"OPUSCLIP_ONBOARDING_GATE" default:"true"`
	CookieName        string        `envconfig:"OPUSCLIP_ONBOARDING_COOKIE" default:"onboardingCompleted"`
	CookieMaxAge      time.Duration `envconfig:"OPUSCLIP_ONBOARDING_COOKIE_MAX_AGE" default:"8760h"`
	ProtectedPrefixes []string      `envconfig:"OPUSCLIP_ONBOARDING_PROTECTED" default:"/dashboard,/editor,/projects"`
}

type AnalyticsConfig struct {
	MaxEvents int `envconfig:"OPUSCLIP_ANALYTICS_MAX_EVENTS" default:"100"`
}

type UploadsConfig struct {
	ProcessingDelay time.Duration `envconfig:"OPUSCLIP_UPLOAD_DELAY" default:"1500ms"`
}

type ExportsConfig struct {
	RenderDelay time.Duration `envconfig:"OPUSCLIP_EXPORT_DELAY" default:"3s"`
}

func (c *Config) validate() error {
	backend := strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch backend {
	case StorageMemory, StorageFile:
	case StorageSQLite, StoragePostgres:
		if c.DB.DSN == "" && backend == StoragePostgres {
			return fmt.Errorf("%s is required for the %s storage backend", EnvDBDSN, backend)
		}
		if c.DB.DSN == "" {
			c.DB.DSN = "file:opusclip.db?cache=shared"
		}
		c.DB.Driver = backend
	case StorageRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("either %s or %s is required for the redis storage backend", EnvRedisURL, EnvRedisAddr)
		}
	default:
		return fmt.Errorf("unsupported %s %q", EnvStorageBackend, c.Storage.Backend)
	}
	c.Storage.Backend = backend

	if c.Latency.Scale < 0 {
		return fmt.Errorf("%s must be >= 0", EnvLatencyScale)
	}
	if c.Analytics.MaxEvents <= 0 {
		return fmt.Errorf("%s must be > 0", EnvAnalyticsMaxEvents)
	}
	return nil
}
