package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Session       SessionConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Messaging     MessagingConfig
	Stats         StatsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GASCRM_APP_ENV" default:"dev"`
	Port         string `envconfig:"GASCRM_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GASCRM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GASCRM_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"GASCRM_CORS_ORIGINS" default:"*"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"GASCRM_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"GASCRM_DB_DSN"`

	MaxOpenConns    int           `envconfig:"GASCRM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GASCRM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GASCRM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GASCRM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsPostgres reports whether the configured driver targets Postgres.
func (d DBConfig) IsPostgres() bool {
	return strings.EqualFold(d.Driver, DriverPostgres)
}

func (d *DBConfig) ensureDSN() error {
	switch strings.ToLower(strings.TrimSpace(d.Driver)) {
	case DriverSQLite, "":
		d.Driver = DriverSQLite
		if d.DSN == "" {
			d.DSN = DefaultSQLitePath
		}
		return nil
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("GASCRM_DB_DSN is required when driver is %q", DriverPostgres)
		}
		return nil
	default:
		return fmt.Errorf("unsupported db driver %q", d.Driver)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"GASCRM_REDIS_URL" default:"redis://localhost:6379/0"`
	Password     string        `envconfig:"GASCRM_REDIS_PASSWORD"`
	DB           int           `envconfig:"GASCRM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GASCRM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GASCRM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GASCRM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GASCRM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GASCRM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig drives the signed session cookie. The secret has no fallback
// on purpose: a missing value must fail startup rather than ship a known key.
type SessionConfig struct {
	Secret     string        `envconfig:"GASCRM_SESSION_SECRET" required:"true"`
	Issuer     string        `envconfig:"GASCRM_SESSION_ISSUER" default:"gascrm"`
	TTL        time.Duration `envconfig:"GASCRM_SESSION_TTL" default:"24h"`
	CookieName string        `envconfig:"GASCRM_SESSION_COOKIE" default:"gascrm_session"`
	Secure     bool          `envconfig:"GASCRM_SESSION_SECURE" default:"false"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GASCRM_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GASCRM_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GASCRM_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GASCRM_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GASCRM_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"GASCRM_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit    int           `envconfig:"GASCRM_AUTH_RATE_LIMIT_LOGIN_IP" default:"20"`
	LoginEmailLimit int           `envconfig:"GASCRM_AUTH_RATE_LIMIT_LOGIN_EMAIL" default:"5"`
}

type MessagingConfig struct {
	HistoryLimit int `envconfig:"GASCRM_MESSAGING_HISTORY_LIMIT" default:"100"`
}

type StatsConfig struct {
	AlertLookaheadDays int `envconfig:"GASCRM_STATS_ALERT_LOOKAHEAD_DAYS" default:"5"`
}
