package config

const (
	EnvPrefix = "GASCRM"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultSQLitePath = "gascrm.db"
)

// Environment variable names, shared with tests.
const (
	EnvAppEnv        = "GASCRM_APP_ENV"
	EnvPort          = "GASCRM_APP_PORT"
	EnvDBDriver      = "GASCRM_DB_DRIVER"
	EnvDBDSN         = "GASCRM_DB_DSN"
	EnvRedisURL      = "GASCRM_REDIS_URL"
	EnvSessionSecret = "GASCRM_SESSION_SECRET"
	EnvSessionTTL    = "GASCRM_SESSION_TTL"
)
