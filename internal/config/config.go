package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the mesasync
// daemon. It is populated by merging values from command-line flags,
// environment variables, and an optional JSON file, in that precedence order.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and logging settings.
	App App `envPrefix:"APP_"`

	// Remote holds the remote document-store endpoint settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local status API settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background sync trigger settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of flags and environment values when set.
	// Populated via the CONFIG env variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds identity and logging settings.
type App struct {
	// CompanyID is the tenant identifier under which all remote
	// collections are nested.
	// Env: APP_COMPANY_ID
	CompanyID string `env:"COMPANY_ID" json:"company_id"`

	// Login and Password authenticate the daemon against the remote
	// store when no cached token is available.
	// Env: APP_LOGIN / APP_PASSWORD
	Login    string `env:"LOGIN" json:"login"`
	Password string `env:"PASSWORD" json:"password"`

	// Token is an optional pre-issued bearer token. When set, the daemon
	// skips the credential login.
	// Env: APP_TOKEN
	Token string `env:"TOKEN" json:"token"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`
}

// Remote holds the remote document-store endpoint settings.
type Remote struct {
	// BaseURL is the HTTP endpoint of the remote document store.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DB holds the embedded database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or ":memory:".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// Server holds the local status API settings.
type Server struct {
	// StatusAddress is the TCP address of the local status HTTP API in
	// "host:port" format. Empty disables the API.
	// Env: SERVER_STATUS_ADDRESS
	StatusAddress string `env:"STATUS_ADDRESS" json:"status_address"`
}

// Workers holds background sync trigger settings.
type Workers struct {
	// SyncSchedule is the cron spec on which the background trigger
	// evaluates the sync gate (e.g. "@every 15m").
	// Env: WORKERS_SYNC_SCHEDULE
	SyncSchedule string `env:"SYNC_SCHEDULE" json:"sync_schedule"`

	// MaxIdle is the minimum elapsed time since the last completed cycle
	// before a background sync may run.
	// Env: WORKERS_MAX_IDLE
	MaxIdle time.Duration `env:"MAX_IDLE" json:"max_idle"`

	// PendingThreshold is the minimum number of locally queued operations
	// required before a background sync runs. Zero disables the check.
	// Env: WORKERS_PENDING_THRESHOLD
	PendingThreshold int `env:"PENDING_THRESHOLD" json:"pending_threshold"`

	// RetryBackoff is the wait before re-attempting a failed cycle.
	// Env: WORKERS_RETRY_BACKOFF
	RetryBackoff time.Duration `env:"RETRY_BACKOFF" json:"retry_backoff"`
}

const (
	defaultRequestTimeout = 30 * time.Second
	defaultSyncSchedule   = "@every 15m"
	defaultMaxIdle        = 4 * time.Hour
	defaultRetryBackoff   = 5 * time.Minute
	defaultLogLevel       = "info"
)

// applyDefaults fills unset fields with production defaults after merging.
func (c *StructuredConfig) applyDefaults() {
	if c.Remote.RequestTimeout <= 0 {
		c.Remote.RequestTimeout = defaultRequestTimeout
	}
	if c.Workers.SyncSchedule == "" {
		c.Workers.SyncSchedule = defaultSyncSchedule
	}
	if c.Workers.MaxIdle <= 0 {
		c.Workers.MaxIdle = defaultMaxIdle
	}
	if c.Workers.RetryBackoff <= 0 {
		c.Workers.RetryBackoff = defaultRetryBackoff
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = defaultLogLevel
	}
}

// GetConfig builds the daemon configuration from flags, environment and the
// optional JSON file, applies defaults and validates the result.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}
