package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-r remote document-store base URL
//	-d local SQLite DSN (file path or ":memory:")
//	-company company (tenant) identifier
//	-status-address local status API address in [host]:[port] format
//	-sync-schedule cron spec for the background trigger (e.g. "@every 15m")
//	-max-idle minimum idle time before a background sync (e.g. "4h")
//	-pending-threshold pending-operation count gate (0 disables)
//	-retry-backoff wait before retrying a failed cycle (e.g. "5m")
//	-request-timeout outbound request timeout (e.g. "30s")
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var (
		remoteBaseURL    string
		databaseDSN      string
		companyID        string
		statusAddress    string
		syncSchedule     string
		maxIdle          time.Duration
		pendingThreshold int
		retryBackoff     time.Duration
		requestTimeout   time.Duration
		logLevel         string
		jsonConfigPath   string
	)

	flag.StringVar(&remoteBaseURL, "r", "", "Remote document-store base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite DSN")
	flag.StringVar(&companyID, "company", "", "Company (tenant) identifier")
	flag.StringVar(&statusAddress, "status-address", "", "Status API address host:port")
	flag.StringVar(&syncSchedule, "sync-schedule", "", "Background sync cron spec")
	flag.DurationVar(&maxIdle, "max-idle", 0, "Minimum idle time before background sync (e.g. 4h)")
	flag.IntVar(&pendingThreshold, "pending-threshold", 0, "Pending-operation gate (0 disables)")
	flag.DurationVar(&retryBackoff, "retry-backoff", 0, "Failed-cycle retry backoff (e.g. 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g. 30s)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			CompanyID: companyID,
			LogLevel:  logLevel,
		},
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{StatusAddress: statusAddress},
		Workers: Workers{
			SyncSchedule:     syncSchedule,
			MaxIdle:          maxIdle,
			PendingThreshold: pendingThreshold,
			RetryBackoff:     retryBackoff,
		},
		JSONFilePath: jsonConfigPath,
	}
}
