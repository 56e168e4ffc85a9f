package config

// Store backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "smart-shelf"
	DefaultVersion           = "dev"
	DefaultDBName            = "smartshelf"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = "5m"
	DefaultDBMaxConnLifetime = "30m"
	DefaultSessionCacheSize  = 1024
	DefaultSessionTTL        = "30m"
	DefaultFeedbackLimit     = 50
)
