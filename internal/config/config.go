package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/SmartShelf_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	// StoreBackend selects where shelf records live: memory or postgres
	StoreBackend string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	SessionCacheSize int
	SessionTTL       time.Duration
	FeedbackLimit    int
	DefaultDeviceID  string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	defaultIdle, _ := time.ParseDuration(DefaultDBMaxConnIdleTime)
	defaultLifetime, _ := time.ParseDuration(DefaultDBMaxConnLifetime)
	defaultTTL, _ := time.ParseDuration(DefaultSessionTTL)

	cfg := &Config{
		APIKey:       getEnv("API_KEY", ""),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment:  getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:  getEnv("SERVICE_NAME", DefaultServiceName),
		Version:      getEnv("VERSION", DefaultVersion),
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", defaultIdle),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", defaultLifetime),

		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", defaultTTL),
		FeedbackLimit:    getEnvAsInt("FEEDBACK_LIMIT", DefaultFeedbackLimit),
		DefaultDeviceID:  getEnv("DEFAULT_DEVICE_ID", domain.DefaultDeviceID),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendPostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: expected %s or %s", cfg.StoreBackend, BackendMemory, BackendPostgres)
	}

	return cfg, nil
}

// UsesPostgres reports whether records are kept in PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.StoreBackend == BackendPostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration returns the default when the variable is unset or not a duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
