package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported data stores
const (
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
)

// Config holds application configuration
type Config struct {
	Port           string
	ServiceName    string
	LogLevel       string
	RequestTimeout time.Duration
	QueryTimeout   time.Duration

	DataStore        string
	MongoURI         string
	DatabaseName     string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64
	SQLitePath       string
	SQLiteSeedFile   string

	OIDCIssuerURL string
	OIDCClientID  string

	OtelEnabled     bool
	OtelEndpoint    string
	OtelSampleRatio float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	port, err := Port("PORT", "8080")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           port,
		ServiceName:    String("SERVICE_NAME", "customer-logs"),
		LogLevel:       String("LOG_LEVEL", "info"),
		DataStore:      strings.ToLower(String("DATA_STORE", StoreMongo)),
		DatabaseName:   String("DATABASE_NAME", "opiniion_test"),
		SQLitePath:     String("SQLITE_PATH", "customer_logs.db"),
		SQLiteSeedFile: os.Getenv("SQLITE_SEED_FILE"),
		OIDCIssuerURL:  os.Getenv("OIDC_ISSUER_URL"),
		OIDCClientID:   os.Getenv("OIDC_CLIENT_ID"),
		OtelEndpoint:   String("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}

	if cfg.DataStore == StoreMongo {
		if cfg.MongoURI, err = RequiredString("ATLAS_CONNECTION"); err != nil {
			return nil, err
		}
	}

	if cfg.RequestTimeout, err = Duration("REQUEST_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.QueryTimeout, err = Duration("QUERY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	maxPool, err := Int("MONGO_MAX_POOL_SIZE", 20)
	if err != nil {
		return nil, err
	}
	minPool, err := Int("MONGO_MIN_POOL_SIZE", 0)
	if err != nil {
		return nil, err
	}
	if maxPool < 1 || minPool < 0 || minPool > maxPool {
		return nil, fmt.Errorf("MONGO_MIN_POOL_SIZE (%d) and MONGO_MAX_POOL_SIZE (%d) must satisfy 0 <= min <= max, max >= 1", minPool, maxPool)
	}
	cfg.MongoMaxPoolSize = uint64(maxPool)
	cfg.MongoMinPoolSize = uint64(minPool)

	if cfg.OtelEnabled, err = Bool("OTEL_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.OtelSampleRatio, err = Float("OTEL_SAMPLING_RATIO", 1); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	switch c.DataStore {
	case StoreMongo:
		if c.MongoURI == "" {
			return errors.New("ATLAS_CONNECTION is required when DATA_STORE=mongo")
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when DATA_STORE=sqlite")
		}
	default:
		return fmt.Errorf("DATA_STORE must be %q or %q (got %q)", StoreMongo, StoreSQLite, c.DataStore)
	}

	if (c.OIDCIssuerURL == "") != (c.OIDCClientID == "") {
		return errors.New("OIDC_ISSUER_URL and OIDC_CLIENT_ID must be set together")
	}
	if c.OtelSampleRatio < 0 || c.OtelSampleRatio > 1 {
		return fmt.Errorf("OTEL_SAMPLING_RATIO must be between 0 and 1 (got %v)", c.OtelSampleRatio)
	}
	if c.QueryTimeout <= 0 || c.RequestTimeout <= 0 {
		return errors.New("QUERY_TIMEOUT and REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// AuthEnabled reports whether bearer token verification is configured
func (c *Config) AuthEnabled() bool {
	return c.OIDCIssuerURL != ""
}

func String(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func RequiredString(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

func Port(key, fallback string) (string, error) {
	v := String(key, fallback)
	p, err := strconv.Atoi(v)
	if err != nil || p < 1 || p > 65535 {
		return "", fmt.Errorf("%s must be a valid TCP port (got %q)", key, v)
	}
	return v, nil
}

func Int(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got %q)", key, v)
	}
	return n, nil
}

func Float(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number (got %q)", key, v)
	}
	return f, nil
}

func Bool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean (got %q)", key, v)
	}
	return b, nil
}

// Duration accepts Go duration strings ("15s") or a bare number of seconds
func Duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration (got %q)", key, v)
	}
	return d, nil
}
