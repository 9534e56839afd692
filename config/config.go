package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported EVENTS_LOCALE values.
var locales = []string{"en", "es"}

// Config holds the settings of both binaries. Client and mock API fields are
// read together; each binary uses its own subset.
type Config struct {
	Environment string
	LogLevel    string

	// eventsctl
	APIURL         string
	RequestTimeout time.Duration
	Locale         string
	SessionFile    string

	// events-mockapi
	Port               string
	DBUrl              string
	JWTSecret          string
	JWTExpiry          time.Duration
	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := getenvDefault("GO_ENV", "development")

	// In production the environment is the only source.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	requestTimeout, err := getenvDuration("EVENTS_REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	jwtExpiry, err := getenvDuration("JWT_EXPIRY", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:        env,
		LogLevel:           strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		APIURL:             strings.TrimRight(getenvDefault("EVENTS_API_URL", "http://localhost:8080"), "/"),
		RequestTimeout:     requestTimeout,
		Locale:             strings.ToLower(getenvDefault("EVENTS_LOCALE", "en")),
		SessionFile:        getenvDefault("EVENTS_SESSION_FILE", defaultSessionFile()),
		Port:               getenvDefault("PORT", "8080"),
		DBUrl:              strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:          getenvDefault("JWT_SECRET", "dev-secret"),
		JWTExpiry:          jwtExpiry,
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings neither binary can run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid EVENTS_API_URL: %q", c.APIURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("EVENTS_REQUEST_TIMEOUT must be > 0")
	}
	if !isLocale(c.Locale) {
		return fmt.Errorf("unsupported EVENTS_LOCALE: %s (want one of %s)", c.Locale, strings.Join(locales, ", "))
	}
	if c.JWTExpiry <= 0 {
		return errors.New("JWT_EXPIRY must be > 0")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s", c.LogLevel)
	}
	return nil
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool { return c.Environment == "production" }

func isLocale(s string) bool {
	for _, l := range locales {
		if l == s {
			return true
		}
	}
	return false
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "session.yaml")
	}
	return filepath.Join(dir, "eventsportal", "session.yaml")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

// getenvDuration returns fallback when key is unset or blank and an error when
// the value is not a Go duration such as "10s".
func getenvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
