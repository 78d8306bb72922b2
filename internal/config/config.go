// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	LogFormat       string
	ContentFile     string
	AnalyticsDB     string
	AdminUsername   string
	AdminPassword   string
	OTLPEndpoint    string
	ServiceName     string
	ShutdownTimeout time.Duration
	// CleanupAfter is how long visit records are kept.
	CleanupAfter time.Duration
}

// Load reads the environment, filling defaults for anything unset.
func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", "8080"),
		GinMode:         os.Getenv("GIN_MODE"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "json"),
		ContentFile:     os.Getenv("CONTENT_FILE"),
		AnalyticsDB:     os.Getenv("ANALYTICS_DB"),
		AdminUsername:   os.Getenv("ADMIN_USERNAME"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		OTLPEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:     getenv("OTEL_SERVICE_NAME", "portfolio"),
		ShutdownTimeout: 5 * time.Second,
		CleanupAfter:    365 * 24 * time.Hour,
	}
	if d, ok := durationEnv("SHUTDOWN_TIMEOUT"); ok {
		cfg.ShutdownTimeout = d
	}
	if days, err := strconv.Atoi(os.Getenv("ANALYTICS_RETENTION_DAYS")); err == nil && days > 0 {
		cfg.CleanupAfter = time.Duration(days) * 24 * time.Hour
	}
	return cfg
}

// LoadEnvFile loads variables from a dotenv file without overriding ones already set.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// AnalyticsEnabled reports whether visit tracking and the admin area are on.
func (c Config) AnalyticsEnabled() bool {
	return c.AnalyticsDB != ""
}

// HumanLogs reports whether logs should use the console writer.
func (c Config) HumanLogs() bool {
	return strings.EqualFold(c.LogFormat, "console")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
