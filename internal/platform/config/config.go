package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	JWTSecret      string
	Environment    string
	SessionFile    string
	SessionTTL     time.Duration
	SeedDemoData   bool
	DemoPassword   string
	MaxBodyBytes   int64
	MetricsEnabled bool
}

func Load() Config {
	// Missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		Environment:    getEnv("APP_ENV", "development"),
		SessionFile:    getEnv("SESSION_FILE", "ams_session.json"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 12*time.Hour),
		SeedDemoData:   getEnvBool("SEED_DEMO_DATA", true),
		DemoPassword:   getEnv("DEMO_PASSWORD", "ChangeMe123!"),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" || c.JWTSecret == "dev-secret" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.SeedDemoData && c.DemoPassword == "ChangeMe123!" {
			return fmt.Errorf("DEMO_PASSWORD must be changed or SEED_DEMO_DATA disabled in production")
		}
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}
