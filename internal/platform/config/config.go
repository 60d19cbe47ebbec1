package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr                 string
	Environment          string
	JWTSecret            string
	SessionTTL           time.Duration
	FixturesPath         string
	MaxBodyBytes         int64
	RateLimitPerMinute   int
	SimulatorsEnabled    bool
	NotificationInterval time.Duration
	ActivityInterval     time.Duration
	MetricsEnabled       bool
}

func Load() Config {
	return Config{
		Addr:                 getEnv("APP_ADDR", ":8080"),
		Environment:          getEnv("APP_ENV", "development"),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		SessionTTL:           getEnvDuration("SESSION_TTL", 12*time.Hour),
		FixturesPath:         getEnv("FIXTURES_PATH", ""),
		MaxBodyBytes:         int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:   getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		SimulatorsEnabled:    getEnvBool("SIMULATORS_ENABLED", true),
		NotificationInterval: getEnvDuration("NOTIFICATION_INTERVAL", 30*time.Second),
		ActivityInterval:     getEnvDuration("ACTIVITY_INTERVAL", 15*time.Second),
		MetricsEnabled:       getEnvBool("METRICS_ENABLED", true),
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
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.SimulatorsEnabled {
		if c.NotificationInterval <= 0 {
			return fmt.Errorf("NOTIFICATION_INTERVAL must be positive when simulators are enabled")
		}
		if c.ActivityInterval <= 0 {
			return fmt.Errorf("ACTIVITY_INTERVAL must be positive when simulators are enabled")
		}
	}
	return nil
}
