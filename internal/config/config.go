package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultJWTTTL           = "24h"
	defaultJobInterval      = "24h"
	defaultRetentionDays    = "90"
	defaultLogLevel         = "info"
	defaultFollowUpReminder = "true"
)

// Config holds runtime configuration resolved from the environment.
type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	JobInterval              time.Duration
	NotificationRetentionDay int
	FollowUpRemindersEnabled bool

	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.JobInterval, err = parseDurationEnv("JOB_INTERVAL", defaultJobInterval)
	if err != nil {
		return nil, err
	}

	cfg.NotificationRetentionDay, err = parseIntEnv("NOTIFICATION_RETENTION_DAYS", defaultRetentionDays)
	if err != nil {
		return nil, err
	}

	cfg.FollowUpRemindersEnabled, err = parseBoolEnv("FOLLOWUP_REMINDERS_ENABLED", defaultFollowUpReminder)
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	v := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseIntEnv(key, fallback string) (int, error) {
	v := getEnv(key, fallback)
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseBoolEnv(key, fallback string) (bool, error) {
	v := getEnv(key, fallback)
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
