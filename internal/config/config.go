// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the API service.
type Config struct {
	Port               string
	DatabaseURL        string
	RedisURL           string
	SessionTTLHours    int // How long an issued session token stays valid
	StatsIntervalHours int // How often the stats cron job fires
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	sessionTTL := 24
	if s := os.Getenv("SESSION_TTL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SESSION_TTL_HOURS must be a positive integer, got %q", s)
		}
		sessionTTL = v
	}

	statsInterval := 6
	if s := os.Getenv("STATS_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("STATS_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		statsInterval = v
	}

	return &Config{
		Port:               port,
		DatabaseURL:        dbURL,
		RedisURL:           redisURL,
		SessionTTLHours:    sessionTTL,
		StatsIntervalHours: statsInterval,
	}, nil
}
