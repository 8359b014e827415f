package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	ServerPort string

	// BackendURL is the base URL of the remote REST API that owns all
	// business logic and persistence.
	BackendURL string

	SessionSecret string
	SessionCookie string

	// RedisURL enables the Redis session store when set. Empty means the
	// in-memory store (single-instance deployments, tests).
	RedisURL string

	Timezone string

	// ReminderCron schedules the reminder sweep. ReminderToken is the
	// service token the sweep authenticates with; empty disables the sweep.
	ReminderCron  string
	ReminderToken string

	CORSAllowOrigin string

	BackendTimeout time.Duration
}

func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:8081"),
		SessionSecret:   getEnv("SESSION_SECRET", "changeme"),
		SessionCookie:   getEnv("SESSION_COOKIE", "rantevou_session"),
		RedisURL:        getEnv("REDIS_URL", ""),
		Timezone:        getEnv("TIMEZONE", "Europe/Athens"),
		ReminderCron:    getEnv("REMINDER_CRON", "@every 5m"),
		ReminderToken:   getEnv("REMINDER_TOKEN", ""),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", ""),
		BackendTimeout:  getDuration("BACKEND_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
