package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Seed    SeedConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
}

type SessionConfig struct {
	// DurationSeconds is the inactivity countdown; Tick is the wall-clock
	// length of one countdown second, shortened in tests.
	DurationSeconds int
	Tick            time.Duration
	LoanDelay       time.Duration
}

type SeedConfig struct {
	// File points at a JSON roster; empty means the built-in demo roster.
	File string
	// DemoAccounts pads the roster with generated accounts.
	DemoAccounts int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Session: SessionConfig{
			DurationSeconds: getIntEnv("SESSION_DURATION_SECONDS", 600),
			Tick:            getDurationEnv("SESSION_TICK", time.Second),
			LoanDelay:       getDurationEnv("LOAN_APPROVAL_DELAY", 2*time.Second),
		},
		Seed: SeedConfig{
			File:         getEnv("SEED_FILE", ""),
			DemoAccounts: getIntEnv("DEMO_ACCOUNTS", 0),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
