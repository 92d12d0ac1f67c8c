package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	Environment string
	Addr        string

	MaxBodyBytes int64
	IPAllowlist  []string

	RedisAddr             string
	RateLimitCapacity     int
	RateLimitRefillPerSec float64
}

// Load reads configuration from environment variables. Redis settings are
// optional: with no REDIS_ADDR the service runs without rate limiting.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:           getenv("APP_ENV", "development"),
		Addr:                  getenv("API_ADDR", ":8080"),
		MaxBodyBytes:          int64(getenvInt("API_MAX_BODY_BYTES", 1<<20)),
		IPAllowlist:           splitNonEmpty(os.Getenv("API_IP_ALLOWLIST")),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RateLimitCapacity:     getenvInt("API_RATE_LIMIT_CAPACITY", 20),
		RateLimitRefillPerSec: float64(getenvInt("API_RATE_LIMIT_REFILL_PER_SEC", 10)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("API_ADDR must not be empty")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("API_MAX_BODY_BYTES must be positive")
	}
	if c.RedisAddr != "" {
		if c.RateLimitCapacity <= 0 {
			return errors.New("API_RATE_LIMIT_CAPACITY must be positive when REDIS_ADDR is set")
		}
		if c.RateLimitRefillPerSec <= 0 {
			return errors.New("API_RATE_LIMIT_REFILL_PER_SEC must be positive when REDIS_ADDR is set")
		}
	}
	return nil
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
