package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "API_ADDR", "API_MAX_BODY_BYTES", "API_IP_ALLOWLIST", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Empty(t, cfg.IPAllowlist)
	require.Empty(t, cfg.RedisAddr)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_ADDR", ":9090")
	t.Setenv("API_MAX_BODY_BYTES", "2048")
	t.Setenv("API_IP_ALLOWLIST", "10.0.0.0/8, 192.168.1.0/24")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("API_RATE_LIMIT_CAPACITY", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, int64(2048), cfg.MaxBodyBytes)
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.0/24"}, cfg.IPAllowlist)
	require.Equal(t, 5, cfg.RateLimitCapacity)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Addr: ":8080", MaxBodyBytes: 1}
	require.NoError(t, cfg.Validate())

	cfg.Addr = ""
	require.Error(t, cfg.Validate())

	cfg = &Config{Addr: ":8080", MaxBodyBytes: 0}
	require.Error(t, cfg.Validate())

	cfg = &Config{Addr: ":8080", MaxBodyBytes: 1, RedisAddr: "localhost:6379"}
	require.Error(t, cfg.Validate()) // rate limit knobs required with redis

	cfg.RateLimitCapacity = 10
	cfg.RateLimitRefillPerSec = 5
	require.NoError(t, cfg.Validate())
}
