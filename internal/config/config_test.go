package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR",
		"LTV_SERVICE_NAMESPACE",
		"LTV_SERVICE_SET",
		"LTV_SERVICE_HOSTS",
		"LTV_SERVICE_TIMEOUT",
		"LTV_SERVICE_CACHE_ADDR",
		"LTV_SERVICE_CACHE_PASS",
		"LTV_SERVICE_CACHE_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "test", cfg.Namespace)
	assert.Equal(t, "customers", cfg.Set)
	assert.Equal(t, []string{"127.0.0.1:3000"}, cfg.Hosts)
	assert.Equal(t, time.Second, cfg.ConnectTimeout)
	assert.Empty(t, cfg.CacheAddr)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LTV_SERVICE_NAMESPACE", "prod")
	t.Setenv("LTV_SERVICE_SET", "ltv_customers")
	t.Setenv("LTV_SERVICE_HOSTS", "10.0.0.1:3000, 10.0.0.2:3100")
	t.Setenv("LTV_SERVICE_TIMEOUT", "250")
	t.Setenv("LTV_SERVICE_CACHE_ADDR", "cache:6379")

	cfg := Load()

	assert.Equal(t, "prod", cfg.Namespace)
	assert.Equal(t, "ltv_customers", cfg.Set)
	assert.Equal(t, []string{"10.0.0.1:3000", "10.0.0.2:3100"}, cfg.Hosts)
	assert.Equal(t, 250*time.Millisecond, cfg.ConnectTimeout)
	assert.Equal(t, "cache:6379", cfg.CacheAddr)
}

func TestLoadIgnoresUnparsableTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("LTV_SERVICE_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, time.Second, cfg.ConnectTimeout)
}
