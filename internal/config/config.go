package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Aerospike
	Namespace      string
	Set            string
	Hosts          []string
	ConnectTimeout time.Duration

	// LTV read cache; disabled when CacheAddr is empty
	CacheAddr string
	CachePass string
	CacheTTL  time.Duration
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		Namespace:      getEnv("LTV_SERVICE_NAMESPACE", "test"),
		Set:            getEnv("LTV_SERVICE_SET", "customers"),
		Hosts:          getEnvSlice("LTV_SERVICE_HOSTS", []string{"127.0.0.1:3000"}),
		ConnectTimeout: time.Duration(getEnvInt("LTV_SERVICE_TIMEOUT", 1000)) * time.Millisecond,

		CacheAddr: getEnv("LTV_SERVICE_CACHE_ADDR", ""),
		CachePass: getEnv("LTV_SERVICE_CACHE_PASS", ""),
		CacheTTL:  time.Duration(getEnvInt("LTV_SERVICE_CACHE_TTL", 60)) * time.Second,
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func getEnvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
