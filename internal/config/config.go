package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Gateway  GatewayConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
}

type GatewayConfig struct {
	// BaseURL of the API gateway fronting all backend services,
	// e.g. "http://localhost:8080/api".
	BaseURL     string
	HTTPTimeout time.Duration
	// BreakerFailureThreshold is the number of consecutive transport
	// failures that trips the outbound circuit breaker.
	BreakerFailureThreshold int
}

type RedisConfig struct {
	// Addr of the redis instance backing the catalog cache.
	// Empty disables caching entirely.
	Addr            string
	CatalogCacheTTL time.Duration
}

type CheckoutConfig struct {
	// LogPath is the SQLite file for the checkout audit log.
	// Empty disables persistence.
	LogPath string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Gateway: GatewayConfig{
			BaseURL:                 getEnv("GATEWAY_BASE_URL", "http://localhost:8080/api"),
			HTTPTimeout:             getEnvDuration("GATEWAY_HTTP_TIMEOUT", 10*time.Second),
			BreakerFailureThreshold: getEnvInt("GATEWAY_BREAKER_FAILURES", 5),
		},
		Redis: RedisConfig{
			Addr:            getEnv("REDIS_ADDR", ""),
			CatalogCacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		},
		Checkout: CheckoutConfig{
			LogPath: getEnv("CHECKOUT_LOG_PATH", ""),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
