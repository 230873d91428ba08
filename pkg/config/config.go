package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// CatalogSource selects the product source: "static" or "postgres".
	CatalogSource string
	// CartStore selects the cart backend: "memory" or "redis".
	CartStore string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CartTTL       time.Duration

	PostgresHost string
	PostgresPort int
	PostgresUser string
	PostgresPass string
	PostgresDB   string

	// ConfirmClearGrace is how long the cart stays readable after an
	// order is placed before it is cleared.
	ConfirmClearGrace time.Duration
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		CatalogSource: getEnv("CATALOG_SOURCE", "static"),
		CartStore:     getEnv("CART_STORE", "memory"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CartTTL:       getEnvDuration("CART_TTL", 7*24*time.Hour),

		PostgresHost: getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvInt("POSTGRES_PORT", 5432),
		PostgresUser: getEnv("POSTGRES_USER", "stride"),
		PostgresPass: getEnv("POSTGRES_PASSWORD", "stridepassword"),
		PostgresDB:   getEnv("POSTGRES_DB", "stride_db"),

		ConfirmClearGrace: getEnvDuration("CONFIRM_CLEAR_GRACE", time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
