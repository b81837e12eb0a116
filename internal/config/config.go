package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port          string
	DatabaseURL   string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	UserCacheTTL time.Duration

	RateLimitWindow time.Duration
	RateLimitMax    int
}

// Load reads configuration from the environment. DATABASE_URL and JWT_SECRET
// have no sensible defaults and are required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            GetEnvAsString("PORT", "8000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisHost:       GetEnvAsString("REDIS_HOST", "localhost"),
		RedisPort:       GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         GetEnvAsInt("REDIS_DB", 0),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenTTL:  GetEnvAsDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: GetEnvAsDuration("REFRESH_TOKEN_TTL", 168*time.Hour),
		UserCacheTTL:    GetEnvAsDuration("USER_CACHE_TTL", 900*time.Second),
		RateLimitWindow: GetEnvAsDuration("RATE_LIMIT_WINDOW", 60*time.Second),
		RateLimitMax:    GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 10),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// RedisAddr returns the host:port pair for the Redis client.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
