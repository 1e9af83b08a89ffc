package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, read from the environment
// (a .env file is loaded by godotenv/autoload in main).
type Config struct {
	Port             string
	JWTSecret        string
	ClientURL        string
	LogLevel         string
	RedisURL         string
	DiscountCacheTTL time.Duration
	PaymentGateway   string
	MercadoPagoToken string
	PaymentDelay     time.Duration
	TaxRate          float64
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		ClientURL:        getEnv("CLIENT_URL", "http://localhost:3000"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		RedisURL:         os.Getenv("REDIS_URL"),
		DiscountCacheTTL: getEnvAsDuration("DISCOUNT_CACHE_TTL", time.Minute),
		PaymentGateway:   strings.ToLower(getEnv("PAYMENT_GATEWAY", "simulator")),
		MercadoPagoToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentDelay:     getEnvAsDuration("PAYMENT_DELAY", 2*time.Second),
		TaxRate:          getEnvAsFloat("TAX_RATE", 0.08),
	}
}

// ErrMissingJWTSecret is returned by Validate when JWT_SECRET is not set.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Validate reports settings the process cannot run without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
