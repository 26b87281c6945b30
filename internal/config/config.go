// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server and business defaults.
type Config struct {
	HTTPAddr   string
	VATRate    float64
	Currency   string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func floatenv(key string, def float64) float64 {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func durenvh(key string, defHours int) time.Duration {
	h := atoienv(key, defHours)
	return time.Duration(h) * time.Hour
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:   getenv("APP_PORT", "8080"),
		VATRate:    floatenv("VAT_RATE", 0.16),
		Currency:   getenv("CURRENCY", "EUR"),
		JWTSecret:  getenv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:   durenvh("TOKEN_TTL_HOURS", 24),
		BcryptCost: atoienv("BCRYPT_COST", 10),
	}
}
