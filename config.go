package main

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the storefront.
type Config struct {
	Port string
	Env  string
	// NthOrder is the threshold for automatic coupon issuance: every
	// Nth completed order mints a new discount code.
	NthOrder int
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("APP_ENV", "development"),
	}

	nth := getEnv("NTH_ORDER", "3")
	n, err := strconv.Atoi(nth)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("NTH_ORDER must be a positive integer, got %q", nth)
	}
	cfg.NthOrder = n

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
