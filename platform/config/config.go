// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for the per-IP rate limiter.
type RateLimitConfig interface {
	GetRateLimitPerSecond() float64
	GetRateLimitBurst() int
}

// DecodeConfig provides settings for the NHTSA VIN decode client.
type DecodeConfig interface {
	GetNHTSABaseURL() string
	GetNHTSATimeout() time.Duration
	IsRecallLookupEnabled() bool
}

// PricingConfig provides settings for the external parts pricing API.
type PricingConfig interface {
	GetPricingBaseURL() string
	GetPricingUsername() string
	GetPricingAPIKey() string
	GetPricingTimeout() time.Duration
	IsPricingEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	RateLimitPerSecond float64
	RateLimitBurst     int
	NHTSABaseURL       string
	NHTSATimeout       time.Duration
	RecallLookup       bool
	PricingBaseURL     string
	PricingUsername    string
	PricingAPIKey      string
	PricingTimeout     time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitPerSecond() float64 { return c.RateLimitPerSecond }
func (c *Config) GetRateLimitBurst() int         { return c.RateLimitBurst }

// DecodeConfig implementation
func (c *Config) GetNHTSABaseURL() string        { return c.NHTSABaseURL }
func (c *Config) GetNHTSATimeout() time.Duration { return c.NHTSATimeout }
func (c *Config) IsRecallLookupEnabled() bool    { return c.RecallLookup }

// PricingConfig implementation
func (c *Config) GetPricingBaseURL() string        { return c.PricingBaseURL }
func (c *Config) GetPricingUsername() string       { return c.PricingUsername }
func (c *Config) GetPricingAPIKey() string         { return c.PricingAPIKey }
func (c *Config) GetPricingTimeout() time.Duration { return c.PricingTimeout }
func (c *Config) IsPricingEnabled() bool {
	return c.PricingUsername != "" && c.PricingAPIKey != ""
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitPerSecond: mustFloat(getEnv("RATE_LIMIT_PER_SECOND", "10")),
		RateLimitBurst:     mustInt(getEnv("RATE_LIMIT_BURST", "20")),
		NHTSABaseURL:       getEnv("NHTSA_BASE_URL", "https://vpic.nhtsa.dot.gov/api"),
		NHTSATimeout:       mustDuration(getEnv("NHTSA_TIMEOUT", "15s")),
		RecallLookup:       strings.EqualFold(getEnv("NHTSA_RECALL_LOOKUP", "false"), "true"),
		PricingBaseURL:     getEnv("PRICING_BASE_URL", "https://api.partstech.com"),
		PricingUsername:    getEnv("PRICING_USERNAME", ""),
		PricingAPIKey:      getEnv("PRICING_API_KEY", ""),
		PricingTimeout:     mustDuration(getEnv("PRICING_TIMEOUT", "30s")),
	}

	if cfg.NHTSABaseURL == "" {
		return nil, fmt.Errorf("NHTSA_BASE_URL cannot be empty")
	}
	if cfg.NHTSATimeout <= 0 {
		return nil, fmt.Errorf("NHTSA_TIMEOUT must be a positive duration")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
