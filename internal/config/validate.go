package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.ProvisionCacheSize <= 0 {
		return fmt.Errorf("auth.provision_cache_size must be > 0 (got %d)", c.Auth.ProvisionCacheSize)
	}

	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *APIConfig) validate() error {
	if a.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", a.DefaultPageSize)
	}
	if a.MaxPageSize < a.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", a.MaxPageSize, a.DefaultPageSize)
	}
	return nil
}

// ClampLimit returns the page size to use for a requested limit:
// the default when none was asked for, capped at the maximum.
func (a APIConfig) ClampLimit(requested int) int {
	if requested <= 0 {
		return a.DefaultPageSize
	}
	if requested > a.MaxPageSize {
		return a.MaxPageSize
	}
	return requested
}
