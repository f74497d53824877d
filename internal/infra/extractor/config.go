// Package extractor provides article body text extraction from web pages.
// Two implementations share the same contract: a goquery-based heuristic
// tuned for common editorial page layouts (the default) and a Mozilla
// Readability port. Both are best-effort; every failure is recoverable and
// the caller falls back to the feed summary.
package extractor

import (
	"fmt"
	"time"

	pkgconfig "github.com/FAFFA-GOLD/ai-news-batch/pkg/config"
)

// Extractor type names accepted by EXTRACTOR_TYPE.
const (
	TypeHeuristic   = "heuristic"
	TypeReadability = "readability"
)

// Config holds the configuration for content extraction.
// The length threshold and fetch timeout are tuning knobs with safe
// defaults, not hardcoded values.
type Config struct {
	// Type selects the extraction implementation: "heuristic" or
	// "readability". Default: heuristic.
	Type string

	// Timeout is the maximum duration of one article page fetch.
	// One unresponsive site must not stall the whole run. Default: 10s.
	Timeout time.Duration

	// MinChars is the minimum extracted text length, in characters (runes),
	// for a candidate element to be accepted. Shorter candidates are usually
	// navigation or sidebar chrome. Default: 200.
	MinChars int

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Larger responses are rejected. Default: 10 MiB.
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Each redirect target is re-validated. Default: 5.
	MaxRedirects int

	// RatePerSecond limits outbound article fetches across the run.
	// Zero or negative disables the limiter. Default: 2.
	RatePerSecond float64

	// DenyPrivateIPs blocks URLs that resolve to private, loopback or
	// link-local addresses. Should stay enabled in production. Default: true.
	DenyPrivateIPs bool
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		Type:           TypeHeuristic,
		Timeout:        10 * time.Second,
		MinChars:       200,
		MaxBodySize:    10 * 1024 * 1024,
		MaxRedirects:   5,
		RatePerSecond:  2,
		DenyPrivateIPs: true,
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Type != TypeHeuristic && c.Type != TypeReadability {
		return fmt.Errorf("extractor type must be %q or %q, got %q", TypeHeuristic, TypeReadability, c.Type)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.MinChars < 0 {
		return fmt.Errorf("min chars must be non-negative, got %d", c.MinChars)
	}
	if c.MaxBodySize < 1024 {
		return fmt.Errorf("max body size must be at least 1KB, got %d", c.MaxBodySize)
	}
	if c.MaxRedirects < 0 {
		return fmt.Errorf("max redirects must be non-negative, got %d", c.MaxRedirects)
	}
	return nil
}

// LoadConfigFromEnv loads the extraction configuration from environment
// variables, falling back to defaults for unset or invalid values.
//
// Environment variables:
//   - EXTRACTOR_TYPE: "heuristic" or "readability" (default: heuristic)
//   - EXTRACT_TIMEOUT: duration string, e.g. "10s"
//   - EXTRACT_MIN_CHARS: integer
//   - EXTRACT_MAX_BODY_SIZE: integer in bytes
//   - EXTRACT_RATE_PER_SECOND: float
//   - EXTRACT_DENY_PRIVATE_IPS: boolean
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.Type = pkgconfig.GetEnvString("EXTRACTOR_TYPE", cfg.Type)
	cfg.Timeout = pkgconfig.GetEnvDuration("EXTRACT_TIMEOUT", cfg.Timeout)
	cfg.MinChars = pkgconfig.GetEnvInt("EXTRACT_MIN_CHARS", cfg.MinChars)
	cfg.MaxBodySize = int64(pkgconfig.GetEnvInt("EXTRACT_MAX_BODY_SIZE", int(cfg.MaxBodySize)))
	cfg.MaxRedirects = pkgconfig.GetEnvInt("EXTRACT_MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.RatePerSecond = pkgconfig.GetEnvFloat("EXTRACT_RATE_PER_SECOND", cfg.RatePerSecond)
	cfg.DenyPrivateIPs = pkgconfig.GetEnvBool("EXTRACT_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("extractor configuration: %w", err)
	}
	return cfg, nil
}
