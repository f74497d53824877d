// Package worker holds the run-level configuration and metrics for the
// one-shot ingestion batch: the whole-run timeout, extraction parallelism,
// and the optional metrics endpoint.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	pkgconfig "github.com/FAFFA-GOLD/ai-news-batch/pkg/config"
)

// Config holds the operational parameters for one batch run.
//
// All fields have safe defaults; LoadConfigFromEnv follows a fail-open
// strategy and falls back to the default for any invalid value rather than
// aborting the run.
type Config struct {
	// RunTimeout is the maximum duration of the whole batch run.
	// After this timeout the run is cancelled and in-flight entries are
	// abandoned. Default: 30 minutes.
	RunTimeout time.Duration

	// ExtractParallelism is the number of concurrent content extractions
	// per source. Range: 1-32. Default: 4.
	ExtractParallelism int

	// MetricsEnabled controls whether the Prometheus /metrics endpoint is
	// served for the duration of the run. Default: false.
	MetricsEnabled bool

	// MetricsPort is the port for the metrics HTTP server.
	// Range: 1024-65535. Default: 9091.
	MetricsPort int
}

// DefaultConfig returns a Config with production-ready default values.
func DefaultConfig() Config {
	return Config{
		RunTimeout:         30 * time.Minute,
		ExtractParallelism: 4,
		MetricsEnabled:     false,
		MetricsPort:        9091,
	}
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	var errs []error

	if c.RunTimeout <= 0 {
		errs = append(errs, fmt.Errorf("run timeout must be positive, got %v", c.RunTimeout))
	}
	if c.ExtractParallelism < 1 || c.ExtractParallelism > 32 {
		errs = append(errs, fmt.Errorf("extract parallelism must be 1-32, got %d", c.ExtractParallelism))
	}
	if c.MetricsPort < 1024 || c.MetricsPort > 65535 {
		errs = append(errs, fmt.Errorf("metrics port must be 1024-65535, got %d", c.MetricsPort))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads the worker configuration from environment
// variables with fallback to defaults on invalid values (fail-open: the
// batch should run with safe defaults rather than refuse to start over a
// typo in an env var).
//
// Environment variables:
//   - RUN_TIMEOUT: duration string, e.g. "30m"
//   - EXTRACT_PARALLELISM: integer 1-32
//   - METRICS_ENABLED: boolean
//   - METRICS_PORT: integer 1024-65535
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) *Config {
	defaults := DefaultConfig()
	cfg := defaults

	cfg.RunTimeout = pkgconfig.GetEnvDuration("RUN_TIMEOUT", defaults.RunTimeout)
	if cfg.RunTimeout <= 0 {
		logger.Warn("configuration fallback applied",
			slog.String("field", "RunTimeout"),
			slog.Duration("invalid_value", cfg.RunTimeout),
			slog.Duration("default_value", defaults.RunTimeout))
		metrics.RecordConfigFallback("run_timeout")
		cfg.RunTimeout = defaults.RunTimeout
	}

	cfg.ExtractParallelism = pkgconfig.GetEnvInt("EXTRACT_PARALLELISM", defaults.ExtractParallelism)
	if cfg.ExtractParallelism < 1 || cfg.ExtractParallelism > 32 {
		logger.Warn("configuration fallback applied",
			slog.String("field", "ExtractParallelism"),
			slog.Int("invalid_value", cfg.ExtractParallelism),
			slog.Int("default_value", defaults.ExtractParallelism))
		metrics.RecordConfigFallback("extract_parallelism")
		cfg.ExtractParallelism = defaults.ExtractParallelism
	}

	cfg.MetricsEnabled = pkgconfig.GetEnvBool("METRICS_ENABLED", defaults.MetricsEnabled)

	cfg.MetricsPort = pkgconfig.GetEnvInt("METRICS_PORT", defaults.MetricsPort)
	if cfg.MetricsPort < 1024 || cfg.MetricsPort > 65535 {
		logger.Warn("configuration fallback applied",
			slog.String("field", "MetricsPort"),
			slog.Int("invalid_value", cfg.MetricsPort),
			slog.Int("default_value", defaults.MetricsPort))
		metrics.RecordConfigFallback("metrics_port")
		cfg.MetricsPort = defaults.MetricsPort
	}

	return &cfg
}
