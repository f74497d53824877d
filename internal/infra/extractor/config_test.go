package extractor_test

import (
	"testing"
	"time"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/infra/extractor"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*extractor.Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *extractor.Config) {},
			wantErr: false,
		},
		{
			name:    "unknown type",
			mutate:  func(c *extractor.Config) { c.Type = "regex" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *extractor.Config) { c.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative min chars",
			mutate:  func(c *extractor.Config) { c.MinChars = -1 },
			wantErr: true,
		},
		{
			name:    "tiny body size",
			mutate:  func(c *extractor.Config) { c.MaxBodySize = 512 },
			wantErr: true,
		},
		{
			name:    "negative redirects",
			mutate:  func(c *extractor.Config) { c.MaxRedirects = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := extractor.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EXTRACTOR_TYPE", "readability")
	t.Setenv("EXTRACT_TIMEOUT", "5s")
	t.Setenv("EXTRACT_MIN_CHARS", "300")
	t.Setenv("EXTRACT_DENY_PRIVATE_IPS", "false")

	cfg, err := extractor.LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}

	if cfg.Type != extractor.TypeReadability {
		t.Errorf("Type = %q, want readability", cfg.Type)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.MinChars != 300 {
		t.Errorf("MinChars = %d, want 300", cfg.MinChars)
	}
	if cfg.DenyPrivateIPs {
		t.Error("DenyPrivateIPs = true, want false")
	}
}

func TestLoadConfigFromEnv_InvalidType(t *testing.T) {
	t.Setenv("EXTRACTOR_TYPE", "llm")

	if _, err := extractor.LoadConfigFromEnv(); err == nil {
		t.Error("expected error for unknown extractor type, got nil")
	}
}
