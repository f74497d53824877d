package config_test

import (
	"testing"
	"time"

	"github.com/FAFFA-GOLD/ai-news-batch/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "hello")
	if got := config.GetEnvString("TEST_STR", "default"); got != "hello" {
		t.Errorf("GetEnvString = %q, want %q", got, "hello")
	}
	if got := config.GetEnvString("TEST_STR_UNSET", "default"); got != "default" {
		t.Errorf("GetEnvString = %q, want %q", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"negative", "-5", -5},
		{"invalid", "not-a-number", 7},
		{"empty", "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_INT", tt.value)
			}
			if got := config.GetEnvInt("TEST_INT", 7); got != tt.want {
				t.Errorf("GetEnvInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"T", true},
		{"false", false},
		{"0", false},
		{"garbage", true}, // falls back to default
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := config.GetEnvBool("TEST_BOOL", true); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	if got := config.GetEnvDuration("TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("GetEnvDuration = %v, want 90s", got)
	}

	t.Setenv("TEST_DUR", "not-a-duration")
	if got := config.GetEnvDuration("TEST_DUR", 10*time.Second); got != 10*time.Second {
		t.Errorf("GetEnvDuration = %v, want fallback 10s", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "2.5")
	if got := config.GetEnvFloat("TEST_FLOAT", 1.0); got != 2.5 {
		t.Errorf("GetEnvFloat = %v, want 2.5", got)
	}

	t.Setenv("TEST_FLOAT", "nope")
	if got := config.GetEnvFloat("TEST_FLOAT", 1.0); got != 1.0 {
		t.Errorf("GetEnvFloat = %v, want fallback 1.0", got)
	}
}
