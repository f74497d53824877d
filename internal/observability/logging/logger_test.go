package logging_test

import (
	"context"

	"testing"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/observability/logging"
)

func TestNewLogger_DefaultLevel(t *testing.T) {
	logger := logging.NewLogger()
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if !logger.Enabled(context.Background(), 0) { // slog.LevelInfo == 0
		t.Error("info level should be enabled by default")
	}
	if logger.Enabled(context.Background(), -4) { // slog.LevelDebug == -4
		t.Error("debug level should be disabled by default")
	}
}

func TestNewLogger_DebugLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := logging.NewLogger()
	if !logger.Enabled(context.Background(), -4) {
		t.Error("debug level should be enabled when LOG_LEVEL=debug")
	}
}

func TestWithRunID(t *testing.T) {
	logger := logging.NewLogger()
	if got := logging.WithRunID(logger, ""); got != logger {
		t.Error("empty run id should return the logger unchanged")
	}
	if got := logging.WithRunID(logger, "abc"); got == logger {
		t.Error("non-empty run id should return a derived logger")
	}
}
