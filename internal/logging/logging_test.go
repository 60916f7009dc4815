package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/wrenware/repovis/internal/logging"
)

func TestNew_DefaultsToWarn(t *testing.T) {
	logger, err := logging.New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info to be disabled at the default level")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("expected warn to be enabled at the default level")
	}
}

func TestNew_AcceptsKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		if _, err := logging.New(level); err != nil {
			t.Errorf("level %q: unexpected error: %v", level, err)
		}
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	if _, err := logging.New("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
