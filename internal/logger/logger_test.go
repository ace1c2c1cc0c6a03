package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("verbosity %d: got %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestNewFiltersByVerbosity(t *testing.T) {
	var buf bytes.Buffer
	log := New(zapcore.AddSync(&buf), VerbosityUser)

	log.Info("generating")
	log.Warn("careful")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "generating") {
		t.Error("info should be suppressed at default verbosity")
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "careful") {
		t.Errorf("expected warning, got %q", out)
	}
}

func TestErrorIncludesHints(t *testing.T) {
	var buf bytes.Buffer
	log := New(zapcore.AddSync(&buf), VerbosityUser)

	err := errors.WithHint(errors.New("invalid resolution 0"), "use a positive value")
	Error(log, err)
	Error(log, errors.New("plain failure"))
	_ = log.Sync()

	out := buf.String()
	for _, want := range []string{"ERROR", "invalid resolution 0", "use a positive value", "plain failure"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestLoggerDefaultsToNop(t *testing.T) {
	if Logger == nil {
		t.Fatal("logger should never be nil")
	}
	Logger.Error("discarded")
}
