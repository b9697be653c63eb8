package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"  Error  ", slog.LevelError},
		{"trace", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("calcd-test", "v0.0.0", "debug")
	if logger == nil {
		t.Fatal("expected logger instance, got nil")
	}

	// Debug handler must be enabled at debug level.
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level to be enabled")
	}
}

func TestNewStructuredLogger_DefaultLevel(t *testing.T) {
	logger := NewStructuredLogger("calcd-test", "v0.0.0", "")

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug to be disabled at default level")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be enabled at default level")
	}
}

func TestNewLogLogger(t *testing.T) {
	l := NewLogLogger(slog.LevelInfo)
	if l == nil {
		t.Fatal("expected *log.Logger, got nil")
	}
}
