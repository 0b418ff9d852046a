package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	logger := New("debug", "text")
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level to be enabled")
	}

	logger = New("error", "text")
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Expected warn to be disabled at error level")
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger := New("verbose", "text")
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Unknown level should fall back to info")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled after fallback")
	}
}

func TestNew_JSONFormat(t *testing.T) {
	if logger := New("info", "json"); logger == nil {
		t.Fatal("Expected non-nil logger")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := RequestID(ctx); got != "" {
		t.Errorf("Expected empty request ID, got %q", got)
	}

	ctx = WithRequestID(ctx, "req-123")
	if got := RequestID(ctx); got != "req-123" {
		t.Errorf("Expected req-123, got %q", got)
	}
}

func TestFromContext_Fallback(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Error("Expected the default logger for a bare context")
	}
}

func TestL_AnnotatesRequestID(t *testing.T) {
	logger := New("info", "text")
	ctx := WithLogger(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-456")

	if L(ctx) == nil {
		t.Fatal("Expected non-nil contextual logger")
	}
	// Without a request ID the stored logger comes back unchanged
	plain := WithLogger(context.Background(), logger)
	if L(plain) != logger {
		t.Error("Expected the stored logger when no request ID is set")
	}
}
