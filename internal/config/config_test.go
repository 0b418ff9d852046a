package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Expected default port %s, got %s", DefaultPort, cfg.Port)
	}
	if cfg.Env != DefaultEnv {
		t.Errorf("Expected default env %s, got %s", DefaultEnv, cfg.Env)
	}
	if cfg.AnalysisDelay != 0 {
		t.Errorf("Analysis delay should default to 0, got %v", cfg.AnalysisDelay)
	}
	if cfg.RateLimitRPM != DefaultRateLimitRPM {
		t.Errorf("Expected default rate limit %d, got %d", DefaultRateLimitRPM, cfg.RateLimitRPM)
	}
}

func TestLoad_AnalysisDelayFromEnv(t *testing.T) {
	t.Setenv("ANALYSIS_DELAY_MS", "1500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AnalysisDelay != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s analysis delay, got %v", cfg.AnalysisDelay)
	}
}

func TestLoad_InvalidDelayRejected(t *testing.T) {
	t.Setenv("ANALYSIS_DELAY_MS", "-5")
	if _, err := Load(); err == nil {
		t.Error("Expected error for negative delay")
	}

	t.Setenv("ANALYSIS_DELAY_MS", "90000")
	if _, err := Load(); err == nil {
		t.Error("Expected error for delay above 60s")
	}
}

func TestLoad_InvalidLogFormatRejected(t *testing.T) {
	t.Setenv("LOG_FORMAT", "yaml")
	if _, err := Load(); err == nil {
		t.Error("Expected error for unsupported log format")
	}
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("Expected 2 origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("Origins should be trimmed, got %q", cfg.AllowedOrigins[1])
	}
}

func TestEnvHelpers(t *testing.T) {
	cfg := &Config{Env: "production"}
	if !cfg.IsProduction() || cfg.IsDevelopment() {
		t.Error("Expected production mode")
	}

	cfg.Env = "development"
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("Expected development mode")
	}
}
