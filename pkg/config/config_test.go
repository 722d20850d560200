package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.App.Port)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected dev environment by default, got %s", cfg.App.Env)
	}
	if cfg.DB.Path != "orderdesk.db" {
		t.Fatalf("unexpected db path %s", cfg.DB.Path)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("redis should be disabled without a URL")
	}
	if cfg.Autosave.Delay != 500*time.Millisecond {
		t.Fatalf("expected 500ms autosave delay, got %s", cfg.Autosave.Delay)
	}
	if cfg.Gemini.Model != "gemini-3-flash-preview" {
		t.Fatalf("unexpected model %s", cfg.Gemini.Model)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ORDERDESK_APP_ENV", "production")
	t.Setenv("ORDERDESK_APP_PORT", "9090")
	t.Setenv("ORDERDESK_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ORDERDESK_AUTOSAVE_DELAY", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected prod environment, got %s", cfg.App.Env)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.App.Port)
	}
	if !cfg.Redis.Enabled() {
		t.Fatalf("redis should be enabled with a URL")
	}
	if cfg.Autosave.Delay != 250*time.Millisecond {
		t.Fatalf("expected 250ms autosave delay, got %s", cfg.Autosave.Delay)
	}
}
