package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg == nil {
		t.Fatal("Expected config, got nil")
	}

	if cfg.API.BaseURL != "https://api.paas.example.com" {
		t.Errorf("Expected default base URL, got %s", cfg.API.BaseURL)
	}

	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %s", cfg.API.Timeout)
	}

	if cfg.Output.Format != "table" {
		t.Errorf("Expected default output format table, got %s", cfg.Output.Format)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PAASCTL_API_KEY", "test-key-123")
	t.Setenv("PAASCTL_API_BASE_URL", "https://staging.paas.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.API.Key != "test-key-123" {
		t.Errorf("Expected API key from environment, got %q", cfg.API.Key)
	}

	// Trailing slash is normalized away
	if cfg.API.BaseURL != "https://staging.paas.example.com" {
		t.Errorf("Expected trimmed base URL, got %q", cfg.API.BaseURL)
	}
}
