package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Cache.Duration == "" {
		t.Error("expected cache duration to be set")
	}
	if cfg.AI == nil {
		t.Fatal("expected default AI config")
	}
	if cfg.AI.Provider != "gemini" {
		t.Errorf("expected default provider gemini, got %q", cfg.AI.Provider)
	}
	if cfg.AI.ContextMemory != 5 {
		t.Errorf("expected context_memory 5, got %d", cfg.AI.ContextMemory)
	}
}

func TestCacheDuration(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{Duration: "30m"}}
	if d := cfg.CacheDuration(); d.Minutes() != 30 {
		t.Errorf("expected 30m, got %v", d)
	}

	cfg.Cache.Duration = "invalid"
	if d := cfg.CacheDuration(); d != time.Hour {
		t.Errorf("expected 1h default for invalid duration, got %v", d)
	}
}

func TestAICacheTTL(t *testing.T) {
	cfg := &Config{AI: &AIConfig{CacheTTL: "12h"}}
	if d := cfg.AICacheTTL(); d.Hours() != 12 {
		t.Errorf("expected 12h, got %v", d)
	}

	cfg.AI = nil
	if d := cfg.AICacheTTL(); d.Hours() != 24 {
		t.Errorf("expected 24h default, got %v", d)
	}
}

func TestAIKeyEnvFallback(t *testing.T) {
	t.Setenv("FURIABOT_AI_KEY", "env-key")

	cfg := &Config{AI: &AIConfig{APIKey: ""}}
	if got := cfg.AIKey(); got != "env-key" {
		t.Errorf("expected env fallback, got %q", got)
	}

	cfg.AI.APIKey = "config-key"
	if got := cfg.AIKey(); got != "config-key" {
		t.Errorf("expected config key to win, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"memory driver", Config{Cache: CacheConfig{Driver: "memory"}}, false},
		{"redis without addr", Config{Cache: CacheConfig{Driver: "redis"}}, true},
		{"redis with addr", Config{Cache: CacheConfig{Driver: "redis", RedisAddr: "localhost:6379"}}, false},
		{"unknown driver", Config{Cache: CacheConfig{Driver: "memcached"}}, true},
		{"proxy without url", Config{Scrape: ScrapeConfig{UseProxy: true}}, true},
		{"proxy bad scheme", Config{Scrape: ScrapeConfig{UseProxy: true, ProxyURL: "ftp://x"}}, true},
		{"unknown provider", Config{AI: &AIConfig{Provider: "bard"}}, true},
		{"temperature out of range", Config{AI: &AIConfig{Provider: "mock", Temperature: 3}}, true},
	}
	for _, tt := range tests {
		err := validate(&tt.cfg)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: validate err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI == nil {
		t.Error("expected defaults when file is missing")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cache: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
