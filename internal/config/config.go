package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type CacheConfig struct {
	Driver    string `yaml:"driver"`   // "memory" or "redis"
	Duration  string `yaml:"duration"` // default freshness window
	RedisAddr string `yaml:"redis_addr,omitempty"`
}

type ScrapeConfig struct {
	ProxyURL string `yaml:"proxy_url"`
	UseProxy bool   `yaml:"use_proxy"`
}

type AIConfig struct {
	Provider      string  `yaml:"provider"` // "gemini", "openai", "ollama" or "mock"
	APIKey        string  `yaml:"api_key"`
	Endpoint      string  `yaml:"endpoint,omitempty"`
	Model         string  `yaml:"model"`
	ContextMemory int     `yaml:"context_memory"`
	Temperature   float64 `yaml:"temperature"`
	MaxTokens     int     `yaml:"max_tokens"`
	UseCache      bool    `yaml:"use_cache"`
	CacheTTL      string  `yaml:"cache_ttl"`
}

type NewsConfig struct {
	FeedURL string `yaml:"feed_url"`
	Limit   int    `yaml:"limit,omitempty"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type TelegramConfig struct {
	Token string `yaml:"token,omitempty"`
}

type Config struct {
	Cache    CacheConfig    `yaml:"cache"`
	Scrape   ScrapeConfig   `yaml:"scrape"`
	AI       *AIConfig      `yaml:"ai,omitempty"`
	News     NewsConfig     `yaml:"news"`
	Server   ServerConfig   `yaml:"server"`
	Telegram TelegramConfig `yaml:"telegram"`
}

// AIKey returns the resolved generative API key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("FURIABOT_AI_KEY")
}

// TelegramToken returns the resolved bot token (config or env var).
func (c *Config) TelegramToken() string {
	if c.Telegram.Token != "" {
		return c.Telegram.Token
	}
	return os.Getenv("FURIABOT_TELEGRAM_TOKEN")
}

// CacheDuration returns the default freshness window, defaulting to 1h.
func (c *Config) CacheDuration() time.Duration {
	d, err := time.ParseDuration(c.Cache.Duration)
	if err != nil {
		return time.Hour
	}
	return d
}

// AICacheTTL returns the answer-cache TTL, defaulting to 24h.
func (c *Config) AICacheTTL() time.Duration {
	if c.AI == nil {
		return 24 * time.Hour
	}
	d, err := time.ParseDuration(c.AI.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

func (c *Config) NewsLimit() int {
	if c.News.Limit <= 0 {
		return 5
	}
	return c.News.Limit
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "furiabot", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	switch cfg.Cache.Driver {
	case "", "memory":
	case "redis":
		if cfg.Cache.RedisAddr == "" {
			return fmt.Errorf("cache: redis driver requires redis_addr")
		}
	default:
		return fmt.Errorf("cache: unknown driver %q (valid: memory, redis)", cfg.Cache.Driver)
	}

	if cfg.Scrape.UseProxy {
		if cfg.Scrape.ProxyURL == "" {
			return fmt.Errorf("scrape: use_proxy requires proxy_url")
		}
		u, err := url.Parse(cfg.Scrape.ProxyURL)
		if err != nil {
			return fmt.Errorf("scrape: invalid proxy_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("scrape: proxy_url scheme must be http or https, got %q", u.Scheme)
		}
	}

	if cfg.AI != nil {
		switch cfg.AI.Provider {
		case "", "gemini", "openai", "ollama", "mock":
		default:
			return fmt.Errorf("ai: unknown provider %q (valid: gemini, openai, ollama, mock)", cfg.AI.Provider)
		}
		if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
			return fmt.Errorf("ai: temperature %v out of range", cfg.AI.Temperature)
		}
	}

	return nil
}
