package cmd

import (
	"testing"

	"github.com/israelhub/chatbot-furia/internal/config"
)

func TestBuildBot(t *testing.T) {
	cfg := &config.Config{
		Cache:  config.CacheConfig{Driver: "memory", Duration: "1h"},
		Scrape: config.ScrapeConfig{ProxyURL: "http://localhost:3001/api", UseProxy: true},
		AI:     &config.AIConfig{Provider: "mock"},
		News:   config.NewsConfig{FeedURL: "https://www.hltv.org/rss/news"},
	}

	b, err := buildBot(cfg)
	if err != nil {
		t.Fatalf("buildBot: %v", err)
	}
	if b == nil {
		t.Fatal("expected a bot")
	}
}

func TestBuildBotRejectsUnknownCacheDriver(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{Driver: "memcached"}}
	if _, err := buildBot(cfg); err == nil {
		t.Error("expected error for unknown cache driver")
	}
}
