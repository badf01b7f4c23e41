package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/israelhub/chatbot-furia/internal/ai"
	"github.com/israelhub/chatbot-furia/internal/bot"
	"github.com/israelhub/chatbot-furia/internal/cache"
	"github.com/israelhub/chatbot-furia/internal/config"
	"github.com/israelhub/chatbot-furia/internal/data"
	"github.com/israelhub/chatbot-furia/internal/news"
	"github.com/israelhub/chatbot-furia/internal/scrape"
	"github.com/israelhub/chatbot-furia/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "furiabot",
	Short: "Chatbot de terminal para fãs da FURIA",
	Long:  "furiabot responde perguntas sobre a FURIA, executa comandos com dados ao vivo e roda o quiz, direto no terminal.",
	RunE:  runChat,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(telegramCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("furiabot %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	b, err := buildBot(cfg)
	if err != nil {
		return err
	}
	return tui.Run(b)
}

// buildBot wires the full pipeline: cache, scraper, data provider, AI and
// news behind one bot.
func buildBot(cfg *config.Config) (*bot.Bot, error) {
	store, err := cache.New(cfg.Cache.Driver, cache.Options{
		DefaultDuration: cfg.CacheDuration(),
		RedisAddr:       cfg.Cache.RedisAddr,
	})
	if err != nil {
		return nil, err
	}

	fetcher := scrape.NewClient(cfg.Scrape.ProxyURL, cfg.Scrape.UseProxy)
	provider := data.NewProvider(store, fetcher)
	svc := ai.New(cfg.AI, cfg.AIKey(), store, provider)

	var source bot.NewsSource
	if cfg.News.FeedURL != "" {
		source = news.NewFetcher(cfg.News.FeedURL, cfg.NewsLimit())
	}

	return bot.New(provider, svc, source)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
