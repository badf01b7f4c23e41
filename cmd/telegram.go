package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/israelhub/chatbot-furia/internal/bot"
	"github.com/israelhub/chatbot-furia/internal/config"
	"github.com/israelhub/chatbot-furia/internal/telegram"
)

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Run the bot as a Telegram front-end",
	RunE:  runTelegram,
}

func runTelegram(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	token := cfg.TelegramToken()
	if token == "" {
		return fmt.Errorf("telegram token missing: set telegram.token or FURIABOT_TELEGRAM_TOKEN")
	}

	tg, err := telegram.New(token, func() (*bot.Bot, error) {
		return buildBot(cfg)
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tg.Start(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
