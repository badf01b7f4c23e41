// Package telegram is the Telegram front-end. Each chat gets its own bot
// instance so quiz rounds and conversation memory never leak between
// users.
package telegram

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/israelhub/chatbot-furia/internal/bot"
)

// Factory builds one chat bot per Telegram chat.
type Factory func() (*bot.Bot, error)

// Bot bridges Telegram updates into chat bot turns.
type Bot struct {
	api     *tgbotapi.BotAPI
	factory Factory

	mu    sync.Mutex
	chats map[int64]*bot.Bot
}

func New(token string, factory Factory) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot API: %w", err)
	}
	return &Bot{api: api, factory: factory, chats: make(map[int64]*bot.Bot)}, nil
}

// Start long-polls for updates until ctx is canceled.
func (b *Bot) Start(ctx context.Context) error {
	log.Printf("telegram: polling as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.CallbackQuery != nil {
				b.handleCallback(ctx, update.CallbackQuery)
			} else if update.Message != nil {
				b.handleMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) chatBot(chatID int64) (*bot.Bot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.chats[chatID]; ok {
		return cb, nil
	}
	cb, err := b.factory()
	if err != nil {
		return nil, err
	}
	b.chats[chatID] = cb
	return cb, nil
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	text := message.Text
	if text == "" {
		return
	}
	// Telegram reserves /start; treat it as the command list
	if text == "/start" {
		text = "/"
	}
	b.process(ctx, message.Chat.ID, text)
}

// handleCallback feeds a button value back through the same pipeline as a
// typed message.
func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	ack := tgbotapi.NewCallback(callback.ID, "")
	if _, err := b.api.Request(ack); err != nil {
		log.Printf("telegram: acknowledging callback: %v", err)
	}
	if callback.Message == nil || callback.Data == "" {
		return
	}
	b.process(ctx, callback.Message.Chat.ID, callback.Data)
}

func (b *Bot) process(ctx context.Context, chatID int64, text string) {
	cb, err := b.chatBot(chatID)
	if err != nil {
		log.Printf("telegram: creating chat bot: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	b.send(chatID, cb.ProcessMessage(ctx, text))
}

func (b *Bot) send(chatID int64, message bot.Message) {
	msg := tgbotapi.NewMessage(chatID, bot.RenderLinks(message.Content))
	if len(message.Buttons) > 0 {
		msg.ReplyMarkup = keyboard(message.Buttons)
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram: sending message: %v", err)
	}
}

// keyboard renders quick replies as one inline button per row.
func keyboard(buttons []bot.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Value),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
