package tui

import (
	"github.com/israelhub/chatbot-furia/internal/bot"
)

type replyMsg struct {
	message bot.Message
}
