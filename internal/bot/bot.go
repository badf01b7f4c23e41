// Package bot routes incoming messages: an active quiz round consumes
// everything, slash commands resolve through the registry, and anything
// else goes to the generative service. Failures inside a turn surface as a
// friendly error message, never as a crash.
package bot

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/israelhub/chatbot-furia/internal/ai"
	"github.com/israelhub/chatbot-furia/internal/command"
	"github.com/israelhub/chatbot-furia/internal/data"
	"github.com/israelhub/chatbot-furia/internal/quiz"
)

// ErrNotInitialized is returned when the bot is constructed without its
// required collaborators.
var ErrNotInitialized = errors.New("bot: not initialized, data provider and AI service are required")

// Button is a quick-reply option. Value is what the front-end sends back
// when the user picks it.
type Button struct {
	Text  string
	Value string
}

// Message is one chat entry with optional quick replies.
type Message struct {
	Content string
	IsUser  bool
	Buttons []Button
}

const (
	errorMessage = "🤖 Tive um problema para responder. Tente novamente mais tarde ou use um dos comandos disponíveis digitando \"/\" no chat! 🐾 🔥"

	unknownCommandMessage = "Comando não reconhecido. Digite \"/\" para ver a lista de comandos disponíveis. 🐾 🔥"
)

// NewsSource supplies formatted headlines for the /noticias command.
type NewsSource interface {
	Latest(ctx context.Context) (string, error)
}

// Bot is the message router.
type Bot struct {
	data     *data.Provider
	ai       *ai.Service
	quiz     *quiz.Engine
	commands *command.Registry
	news     NewsSource
}

// New wires the bot. The news source is optional; everything else is
// required.
func New(provider *data.Provider, svc *ai.Service, news NewsSource) (*Bot, error) {
	if provider == nil || svc == nil {
		return nil, ErrNotInitialized
	}
	return &Bot{
		data:     provider,
		ai:       svc,
		quiz:     quiz.NewEngine(),
		commands: command.NewRegistry(),
		news:     news,
	}, nil
}

// Quiz exposes the engine for front-ends that render its buttons.
func (b *Bot) Quiz() *quiz.Engine {
	return b.quiz
}

// Commands exposes the registry.
func (b *Bot) Commands() *command.Registry {
	return b.commands
}

// ProcessMessage handles one user turn. A panic anywhere below resolves to
// the generic error message.
func (b *Bot) ProcessMessage(ctx context.Context, text string) (msg Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("bot: processing %q: %v", text, r)
			msg = Message{Content: errorMessage}
		}
	}()

	// An active round consumes every input, count tokens included, so a
	// stray quiz_<n> cannot restart it mid-game.
	if b.quiz.Active() {
		return fromQuizReply(b.quiz.ProcessAnswer(text))
	}

	// Quiz count buttons come back as quiz_<n> tokens.
	if count, ok := quizCountToken(text); ok {
		return fromQuizReply(b.quiz.Start(count))
	}

	if b.commands.IsCommand(text) {
		return b.processCommand(ctx, text)
	}
	if strings.TrimSpace(strings.ToLower(text)) == "quiz" {
		return fromQuizReply(b.quiz.Options())
	}

	return Message{Content: b.ai.GenerateResponse(ctx, text)}
}

func (b *Bot) processCommand(ctx context.Context, text string) Message {
	if b.commands.IsCommandList(text) {
		help, _ := b.commands.ByID("help")
		return Message{Content: b.commands.FormatCommand(help, nil)}
	}

	cmd, ok := b.commands.Find(text)
	if !ok {
		return Message{Content: unknownCommandMessage}
	}

	if cmd.ID == "quiz" {
		return fromQuizReply(b.quiz.Options())
	}

	values := b.requiredData(ctx, cmd.RequiresData)
	return Message{Content: b.commands.FormatCommand(cmd, values)}
}

// requiredData resolves every placeholder a command needs, in parallel. A
// source that fails is simply omitted so the rest of the template still
// renders.
func (b *Bot) requiredData(ctx context.Context, types []string) map[string]string {
	if len(types) == 0 {
		return nil
	}

	type item struct {
		key   string
		value string
		ok    bool
	}
	results := make(chan item, len(types))

	for _, t := range types {
		fetch, ok := b.dataFunc(t)
		if !ok {
			results <- item{}
			continue
		}
		go func(key string, fetch func(context.Context) (string, error)) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("bot: data %s panic: %v", key, r)
					results <- item{}
				}
			}()
			value, err := fetch(ctx)
			if err != nil {
				log.Printf("bot: data %s: %v", key, err)
				results <- item{}
				return
			}
			results <- item{key: key, value: value, ok: true}
		}(t, fetch)
	}

	values := make(map[string]string)
	for range types {
		if it := <-results; it.ok {
			values[it.key] = it.value
		}
	}
	return values
}

func (b *Bot) dataFunc(key string) (func(context.Context) (string, error), bool) {
	wrap := func(f func(context.Context) string) func(context.Context) (string, error) {
		return func(ctx context.Context) (string, error) { return f(ctx), nil }
	}

	switch key {
	case "players":
		return wrap(b.data.ActivePlayers), true
	case "results":
		return wrap(b.data.RecentResults), true
	case "lastMatch":
		return wrap(b.data.LastMatch), true
	case "history":
		return wrap(b.data.History), true
	case "nextMatches":
		return wrap(b.data.NextMatches), true
	case "news":
		if b.news == nil {
			return nil, false
		}
		return b.news.Latest, true
	default:
		return nil, false
	}
}

// quizCountToken parses the quiz_<n> button values.
func quizCountToken(text string) (int, bool) {
	token := strings.TrimSpace(strings.ToLower(text))
	if !strings.HasPrefix(token, "quiz_") {
		return 0, false
	}
	count, err := strconv.Atoi(strings.TrimPrefix(token, "quiz_"))
	if err != nil || count <= 0 {
		return 0, false
	}
	return count, true
}

// linkMarkup matches the [link:url:text] markup some command templates
// carry. The lazy url group lets the scheme's own colon through.
var linkMarkup = regexp.MustCompile(`\[link:(.+?):([^:\]]+)\]`)

// RenderLinks rewrites [link:url:text] markup into "text (url)" for
// front-ends that show plain text.
func RenderLinks(text string) string {
	return linkMarkup.ReplaceAllString(text, "$2 ($1)")
}

func fromQuizReply(r quiz.Reply) Message {
	buttons := make([]Button, 0, len(r.Buttons))
	for _, btn := range r.Buttons {
		buttons = append(buttons, Button{Text: btn.Text, Value: btn.Value})
	}
	return Message{Content: r.Content, Buttons: buttons}
}
