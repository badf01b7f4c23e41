// Package tui is the terminal chat front-end.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/israelhub/chatbot-furia/internal/bot"
)

const welcomeText = "E aí, furioso! 🐾 Pergunte qualquer coisa sobre a FURIA ou digite \"/\" para ver os comandos."

type App struct {
	bot      *bot.Bot
	messages []bot.Message
	buttons  []bot.Button

	input   textinput.Model
	spinner spinner.Model

	width   int
	height  int
	pending bool
}

func NewApp(b *bot.Bot) *App {
	ti := textinput.New()
	ti.Placeholder = "Pergunte sobre a FURIA..."
	ti.Prompt = inputPromptStyle.Render("> ")
	ti.CharLimit = 300
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		bot:      b,
		input:    ti,
		spinner:  sp,
		messages: []bot.Message{{Content: welcomeText}},
	}
}

// Run starts the chat loop and blocks until the user quits.
func Run(b *bot.Bot) error {
	_, err := tea.NewProgram(NewApp(b), tea.WithAltScreen()).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 4
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "enter":
			if a.pending {
				return a, nil
			}
			text := strings.TrimSpace(a.input.Value())
			if text == "" {
				return a, nil
			}
			a.input.SetValue("")
			return a, tea.Batch(a.send(text), a.spinner.Tick)
		}

		// Digits pick a quick-reply button when the input is empty
		if !a.pending && a.input.Value() == "" && len(a.buttons) > 0 {
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(a.buttons) {
				return a, tea.Batch(a.send(a.buttons[n-1].Value), a.spinner.Tick)
			}
		}

		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd

	case replyMsg:
		a.pending = false
		a.messages = append(a.messages, msg.message)
		a.buttons = msg.message.Buttons
		return a, nil

	case spinner.TickMsg:
		if !a.pending {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

// send records the user message and asks the bot off the UI goroutine.
func (a *App) send(text string) tea.Cmd {
	a.messages = append(a.messages, bot.Message{Content: text, IsUser: true})
	a.buttons = nil
	a.pending = true

	b := a.bot
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		return replyMsg{message: b.ProcessMessage(ctx, text)}
	}
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("FURIA Bot 🐾🔥") + "\n\n")

	history := a.messages
	if max := a.visibleMessages(); len(history) > max {
		history = history[len(history)-max:]
	}
	for _, m := range history {
		label := botLabelStyle.Render("FURIA Bot")
		if m.IsUser {
			label = userLabelStyle.Render("Você")
		}
		b.WriteString(label + "\n")
		b.WriteString(messageStyle.Render(wrap(bot.RenderLinks(m.Content), a.textWidth())) + "\n\n")
	}

	if a.pending {
		b.WriteString(a.spinner.View() + " pensando...\n\n")
	} else if len(a.buttons) > 0 {
		var rendered []string
		for i, btn := range a.buttons {
			rendered = append(rendered, buttonStyle.Render("["+strconv.Itoa(i+1)+"] "+btn.Text))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n")
		b.WriteString(hintStyle.Render("digite o número da opção ou a resposta") + "\n\n")
	}

	b.WriteString(a.input.View() + "\n")
	b.WriteString(hintStyle.Render("enter envia • esc sai"))
	return b.String()
}

func (a *App) textWidth() int {
	if a.width <= 4 {
		return 76
	}
	return a.width - 4
}

// visibleMessages caps the history to roughly what fits on screen.
func (a *App) visibleMessages() int {
	if a.height <= 0 {
		return 8
	}
	n := a.height / 5
	if n < 2 {
		n = 2
	}
	return n
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for len(runes) > width {
			cut := width
			for i := width; i > 0; i-- {
				if runes[i] == ' ' {
					cut = i
					break
				}
			}
			out = append(out, string(runes[:cut]))
			for cut < len(runes) && runes[cut] == ' ' {
				cut++
			}
			runes = runes[cut:]
		}
		out = append(out, string(runes))
	}
	return strings.Join(out, "\n")
}
