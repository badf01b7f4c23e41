package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/israelhub/chatbot-furia/internal/ai"
	"github.com/israelhub/chatbot-furia/internal/cache"
	"github.com/israelhub/chatbot-furia/internal/config"
	"github.com/israelhub/chatbot-furia/internal/data"
)

const rosterHTML = `
<div class="table-responsive roster-card-wrapper">
<table class="roster-card">
<tr><th>ID</th><th>Name</th></tr>
<tr><td>KSCERATO</td><td>Kaike Cerato</td></tr>
<tr><td>yuurih</td><td>Yuri Boian</td></tr>
</table>
</div>`

type fakeFetcher struct {
	err error
}

func (f *fakeFetcher) FetchLiquipedia(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return rosterHTML, nil
}

func (f *fakeFetcher) FetchDraft5(_ context.Context, _ string, _ bool) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "<div></div>", nil
}

type fakeBackend struct {
	reply string
}

func (f *fakeBackend) Complete(_ context.Context, _ string, _ int, _ float64) (string, error) {
	return f.reply, nil
}

type fakeNews struct {
	text string
	err  error
}

func (f *fakeNews) Latest(context.Context) (string, error) {
	return f.text, f.err
}

func newTestBot(t *testing.T, fetcher *fakeFetcher, reply string) *Bot {
	t.Helper()

	store := cache.NewMemory(time.Hour)
	provider := data.NewProvider(store, fetcher)

	cfg := &config.AIConfig{Provider: "mock", UseCache: false}
	svc := ai.New(cfg, "", store, provider)
	svc.SetBackend(&fakeBackend{reply: reply})

	b, err := New(provider, svc, &fakeNews{text: "• FURIA vence a NAVI (https://example.com/1)"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(nil, nil, nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestPlayersCommand(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "ignored")

	msg := b.ProcessMessage(context.Background(), "/jogadores")
	want := "O elenco atual da FURIA é:\n\n• KSCERATO (Kaike Cerato)\n• yuurih (Yuri Boian)\n\nEsse é o nosso esquadrão! 🐾 🔥"
	if msg.Content != want {
		t.Errorf("content =\n%q\nwant\n%q", msg.Content, want)
	}
}

func TestBareSlashListsCommands(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "ignored")

	msg := b.ProcessMessage(context.Background(), "/")
	if !strings.HasPrefix(msg.Content, "Comandos disponíveis:\n\n") {
		t.Fatalf("unexpected list: %q", msg.Content)
	}
	if !strings.Contains(msg.Content, "/jogadores - ") || !strings.Contains(msg.Content, "/quiz - ") {
		t.Errorf("missing commands in %q", msg.Content)
	}
}

func TestUnknownCommand(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "ignored")

	msg := b.ProcessMessage(context.Background(), "/naoexiste")
	if msg.Content != unknownCommandMessage {
		t.Errorf("content = %q", msg.Content)
	}
}

func TestQuizCommandShowsOptions(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "ignored")

	msg := b.ProcessMessage(context.Background(), "/quiz")
	if msg.Content != "📝 QUIZ FURIA - Quantas perguntas você quer responder?" {
		t.Fatalf("content = %q", msg.Content)
	}
	if len(msg.Buttons) != 4 || msg.Buttons[0].Value != "quiz_5" {
		t.Errorf("buttons = %+v", msg.Buttons)
	}
}

func TestQuizCountButtonStartsRound(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "ignored")
	ctx := context.Background()

	msg := b.ProcessMessage(ctx, "quiz_5")
	if !strings.Contains(msg.Content, "Pergunta 1/5") {
		t.Fatalf("expected first question, got %q", msg.Content)
	}
	if !b.Quiz().Active() {
		t.Fatal("quiz should be active")
	}
}

func TestActiveQuizConsumesEverything(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "ignored")
	ctx := context.Background()

	b.ProcessMessage(ctx, "quiz_5")

	// Even a slash command is treated as a quiz answer while a round runs
	msg := b.ProcessMessage(ctx, "/jogadores")
	if msg.Content != "Por favor, responda com A, B, C, D!" {
		t.Errorf("content = %q", msg.Content)
	}
}

func TestMidRoundCountTokenDoesNotRestart(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "ignored")
	ctx := context.Background()

	b.ProcessMessage(ctx, "quiz_5")
	if msg := b.ProcessMessage(ctx, "a"); !strings.Contains(msg.Content, "Pergunta 2/5") {
		t.Fatalf("expected second question, got %q", msg.Content)
	}

	// A count token mid-round is just another wrong answer token
	msg := b.ProcessMessage(ctx, "quiz_5")
	if msg.Content != "Por favor, responda com A, B, C, D!" {
		t.Fatalf("content = %q", msg.Content)
	}

	if msg := b.ProcessMessage(ctx, "b"); !strings.Contains(msg.Content, "Pergunta 3/5") {
		t.Errorf("round should have kept its progress, got %q", msg.Content)
	}
}

func TestReplayButtonReopensOptions(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "ignored")

	msg := b.ProcessMessage(context.Background(), "quiz")
	if msg.Content != "📝 QUIZ FURIA - Quantas perguntas você quer responder?" {
		t.Errorf("content = %q", msg.Content)
	}
}

func TestNewsCommand(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "ignored")

	msg := b.ProcessMessage(context.Background(), "/noticias")
	if !strings.Contains(msg.Content, "• FURIA vence a NAVI (https://example.com/1)") {
		t.Errorf("content = %q", msg.Content)
	}
}

func TestNewsFailureLeavesPlaceholder(t *testing.T) {
	store := cache.NewMemory(time.Hour)
	provider := data.NewProvider(store, &fakeFetcher{})
	svc := ai.New(&config.AIConfig{Provider: "mock", UseCache: false}, "", store, provider)
	svc.SetBackend(&fakeBackend{reply: "ok"})

	b, err := New(provider, svc, &fakeNews{err: errors.New("feed down")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	msg := b.ProcessMessage(context.Background(), "/noticias")
	if !strings.Contains(msg.Content, "{news}") {
		t.Errorf("failed source should leave its placeholder: %q", msg.Content)
	}
}

func TestFreeFormGoesToAI(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{}, "A FURIA está voando!")

	msg := b.ProcessMessage(context.Background(), "como está o time?")
	if msg.Content != "A FURIA está voando! 🐾 🔥" {
		t.Errorf("content = %q", msg.Content)
	}
}

func TestSocialMediaCommandNeedsNoData(t *testing.T) {
	b := newTestBot(t, &fakeFetcher{err: errors.New("everything down")}, "ignored")

	msg := b.ProcessMessage(context.Background(), "/redes")
	if !strings.Contains(msg.Content, "instagram.com/furiagg") {
		t.Errorf("content = %q", msg.Content)
	}
}

func TestRenderLinks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[link:https://www.instagram.com/furiagg:Instagram]", "Instagram (https://www.instagram.com/furiagg)"},
		{"[link:https://x.com/furia:X (Twitter)]", "X (Twitter) (https://x.com/furia)"},
		{"- [link:https://www.twitch.tv/furiatv:Twitch]\nSiga!", "- Twitch (https://www.twitch.tv/furiatv)\nSiga!"},
		{"sem markup nenhum 🐾 🔥", "sem markup nenhum 🐾 🔥"},
	}

	for _, tt := range tests {
		if got := RenderLinks(tt.in); got != tt.want {
			t.Errorf("RenderLinks(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
