package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/israelhub/chatbot-furia/internal/cache"
	"github.com/israelhub/chatbot-furia/internal/config"
)

type fakeBackend struct {
	reply string
	err   error
	calls int
	last  string
}

func (f *fakeBackend) Complete(_ context.Context, prompt string, _ int, _ float64) (string, error) {
	f.calls++
	f.last = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeData struct {
	players     string
	results     string
	panicOnNext bool
}

func (f *fakeData) ActivePlayers(context.Context) string { return f.players }
func (f *fakeData) RecentResults(context.Context) string { return f.results }
func (f *fakeData) LastMatch(context.Context) string     { return "FURIA 2 : 0 NAVI" }
func (f *fakeData) History(context.Context) string       { return "Fundada em 2017." }
func (f *fakeData) NextMatches(context.Context) string {
	if f.panicOnNext {
		panic("scraper exploded")
	}
	return "FURIA vs NAVI amanhã"
}

func newTestService(backend Backend, data DataSource) *Service {
	cfg := &config.AIConfig{Provider: "mock", ContextMemory: 5, MaxTokens: 300, Temperature: 0.7, UseCache: true, CacheTTL: "24h"}
	svc := New(cfg, "", cache.NewMemory(time.Hour), data)
	svc.SetBackend(backend)
	return svc
}

func TestGenerateResponseAppendsEmojis(t *testing.T) {
	backend := &fakeBackend{reply: "A FURIA está em ótima fase!"}
	svc := newTestService(backend, &fakeData{players: "KSCERATO\nyuurih"})

	got := svc.GenerateResponse(context.Background(), "como está o time?")
	if got != "A FURIA está em ótima fase! 🐾 🔥" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateResponseKeepsExistingEmoji(t *testing.T) {
	backend := &fakeBackend{reply: "Vamos com tudo! 🔥"}
	svc := newTestService(backend, &fakeData{})

	got := svc.GenerateResponse(context.Background(), "vamos ganhar?")
	if strings.Count(got, "🔥") != 1 || strings.Contains(got, "🐾") {
		t.Errorf("emoji suffix should not be appended twice: %q", got)
	}
}

func TestGenerateResponseGroundsPromptWithData(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	svc := newTestService(backend, &fakeData{players: "KSCERATO\nyuurih", results: "FURIA 2 : 0 NAVI"})

	svc.GenerateResponse(context.Background(), "quem joga na FURIA?")

	for _, want := range []string{
		"INFORMAÇÕES SOBRE JOGADORES ATUAIS:",
		"KSCERATO\nyuurih",
		"RESULTADOS RECENTES:",
		"ÚLTIMO JOGO:",
		"HISTÓRIA DA FURIA:",
		"PRÓXIMAS PARTIDAS:",
		"Pergunta do usuário: quem joga na FURIA?",
	} {
		if !strings.Contains(backend.last, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateResponsePanicInOneCategoryIsIsolated(t *testing.T) {
	backend := &fakeBackend{reply: "ok"}
	svc := newTestService(backend, &fakeData{players: "KSCERATO", panicOnNext: true})

	svc.GenerateResponse(context.Background(), "pergunta")

	if !strings.Contains(backend.last, "Próximas partidas indisponíveis no momento.") {
		t.Error("panicking category should degrade to its unavailable note")
	}
	if !strings.Contains(backend.last, "KSCERATO") {
		t.Error("healthy categories should still be present")
	}
}

func TestGenerateResponseUsesCache(t *testing.T) {
	backend := &fakeBackend{reply: "resposta"}
	svc := newTestService(backend, &fakeData{})
	ctx := context.Background()

	first := svc.GenerateResponse(ctx, "mesma pergunta")
	second := svc.GenerateResponse(ctx, "mesma pergunta")

	if first != second {
		t.Errorf("cached answer differs: %q vs %q", first, second)
	}
	if backend.calls != 1 {
		t.Errorf("expected 1 backend call, got %d", backend.calls)
	}
}

func TestFallbackOnBackendError(t *testing.T) {
	backend := &fakeBackend{err: errors.New("quota exceeded")}
	svc := newTestService(backend, &fakeData{players: "KSCERATO\nyuurih"})

	got := svc.GenerateResponse(context.Background(), "quais são os jogadores?")
	want := "O elenco atual da FURIA é:\n\nKSCERATO\nyuurih\n\nEsse é o nosso esquadrão! 🐾 🔥"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFallbackApologyWithoutKeyword(t *testing.T) {
	backend := &fakeBackend{err: errors.New("down")}
	svc := newTestService(backend, &fakeData{})

	got := svc.GenerateResponse(context.Background(), "qual o sentido da vida?")
	if !strings.HasPrefix(got, "Desculpe, estou com problemas para processar sua pergunta.") {
		t.Errorf("got %q", got)
	}
}

func TestHistoryEviction(t *testing.T) {
	backend := &fakeBackend{reply: "resposta"}
	cfg := &config.AIConfig{Provider: "mock", ContextMemory: 2, UseCache: false}
	svc := New(cfg, "", cache.NewMemory(time.Hour), &fakeData{})
	svc.SetBackend(backend)
	ctx := context.Background()

	for _, q := range []string{"primeira", "segunda", "terceira"} {
		svc.GenerateResponse(ctx, q)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.history) > 4 {
		t.Fatalf("history grew past the window: %d entries", len(svc.history))
	}
	for _, line := range svc.history {
		if strings.Contains(line, "primeira") {
			t.Errorf("oldest pair should have been evicted: %v", svc.history)
		}
	}
}

func TestNewSelectsSimulatedWithoutKey(t *testing.T) {
	svc := New(&config.AIConfig{Provider: "gemini"}, "", cache.NewMemory(time.Hour), &fakeData{})
	if _, ok := svc.backend.(*simulatedBackend); !ok {
		t.Errorf("expected simulated backend without a key, got %T", svc.backend)
	}
}
