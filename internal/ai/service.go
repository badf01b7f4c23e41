// Package ai generates free-form answers about the team. It grounds a
// persona prompt with live data, keeps a short conversation history and
// caches answers. When the backend fails it degrades to keyword matching
// over the same data, so the user always gets something readable.
package ai

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/israelhub/chatbot-furia/internal/cache"
	"github.com/israelhub/chatbot-furia/internal/config"
)

// DataSource supplies the live team data used to ground prompts.
type DataSource interface {
	ActivePlayers(ctx context.Context) string
	RecentResults(ctx context.Context) string
	LastMatch(ctx context.Context) string
	History(ctx context.Context) string
	NextMatches(ctx context.Context) string
}

// Service turns user questions into persona answers through a Backend.
type Service struct {
	backend     Backend
	cache       cache.Store
	data        DataSource
	maxTokens   int
	temperature float64
	memory      int
	useCache    bool
	cacheTTL    time.Duration

	mu      sync.Mutex
	history []string
}

// New builds a Service from config. The backend is selected by provider;
// a missing API key silently falls back to the simulated backend so the
// bot stays usable without credentials.
func New(cfg *config.AIConfig, apiKey string, store cache.Store, source DataSource) *Service {
	svc := &Service{
		cache:       store,
		data:        source,
		maxTokens:   300,
		temperature: 0.7,
		memory:      5,
		useCache:    true,
		cacheTTL:    24 * time.Hour,
	}

	provider := "gemini"
	model := ""
	endpoint := ""
	if cfg != nil {
		if cfg.Provider != "" {
			provider = cfg.Provider
		}
		model = cfg.Model
		endpoint = cfg.Endpoint
		if cfg.MaxTokens > 0 {
			svc.maxTokens = cfg.MaxTokens
		}
		if cfg.Temperature > 0 {
			svc.temperature = cfg.Temperature
		}
		if cfg.ContextMemory > 0 {
			svc.memory = cfg.ContextMemory
		}
		svc.useCache = cfg.UseCache
		if d, err := time.ParseDuration(cfg.CacheTTL); err == nil {
			svc.cacheTTL = d
		}
	}

	svc.backend = newBackend(provider, apiKey, model, endpoint)
	return svc
}

// SetBackend swaps the completion backend. Tests use it to inject fakes.
func (s *Service) SetBackend(b Backend) {
	s.backend = b
}

// GenerateResponse answers a free-form question. It never returns an
// error: backend failures degrade to the keyword fallback.
func (s *Service) GenerateResponse(ctx context.Context, query string) string {
	cacheKey := "ai_response:" + query

	if s.useCache && s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			return cached
		}
	}

	s.appendHistory("Usuário: " + query)

	prompt := s.buildPrompt(query, s.prepareContext(ctx))

	raw, err := s.backend.Complete(ctx, prompt, s.maxTokens, s.temperature)
	if err != nil {
		log.Printf("ai: backend: %v", err)
		return s.fallbackResponse(ctx, query)
	}

	response := formatResponse(raw)
	s.appendHistory("Bot: " + response)

	if s.useCache && s.cache != nil {
		s.cache.Set(ctx, cacheKey, response, s.cacheTTL)
	}
	return response
}

// ClearHistory drops the conversation memory.
func (s *Service) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// prepareContext gathers all five data categories concurrently. A category
// that panics is replaced by an unavailable note; the others still land.
func (s *Service) prepareContext(ctx context.Context) string {
	if s.data == nil {
		return "Sem informações contextuais disponíveis."
	}

	sections := []struct {
		label    string
		fallback string
		fetch    func(context.Context) string
	}{
		{"INFORMAÇÕES SOBRE JOGADORES ATUAIS:", "Informações de jogadores indisponíveis no momento.", s.data.ActivePlayers},
		{"RESULTADOS RECENTES:", "Resultados recentes indisponíveis no momento.", s.data.RecentResults},
		{"ÚLTIMO JOGO:", "Informações do último jogo indisponíveis no momento.", s.data.LastMatch},
		{"HISTÓRIA DA FURIA:", "História da FURIA indisponível no momento.", s.data.History},
		{"PRÓXIMAS PARTIDAS:", "Próximas partidas indisponíveis no momento.", s.data.NextMatches},
	}

	values := make([]string, len(sections))
	var wg sync.WaitGroup
	for i, sec := range sections {
		wg.Add(1)
		go func(i int, fallback string, fetch func(context.Context) string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("ai: context fetch panic: %v", r)
					values[i] = fallback
				}
			}()
			values[i] = fetch(ctx)
		}(i, sec.fallback, sec.fetch)
	}
	wg.Wait()

	var b strings.Builder
	for i, sec := range sections {
		b.WriteString("\n" + sec.label + "\n" + values[i] + "\n")
	}
	return b.String()
}

func (s *Service) buildPrompt(query, context string) string {
	s.mu.Lock()
	history := strings.Join(s.history, "\n")
	s.mu.Unlock()

	return `Você é um BOT oficial da equipe FURIA de CS:GO. Use linguagem casual e amigável, com estilo amistoso de fã. Evite ser muito aleatório.

Contexto sobre a FURIA para suas respostas:
` + context + `

Histórico de conversa:
` + history + `

Regras importantes:
1. Priorize informações do contexto fornecido
2. Seja preciso ao falar sobre jogadores, partidas e história da FURIA
3. Use emojis 🐾 e 🔥 ocasionalmente para representar a FURIA
4. Se você não souber a resposta com base no contexto, diga que não tem essa informação no momento
5. Mantenha respostas concisas (máximo 3-4 parágrafos)
6. Não invente informações que não estejam no contexto
7. Lembre-se que o usuário pode usar comandos iniciando com "/" para acessar informações específicas, para saber todos os comandos pode usar "/ajuda"
8. Quando se referir ao usuário, use "Furioso(a)"
9. Evite usar saudações como "E ai", "Oi", "Olá", "Fala" ou "Salve" em todas as respostas, principalmente se já houver uma conversa anterior
10. Caso o usuario pergunte sobre a historia da furia responda exatamente o que está no contexto, sem adicionar mais informações ou fazer comparações com outros times

Comandos disponíveis:
- /ajuda - Lista todos os comandos disponíveis

Pergunta do usuário: ` + query + `

Sua resposta (em português):`
}

// appendHistory records one line, evicting the oldest question/answer pair
// once the window is full.
func (s *Service) appendHistory(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, line)
	if len(s.history) > s.memory*2 {
		s.history = s.history[2:]
	}
}

// formatResponse guarantees the team emojis show up in every answer.
func formatResponse(raw string) string {
	response := strings.TrimSpace(raw)
	if !strings.Contains(response, "🐾") && !strings.Contains(response, "🔥") {
		response += " 🐾 🔥"
	}
	return response
}

// fallbackResponse is the keyword path used when the backend fails. It
// reuses the live data so common questions still get real answers.
func (s *Service) fallbackResponse(ctx context.Context, query string) string {
	if s.data != nil {
		q := strings.ToLower(query)
		switch {
		case strings.Contains(q, "jogadores"):
			return "O elenco atual da FURIA é:\n\n" + s.data.ActivePlayers(ctx) + "\n\nEsse é o nosso esquadrão! 🐾 🔥"
		case strings.Contains(q, "resultados"):
			return "Aqui estão os resultados recentes da FURIA no CS:GO:\n\n" + s.data.RecentResults(ctx) + "\n\nSempre na torcida pelo nosso esquadrão! 🐾 🔥"
		case strings.Contains(q, "história"):
			return s.data.History(ctx) + "\n\nSomos FURIA! 🐾 🔥"
		case strings.Contains(q, "próximo"), strings.Contains(q, "agenda"):
			return "Próximos jogos da FURIA:\n\n" + s.data.NextMatches(ctx) + "\n\nVamos torcer juntos! 🐾 🔥"
		case strings.Contains(q, "último jogo"):
			return "Último jogo da FURIA:\n\n" + s.data.LastMatch(ctx) + "\n\nSempre apoiando nosso time! 🐾 🔥"
		}
	}
	return "Desculpe, estou com problemas para processar sua pergunta. Tente novamente ou pergunte sobre jogadores, resultados ou história da FURIA! 🐾 🔥"
}
