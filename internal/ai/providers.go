package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Backend is a single-shot completion API.
type Backend interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

const (
	openaiEndpoint = "https://api.openai.com/v1/chat/completions"
	ollamaEndpoint = "http://localhost:11434/api/generate"
)

// newBackend selects the completion backend for a provider name. "mock",
// or any remote provider without a key, yields the simulated backend.
func newBackend(provider, apiKey, model, endpoint string) Backend {
	if provider == "mock" || (provider != "ollama" && apiKey == "") {
		return &simulatedBackend{}
	}

	client := &http.Client{Timeout: 30 * time.Second}

	switch provider {
	case "openai":
		if model == "" {
			model = "gpt-4o-mini"
		}
		if endpoint == "" {
			endpoint = openaiEndpoint
		}
		return &openaiBackend{apiKey: apiKey, model: model, endpoint: endpoint, client: client}
	case "ollama":
		if model == "" {
			model = "llama2"
		}
		if endpoint == "" {
			endpoint = ollamaEndpoint
		}
		return &ollamaBackend{model: model, endpoint: endpoint, client: client}
	default:
		if model == "" {
			model = "gemini-2.0-flash"
		}
		return &geminiBackend{apiKey: apiKey, model: model}
	}
}

// --- OpenAI backend ---

type openaiBackend struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openaiBackend) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	body, _ := json.Marshal(openaiRequest{
		Model:       o.model,
		Messages:    []openaiMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})

	req, err := http.NewRequestWithContext(ctx, "POST", o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("openai API %d: %s", resp.StatusCode, string(b))
	}

	var or openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", err
	}
	if len(or.Choices) == 0 {
		return "", fmt.Errorf("empty openai response")
	}
	return or.Choices[0].Message.Content, nil
}

// --- Ollama backend ---

type ollamaBackend struct {
	model    string
	endpoint string
	client   *http.Client
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (o *ollamaBackend) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	body, _ := json.Marshal(ollamaRequest{
		Model:   o.model,
		Prompt:  prompt,
		Options: ollamaOptions{Temperature: temperature, NumPredict: maxTokens},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("ollama API %d: %s", resp.StatusCode, string(b))
	}

	var or ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", err
	}
	return or.Response, nil
}

// --- Simulated backend ---

// simulatedBackend answers from canned text so the bot works offline and
// in tests. Selection is by keyword over the whole prompt.
type simulatedBackend struct{}

func (simulatedBackend) Complete(_ context.Context, prompt string, _ int, _ float64) (string, error) {
	p := strings.ToLower(prompt)

	switch {
	case strings.Contains(p, "jogadores"), strings.Contains(p, "lineup"), strings.Contains(p, "elenco"):
		return "O elenco atual da FURIA conta com jogadores incríveis como KSCERATO, yuurih, FalleN, molodoy e YEKINDAR. Cada um deles traz habilidades únicas para o time! 🐾 🔥", nil
	case strings.Contains(p, "últimas partidas"), strings.Contains(p, "resultados"), strings.Contains(p, "jogos recentes"):
		return "Nos últimos jogos, a FURIA enfrentou desafios importantes! Tivemos algumas vitórias e derrotas, com destaque para o último jogo contra a NAVI, que foi muito disputado. Continue acompanhando para ver a evolução do time! 🐾 🔥", nil
	case strings.Contains(p, "história"), strings.Contains(p, "fundação"), strings.Contains(p, "trajetória"):
		return "A FURIA tem uma história incrível no cenário de CS:GO! Fundada em 2017, a organização rapidamente se destacou com seu estilo de jogo agressivo e inovador. Desde então, conquistou seu espaço no cenário mundial com grandes momentos em torneios importantes. A chegada de FalleN em 2023 trouxe ainda mais experiência para o time! 🐾 🔥", nil
	}
	return "Obrigado pela sua pergunta sobre a FURIA! Estamos sempre evoluindo e buscando representar o Brasil da melhor forma possível nos torneios internacionais. Posso te ajudar com informações sobre jogadores, resultados recentes ou a história do time. O que mais você gostaria de saber? 🐾 🔥", nil
}
