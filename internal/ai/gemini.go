package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiBackend completes prompts through the Gemini API. The client is
// created lazily because genai.NewClient needs a context.
type geminiBackend struct {
	apiKey string
	model  string
	client *genai.Client
}

func (g *geminiBackend) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if g.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("gemini client: %w", err)
		}
		g.client = client
	}

	temp := float32(temperature)
	topP := float32(0.8)
	topK := float32(40)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(maxTokens),
		TopP:            &topP,
		TopK:            &topK,
	})
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return text, nil
}
