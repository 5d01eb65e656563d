package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiTranslator translates with the Gemini API.
type GeminiTranslator struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

// NewGeminiTranslator creates a Gemini client. The chat default model name
// is replaced by DefaultGeminiModel.
func NewGeminiTranslator(ctx context.Context, config *Config) (*GeminiTranslator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" || model == DefaultChatModel {
		model = DefaultGeminiModel
	}

	return &GeminiTranslator{
		client:      client,
		model:       model,
		temperature: config.Temperature,
		maxTokens:   int32(config.MaxTokens),
	}, nil
}

// Translate sends a single GenerateContent request.
func (g *GeminiTranslator) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
	}
	if g.maxTokens > 0 {
		genConfig.MaxOutputTokens = g.maxTokens
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userPrompt(text, sourceCode, targetCode)), genConfig)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Name returns the provider name
func (g *GeminiTranslator) Name() string {
	return "gemini (" + g.model + ")"
}
