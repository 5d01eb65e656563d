package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ChatTranslator translates through an OpenAI-compatible chat completion
// endpoint.
type ChatTranslator struct {
	client      *openai.Client
	baseURL     string
	model       string
	temperature float32
	maxTokens   int
}

// NewChatTranslator creates a translator for config.BaseURL. An empty API
// key is allowed since public endpoints do not require one.
func NewChatTranslator(config *Config) *ChatTranslator {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	model := config.Model
	if model == "" {
		model = DefaultChatModel
	}

	return &ChatTranslator{
		client:      openai.NewClientWithConfig(clientConfig),
		baseURL:     clientConfig.BaseURL,
		model:       model,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
	}
}

// Translate sends a single chat completion request.
func (c *ChatTranslator) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(text, sourceCode, targetCode),
			},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name
func (c *ChatTranslator) Name() string {
	return "openai (" + c.baseURL + ")"
}
