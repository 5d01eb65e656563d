package tutor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/glossa/internal/translation"
)

const systemPrompt = `You are a Greek language tutor. Follow these rules:

1. Respond in the same language as the user. An English question gets an English answer, a Spanish question a Spanish answer, a Greek question a Greek answer.
2. Never respond in Greek unless the user writes in Greek.
3. Explain in the user's language and show Greek only in examples, always with romanization, e.g. Γεια σας (Yasas - hello).
4. Translate the meaning of every Greek example into the user's language.

Example:
The word γράφω (grafo) means 'to write'.

Present tense:
• γράφω (grafo) - I write
• γράφεις (grafeis) - you write
• γράφει (grafei) - he/she writes`

// Config holds tutor settings.
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// DefaultConfig returns settings for the public Pollinations endpoint.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   translation.DefaultBaseURL,
		Model:     translation.DefaultChatModel,
		MaxTokens: 1500,
		Timeout:   120 * time.Second,
	}
}

// Answer is the tutor's reply. Offline is set when the text is a canned
// fallback rather than a model response.
type Answer struct {
	Text    string
	Offline bool
}

// Tutor asks a chat model Greek learning questions.
type Tutor struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates a Tutor for config. A nil config uses DefaultConfig.
func New(config *Config) *Tutor {
	if config == nil {
		config = DefaultConfig()
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &Tutor{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     config.Model,
		maxTokens: config.MaxTokens,
		timeout:   config.Timeout,
		logger:    slog.Default(),
	}
}

// NewOffline creates a Tutor that only gives fallback answers.
func NewOffline() *Tutor {
	return &Tutor{logger: slog.Default()}
}

// Ask answers question. It never fails: any problem with the model yields
// an offline answer.
func (t *Tutor) Ask(ctx context.Context, question string) Answer {
	question = strings.TrimSpace(question)
	if t.client == nil || question == "" {
		return Answer{Text: fallbackAnswer(question), Offline: true}
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		Temperature: 1.0,
		MaxTokens:   t.maxTokens,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		t.logger.Warn("tutor request failed, answering offline", "error", err)
		return Answer{Text: fallbackAnswer(question), Offline: true}
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		t.logger.Warn("tutor returned an empty answer, answering offline")
		return Answer{Text: fallbackAnswer(question), Offline: true}
	}

	return Answer{Text: resp.Choices[0].Message.Content}
}

// StripMarkdown removes bold, italic, heading and code fence markers.
func StripMarkdown(text string) string {
	for _, marker := range []string{"**", "*", "##", "#", "```"} {
		text = strings.ReplaceAll(text, marker, "")
	}
	return strings.TrimSpace(text)
}
