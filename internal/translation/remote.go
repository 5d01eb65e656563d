package translation

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Remote translates free text with a network service.
type Remote interface {
	// Translate translates text from the source to the target language,
	// both given as ISO 639-1 codes.
	Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error)

	// Name returns the provider name
	Name() string
}

var (
	// ErrNoChoices is returned when the chat endpoint answers without choices.
	ErrNoChoices = errors.New("no translation returned")

	// ErrUnknownProvider is returned by NewRemote for an unsupported provider.
	ErrUnknownProvider = errors.New("unknown translation provider")
)

const (
	DefaultBaseURL     = "https://text.pollinations.ai/openai"
	DefaultChatModel   = "openai"
	DefaultGeminiModel = "gemini-2.5-flash"

	systemPrompt = "You are a professional translator. Translate the given text accurately and naturally. Only return the translation, nothing else."
)

// Config holds configuration for remote translators.
type Config struct {
	Provider string // "openai" (any OpenAI-compatible endpoint) or "gemini"

	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int

	// Breaker settings. MaxFailures of zero disables the breaker.
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// DefaultConfig returns the configuration for the public Pollinations
// endpoint, which needs no API key.
func DefaultConfig() *Config {
	return &Config{
		Provider:           "openai",
		BaseURL:            DefaultBaseURL,
		Model:              DefaultChatModel,
		Temperature:        1.0,
		MaxTokens:          500,
		BreakerMaxFailures: 5,
		BreakerOpenTimeout: 30 * time.Second,
	}
}

// NewRemote creates the remote translator selected by config, wrapped in a
// circuit breaker when one is configured.
func NewRemote(ctx context.Context, config *Config) (Remote, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		remote Remote
		err    error
	)
	switch config.Provider {
	case "", "openai":
		remote = NewChatTranslator(config)
	case "gemini":
		if config.APIKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		remote, err = NewGeminiTranslator(ctx, config)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, config.Provider)
	}

	if config.BreakerMaxFailures > 0 {
		remote = NewBreakingRemote(remote, config.BreakerMaxFailures, config.BreakerOpenTimeout)
	}
	return remote, nil
}

func userPrompt(text, sourceCode, targetCode string) string {
	return fmt.Sprintf("Translate the following text from %s to %s:\n\n%s",
		LanguageName(sourceCode), LanguageName(targetCode), text)
}
