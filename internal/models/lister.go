package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// nonChatMarkers identify model IDs that cannot serve chat completions.
var nonChatMarkers = []string{"tts", "audio", "dall-e", "image", "embedding", "whisper", "moderation", "transcribe"}

// Lister lists the models offered by an OpenAI-compatible endpoint
type Lister struct {
	baseURL string
	client  *openai.Client
}

// NewLister creates a new model lister for baseURL. An empty baseURL means
// the OpenAI API.
func NewLister(baseURL, apiKey string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		baseURL: config.BaseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

// ListChatModels returns the sorted IDs of chat-capable models.
func (l *Lister) ListChatModels(ctx context.Context) ([]string, error) {
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)

	return chatModels, nil
}

// PrintChatModels writes the chat models to w, one per line.
func (l *Lister) PrintChatModels(ctx context.Context, w io.Writer) error {
	chatModels, err := l.ListChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Chat/Translation Models at %s:\n", l.baseURL)
	if len(chatModels) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		fmt.Fprintf(w, "  %s\n", model)
	}
	return nil
}

func isChatModel(id string) bool {
	lower := strings.ToLower(id)
	for _, marker := range nonChatMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}
