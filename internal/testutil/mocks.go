package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// FakeRemote is a call-counting remote translator. It is safe for
// concurrent use.
type FakeRemote struct {
	Translations map[string]string
	Errors       map[string]error
	// Delay is waited before answering; the context deadline still applies.
	Delay time.Duration

	mu    sync.Mutex
	calls []string
}

// Translate returns the canned translation for text, or an echo-free default.
func (f *FakeRemote) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fmt.Sprintf("Translate: %s (%s->%s)", text, fromLang, toLang))
	f.mu.Unlock()

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err, ok := f.Errors[text]; ok {
		return "", err
	}

	if translation, ok := f.Translations[text]; ok {
		return translation, nil
	}

	return fmt.Sprintf("mock translation of %s", text), nil
}

// Name returns the provider name
func (f *FakeRemote) Name() string {
	return "fake"
}

// Calls returns a copy of the recorded calls.
func (f *FakeRemote) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CallCount returns the number of Translate calls.
func (f *FakeRemote) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// ChatServer is an httptest server speaking the subset of the OpenAI API
// used by glossa: chat completions and model listing.
type ChatServer struct {
	*httptest.Server

	// Reply produces the assistant message for a request's last user
	// message. A nil Reply answers with no choices.
	Reply func(userMessage string) string
	// Status, when non-zero, is returned instead of a completion.
	Status int
	Models []string

	requests atomic.Int32
	mu       sync.Mutex
	bodies   []ChatRequest
}

// ChatRequest is the decoded body of a chat completion request.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatMessage is a single chat message.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewChatServer starts a ChatServer that is closed when the test ends.
func NewChatServer(t *testing.T, reply func(userMessage string) string) *ChatServer {
	t.Helper()

	s := &ChatServer{Reply: reply}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Requests returns the number of requests received.
func (s *ChatServer) Requests() int {
	return int(s.requests.Load())
}

// Bodies returns the decoded chat completion requests.
func (s *ChatServer) Bodies() []ChatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChatRequest(nil), s.bodies...)
}

func (s *ChatServer) handle(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)

	switch r.URL.Path {
	case "/models":
		s.writeModels(w)
	case "/chat/completions":
		s.writeCompletion(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *ChatServer) writeModels(w http.ResponseWriter) {
	type model struct {
		ID      string `json:"id"`
		Object  string `json:"object"`
		OwnedBy string `json:"owned_by"`
	}
	data := make([]model, 0, len(s.Models))
	for _, id := range s.Models {
		data = append(data, model{ID: id, Object: "model", OwnedBy: "test"})
	}
	writeJSON(w, map[string]any{"object": "list", "data": data})
}

func (s *ChatServer) writeCompletion(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.bodies = append(s.bodies, req)
	s.mu.Unlock()

	if s.Status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.Status)
		fmt.Fprint(w, `{"error":{"message":"fake failure","type":"server_error"}}`)
		return
	}

	choices := []map[string]any{}
	if s.Reply != nil {
		var last string
		for _, m := range req.Messages {
			if m.Role == "user" {
				last = m.Content
			}
		}
		choices = append(choices, map[string]any{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]string{"role": "assistant", "content": s.Reply(last)},
		})
	}

	writeJSON(w, map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   req.Model,
		"choices": choices,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
