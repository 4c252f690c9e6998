package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"aistudio-backend/config"

	"github.com/openai/openai-go"
	"go.uber.org/zap"
)

// fakeOpenAI is an httptest upstream speaking the OpenAI wire format.
type fakeOpenAI struct {
	*httptest.Server
	calls atomic.Int32

	mu       sync.Mutex
	lastBody map[string]any
}

func newFakeOpenAI(t *testing.T, status int, body any) *fakeOpenAI {
	t.Helper()
	f := &fakeOpenAI{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.lastBody = req
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeOpenAI) body() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBody
}

func (f *fakeOpenAI) config(apiKey string) *config.Config {
	return &config.Config{
		OpenAIAPIKey:  apiKey,
		OpenAIBaseURL: f.URL + "/v1/",
		TextModel:     config.DefaultTextModel,
	}
}

func (f *fakeOpenAI) client(cfg *config.Config) openai.Client {
	return NewOpenAIClient(cfg, zap.NewNop())
}

func completionBody(contents ...string) map[string]any {
	choices := []map[string]any{}
	for i, c := range contents {
		choices = append(choices, map[string]any{
			"index":         i,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": c},
		})
	}
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   config.DefaultTextModel,
		"choices": choices,
	}
}

func imageBody(urls ...string) map[string]any {
	data := []map[string]any{}
	for _, u := range urls {
		data = append(data, map[string]any{"url": u})
	}
	return map[string]any{"created": 1700000000, "data": data}
}

func errorBody(message string) map[string]any {
	return map[string]any{
		"error": map[string]any{
			"message": message,
			"type":    "invalid_request_error",
			"code":    "invalid_api_key",
		},
	}
}
