package summarizer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krets/transcribe/internal/config"
	"github.com/krets/transcribe/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatResponse = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": "# 2024-05-01\n\n- Shipped it"}, "finish_reason": "stop"}],
  "usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
}`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

func newTestConfig(t *testing.T, mutate func(*config.Config)) *config.Config {
	t.Helper()
	cfg := &config.Config{OpenAI: config.OpenAIConfig{APIKey: "sk-test"}}
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func quietLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

// openAIServer records the last chat request it received
func openAIServer(t *testing.T, status int, body string) (*httptest.Server, *chatRequest) {
	t.Helper()
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, &got
}

func TestOpenAISummarize(t *testing.T) {
	server, got := openAIServer(t, http.StatusOK, chatResponse)
	cfg := newTestConfig(t, func(c *config.Config) { c.OpenAI.BaseURL = server.URL + "/v1" })

	s, err := New(cfg, quietLogger())
	require.NoError(t, err)

	summary, err := s.Summarize(context.Background(), "Date: 2024-05-01\n\nwe shipped it", "")
	require.NoError(t, err)
	assert.Equal(t, "# 2024-05-01\n\n- Shipped it", summary)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: DefaultDirective}, got.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "Date: 2024-05-01\n\nwe shipped it"}, got.Messages[1])
}

func TestOpenAISummarizeWithExtraPrompt(t *testing.T) {
	server, got := openAIServer(t, http.StatusOK, chatResponse)
	cfg := newTestConfig(t, func(c *config.Config) { c.OpenAI.BaseURL = server.URL + "/v1" })

	s, err := New(cfg, quietLogger())
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), "text", "List action items first.")
	require.NoError(t, err)

	require.Len(t, got.Messages, 3)
	assert.Equal(t, chatMessage{Role: "system", Content: "List action items first."}, got.Messages[2])
}

func TestOpenAISummarizeCustomDirective(t *testing.T) {
	server, got := openAIServer(t, http.StatusOK, chatResponse)
	cfg := newTestConfig(t, func(c *config.Config) {
		c.OpenAI.BaseURL = server.URL + "/v1"
		c.OpenAI.SummaryModel = "gpt-4o"
		c.Summary.Directive = "Be terse."
	})

	s, err := New(cfg, quietLogger())
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), "text", "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", got.Model)
	assert.Equal(t, "Be terse.", got.Messages[0].Content)
}

func TestOpenAISummarizeServiceError(t *testing.T) {
	server, _ := openAIServer(t, http.StatusTooManyRequests,
		`{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`)
	cfg := newTestConfig(t, func(c *config.Config) { c.OpenAI.BaseURL = server.URL + "/v1" })

	s, err := New(cfg, quietLogger())
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), "text", "")
	assert.Error(t, err)
}

func TestOpenAISummarizeNoChoices(t *testing.T) {
	server, _ := openAIServer(t, http.StatusOK, `{"id":"x","choices":[]}`)
	cfg := newTestConfig(t, func(c *config.Config) { c.OpenAI.BaseURL = server.URL + "/v1" })

	s, err := New(cfg, quietLogger())
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), "text", "")
	assert.Error(t, err)
}

func TestBuildMessages(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		want  int
	}{
		{"no extra prompt", "", 2},
		{"whitespace extra prompt", "  \n", 2},
		{"extra prompt", "focus on dates", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := buildMessages("directive", "text", tt.extra)
			assert.Len(t, msgs, tt.want)
		})
	}
}

func TestSystemInstruction(t *testing.T) {
	assert.Equal(t, "directive", systemInstruction("directive", ""))
	assert.Equal(t, "directive\n\nextra", systemInstruction("directive", " extra "))
}

func TestNewGemini(t *testing.T) {
	cfg := newTestConfig(t, func(c *config.Config) {
		c.Summary.Backend = config.BackendGemini
		c.Gemini.APIKey = "g-test"
	})

	s, err := New(cfg, quietLogger())
	require.NoError(t, err)

	gemini, ok := s.(*implGemini)
	require.True(t, ok, "gemini backend should build a Gemini summarizer")
	assert.Equal(t, "gemini-2.5-flash", gemini.model)
	assert.Equal(t, DefaultDirective, gemini.directive)
}

func TestGeminiSummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"# Notes"},{"text":"\n- one"}]}}]}`)
	}))
	t.Cleanup(server.Close)

	cfg := newTestConfig(t, func(c *config.Config) {
		c.Summary.Backend = config.BackendGemini
		c.Gemini.APIKey = "g-test"
		c.Gemini.BaseURL = server.URL
	})

	s, err := New(cfg, quietLogger())
	require.NoError(t, err)

	summary, err := s.Summarize(context.Background(), "text", "")
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n- one", summary)
}

func TestNewUnknownBackend(t *testing.T) {
	cfg := &config.Config{Summary: config.SummaryConfig{Backend: "ollama"}}
	_, err := New(cfg, quietLogger())
	assert.Error(t, err)
}
