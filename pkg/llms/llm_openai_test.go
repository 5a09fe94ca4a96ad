package llms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/animalfacts/config"
)

func TestOpenAILLM_Call(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "Dogs sweat through their paws."},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 5, "completion_tokens": 6, "total_tokens": 11}
		}`))
	}))
	defer ts.Close()

	cfg := &config.Config{
		LLM: config.LLM{
			Service:      ServiceOpenAI,
			OpenAIAPIKey: "sk-test",
			BaseURL:      ts.URL,
		},
	}

	zllm, err := NewOpenAILLM(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai:gpt-4o-mini", zllm.Name())

	result, err := zllm.Call(context.Background(), "facts about dogs")
	require.NoError(t, err)
	assert.Equal(t, "Dogs sweat through their paws.", result)
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestOpenAILLM_NotConfigured(t *testing.T) {
	_, err := NewOpenAILLM(context.Background(), &config.Config{})
	assert.ErrorIs(t, err, ErrLLMNotConfigured)
}

func TestAnthropicLLM_Init(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLM{
			Service:         ServiceAnthropic,
			AnthropicAPIKey: "sk-ant-test",
			Model:           "claude-3-5-sonnet-latest",
		},
	}

	zllm, err := NewAnthropicLLM(context.Background(), cfg)
	assert.NoError(t, err, "Expected no error from NewAnthropicLLM")
	assert.NotNil(t, zllm.client, "Expected client to be initialized")
	assert.Equal(t, "anthropic:claude-3-5-sonnet-latest", zllm.Name())

	_, err = NewAnthropicLLM(context.Background(), &config.Config{})
	assert.ErrorIs(t, err, ErrLLMNotConfigured)
}
