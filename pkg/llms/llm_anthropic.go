package llms

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"

	"github.com/getzep/animalfacts/config"
	"github.com/getzep/animalfacts/pkg/models"
)

var _ models.LLM = &AnthropicLLM{}

type AnthropicLLM struct {
	client *anthropic.LLM
	model  string
	cfg    *config.Config
}

func NewAnthropicLLM(ctx context.Context, cfg *config.Config) (*AnthropicLLM, error) {
	zllm := &AnthropicLLM{
		model: ModelName(cfg),
		cfg:   cfg,
	}
	if err := zllm.Init(ctx, cfg); err != nil {
		return nil, err
	}
	return zllm, nil
}

func (zllm *AnthropicLLM) Init(_ context.Context, cfg *config.Config) error {
	if cfg.LLM.AnthropicAPIKey == "" {
		return ErrLLMNotConfigured
	}

	options := []anthropic.Option{
		anthropic.WithToken(cfg.LLM.AnthropicAPIKey),
		anthropic.WithModel(zllm.model),
		anthropic.WithHTTPClient(NewRetryableHTTPClient(cfg.LLM.MaxRetries, 0)),
	}
	if cfg.LLM.BaseURL != "" {
		options = append(options, anthropic.WithBaseURL(cfg.LLM.BaseURL))
	}

	llm, err := anthropic.New(options...)
	if err != nil {
		return err
	}
	zllm.client = llm

	return nil
}

func (zllm *AnthropicLLM) Call(ctx context.Context, prompt string) (string, error) {
	if zllm.client == nil {
		return "", NewLLMError("anthropic client is not initialized", ErrLLMNotConfigured)
	}

	thisCtx, cancel := withTimeout(ctx, zllm.cfg.LLM.Timeout)
	defer cancel()

	reply, err := llms.GenerateFromSinglePrompt(thisCtx, zllm.client, prompt)
	if err != nil {
		return "", NewLLMError("anthropic completion failed", err)
	}
	return reply, nil
}

func (zllm *AnthropicLLM) Name() string {
	return fmt.Sprintf("%s:%s", ServiceAnthropic, zllm.model)
}
