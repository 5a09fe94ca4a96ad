package llms

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/getzep/animalfacts/config"
	"github.com/getzep/animalfacts/pkg/models"
)

var _ models.LLM = &OpenAILLM{}

type OpenAILLM struct {
	client *openai.LLM
	model  string
	cfg    *config.Config
}

func NewOpenAILLM(ctx context.Context, cfg *config.Config) (*OpenAILLM, error) {
	zllm := &OpenAILLM{
		model: ModelName(cfg),
		cfg:   cfg,
	}
	if err := zllm.Init(ctx, cfg); err != nil {
		return nil, err
	}
	return zllm, nil
}

func (zllm *OpenAILLM) Init(_ context.Context, cfg *config.Config) error {
	if cfg.LLM.OpenAIAPIKey == "" {
		return ErrLLMNotConfigured
	}

	options := []openai.Option{
		openai.WithToken(cfg.LLM.OpenAIAPIKey),
		openai.WithModel(zllm.model),
		openai.WithHTTPClient(NewRetryableHTTPClient(cfg.LLM.MaxRetries, 0)),
	}
	if cfg.LLM.BaseURL != "" {
		options = append(options, openai.WithBaseURL(cfg.LLM.BaseURL))
	}

	llm, err := openai.New(options...)
	if err != nil {
		return err
	}
	zllm.client = llm

	return nil
}

func (zllm *OpenAILLM) Call(ctx context.Context, prompt string) (string, error) {
	if zllm.client == nil {
		return "", NewLLMError("openai client is not initialized", ErrLLMNotConfigured)
	}

	thisCtx, cancel := withTimeout(ctx, zllm.cfg.LLM.Timeout)
	defer cancel()

	reply, err := llms.GenerateFromSinglePrompt(thisCtx, zllm.client, prompt)
	if err != nil {
		return "", NewLLMError("openai completion failed", err)
	}
	return reply, nil
}

func (zllm *OpenAILLM) Name() string {
	return fmt.Sprintf("%s:%s", ServiceOpenAI, zllm.model)
}
