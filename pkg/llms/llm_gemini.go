package llms

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/getzep/animalfacts/config"
	"github.com/getzep/animalfacts/pkg/models"
)

var _ models.LLM = &GeminiLLM{}

// GeminiLLM generates text with Google's Gemini API.
type GeminiLLM struct {
	client *genai.Client
	model  string
	cfg    *config.Config
}

func NewGeminiLLM(ctx context.Context, cfg *config.Config) (*GeminiLLM, error) {
	zllm := &GeminiLLM{
		model: ModelName(cfg),
		cfg:   cfg,
	}
	if err := zllm.Init(ctx, cfg); err != nil {
		return nil, err
	}
	return zllm, nil
}

func (zllm *GeminiLLM) Init(ctx context.Context, cfg *config.Config) error {
	if cfg.LLM.GeminiAPIKey == "" {
		return ErrLLMNotConfigured
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.LLM.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: NewRetryableHTTPClient(cfg.LLM.MaxRetries, 0),
	}
	if cfg.LLM.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.LLM.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return fmt.Errorf("failed to create GenAI client: %w", err)
	}
	zllm.client = client

	return nil
}

func (zllm *GeminiLLM) Call(ctx context.Context, prompt string) (string, error) {
	// If the LLM is not initialized, return an error
	if zllm.client == nil {
		return "", NewLLMError("gemini client is not initialized", ErrLLMNotConfigured)
	}

	thisCtx, cancel := withTimeout(ctx, zllm.cfg.LLM.Timeout)
	defer cancel()

	resp, err := zllm.client.Models.GenerateContent(thisCtx, zllm.model, genai.Text(prompt), nil)
	if err != nil {
		return "", NewLLMError("generate content failed", err)
	}

	if len(resp.Candidates) == 0 {
		reason := "no candidates returned"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			reason = fmt.Sprintf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", NewLLMError(reason, nil)
	}

	return resp.Text(), nil
}

func (zllm *GeminiLLM) Name() string {
	return fmt.Sprintf("%s:%s", ServiceGemini, zllm.model)
}
