package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/getzep/animalfacts/config"
	"github.com/getzep/animalfacts/internal"
	"github.com/getzep/animalfacts/pkg/llms"
	"github.com/getzep/animalfacts/pkg/models"
)

const checkPrompt = "Say 'Hello, this is a test'"

type llmFactory func(ctx context.Context, cfg *config.Config) (models.LLM, error)

// checkLLM reports on the configured credential and sends checkPrompt to the LLM built by
// newClient. A nil error means the LLM answered.
func checkLLM(
	ctx context.Context,
	cfg *config.Config,
	newClient llmFactory,
	out io.Writer,
) error {
	service := llms.ServiceName(cfg)
	key := cfg.LLM.APIKey()
	if key == "" {
		fmt.Fprintf(out, "No API key configured for %s\n", service)
		return llms.ErrLLMNotConfigured
	}
	fmt.Fprintf(out, "API key found: %s\n", internal.MaskSecret(key))

	if !llms.IsKeyFormatValid(cfg) {
		fmt.Fprintf(
			out,
			"Warning: %s API keys usually start with %q\n",
			service,
			llms.KeyPrefixes[service],
		)
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create %s client: %w", service, err)
	}

	fmt.Fprintf(out, "Sending test prompt to %s\n", client.Name())
	reply, err := client.Call(ctx, checkPrompt)
	if err != nil {
		return fmt.Errorf("test prompt to %s failed: %w", client.Name(), err)
	}

	fmt.Fprintf(out, "Response: %s\n", strings.TrimSpace(reply))
	return nil
}
