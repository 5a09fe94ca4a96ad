package extractors

import (
	"context"
	"fmt"

	"github.com/getzep/animalfacts/internal"
	"github.com/getzep/animalfacts/pkg/llms"
	"github.com/getzep/animalfacts/pkg/models"
)

// BuildFactsPrompt renders the prompt asking the model for MaxFacts facts about animal.
func BuildFactsPrompt(animal string) (string, error) {
	return internal.ParsePrompt(factsPromptTemplate, FactsPromptTemplateData{
		Animal: animal,
		Count:  MaxFacts,
	})
}

// GetAnimalFacts asks the configured LLM for facts about animal and normalizes the reply.
// llms.ErrLLMNotConfigured is returned when no LLM is available; any other failure is an
// *ExtractorError wrapping the cause.
func GetAnimalFacts(
	ctx context.Context,
	appState *models.AppState,
	animal string,
) (*models.FactResponse, error) {
	if appState.LLMClient == nil {
		return nil, llms.ErrLLMNotConfigured
	}

	prompt, err := BuildFactsPrompt(animal)
	if err != nil {
		return nil, NewExtractorError("failed to build facts prompt", err)
	}

	reply, err := appState.LLMClient.Call(ctx, prompt)
	if err != nil {
		logUpstreamError(appState, err)
		return nil, NewExtractorError("llm call failed", err)
	}

	facts, strategy := ExtractFactsWithStrategy(reply)
	log.Debugf(
		"extracted %d facts about %q from %s using %s",
		len(facts), animal, appState.LLMClient.Name(), strategy,
	)

	return &models.FactResponse{
		Animal: animal,
		Facts:  facts,
	}, nil
}

func logUpstreamError(appState *models.AppState, err error) {
	apiKey := appState.Config.LLM.APIKey()
	fields := map[string]interface{}{
		"llm":            appState.LLMClient.Name(),
		"error_type":     fmt.Sprintf("%T", err),
		"key_configured": apiKey != "",
	}
	if apiKey != "" {
		fields["key"] = internal.MaskSecret(apiKey)
	}
	log.WithFields(fields).Errorf("error generating facts: %v", err)
}
