package models

import (
	"context"
)

// LLM is the generation capability used to produce animal facts.
type LLM interface {
	// Call runs a single completion against the prompt and returns the raw text reply.
	Call(ctx context.Context, prompt string) (string, error)
	// Name identifies the service and model, e.g. gemini:gemini-2.5-flash
	Name() string
}
